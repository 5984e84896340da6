package gymclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// AttendanceLog is one gym visit as the API reports it. A nil CheckOutTime
// means the session is still open.
type AttendanceLog struct {
	ID               string     `json:"id"`
	MemberID         string     `json:"memberId"`
	CheckInTime      time.Time  `json:"checkInTime"`
	CheckOutTime     *time.Time `json:"checkOutTime,omitempty"`
	AttendanceStatus string     `json:"attendanceStatus"`
	RecordedBy       string     `json:"recordedBy"`
	DurationMinutes  *int       `json:"durationMinutes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// TodaySummary aggregates today's attendance.
type TodaySummary struct {
	OpenCount      int `json:"openCount"`
	TotalCheckIns  int `json:"totalCheckIns"`
	TotalCheckOuts int `json:"totalCheckOuts"`
}

type checkInPayload struct {
	MemberID string `json:"memberId"`
	At       string `json:"at,omitempty"`
	Status   string `json:"attendanceStatus,omitempty"`
}

type checkOutPayload struct {
	MemberID string `json:"memberId"`
	At       string `json:"at,omitempty"`
}

// Log records a visit for a member with server-side defaults (now, PRESENT).
func (c *Client) Log(ctx context.Context, memberID string) (*AttendanceLog, error) {
	return c.CheckIn(ctx, memberID, nil, "")
}

// CheckIn opens a session for a member. at and status are optional; zero
// values defer to the server's defaults.
func (c *Client) CheckIn(ctx context.Context, memberID string, at *time.Time, status string) (*AttendanceLog, error) {
	payload := checkInPayload{MemberID: memberID, Status: status}
	if at != nil {
		payload.At = at.Format(time.RFC3339)
	}

	var log AttendanceLog
	if err := c.do(ctx, http.MethodPost, "/api/v1/attendance/check-in", payload, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// CheckOut closes the member's open session.
func (c *Client) CheckOut(ctx context.Context, memberID string, at *time.Time) (*AttendanceLog, error) {
	payload := checkOutPayload{MemberID: memberID}
	if at != nil {
		payload.At = at.Format(time.RFC3339)
	}

	var log AttendanceLog
	if err := c.do(ctx, http.MethodPost, "/api/v1/attendance/check-out", payload, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// ListByMember returns a member's attendance history, oldest first.
func (c *Client) ListByMember(ctx context.Context, memberID string) ([]AttendanceLog, error) {
	var logs []AttendanceLog
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/member/"+url.PathEscape(memberID), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// OpenSession returns the member's open session, or nil when none exists.
func (c *Client) OpenSession(ctx context.Context, memberID string) (*AttendanceLog, error) {
	var log AttendanceLog
	err := c.do(ctx, http.MethodGet, "/api/v1/attendance/member/"+url.PathEscape(memberID)+"/open", nil, &log)
	if err != nil {
		return nil, err
	}
	if log.ID == "" {
		// 204: no open session.
		return nil, nil
	}
	return &log, nil
}

// ListByStatus returns logs with the given attendance status.
func (c *Client) ListByStatus(ctx context.Context, status string) ([]AttendanceLog, error) {
	var logs []AttendanceLog
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/status/"+url.PathEscape(status), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListInRange returns logs whose check-in falls in [from, to].
func (c *Client) ListInRange(ctx context.Context, from, to time.Time) ([]AttendanceLog, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	var logs []AttendanceLog
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/range?"+q.Encode(), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListToday returns all of today's logs.
func (c *Client) ListToday(ctx context.Context) ([]AttendanceLog, error) {
	var logs []AttendanceLog
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/today", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// TodaySummary returns today's aggregate counts.
func (c *Client) TodaySummary(ctx context.Context) (TodaySummary, error) {
	var summary TodaySummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/attendance/today/summary", nil, &summary); err != nil {
		return TodaySummary{}, err
	}
	return summary, nil
}
