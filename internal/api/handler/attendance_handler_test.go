package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/internal/core/view"
)

// stubAttendanceService records the last input it saw and replies with
// canned values.
type stubAttendanceService struct {
	lastCheckIn   ports.CheckInInput
	lastCheckOut  ports.CheckOutInput
	lastRangeFrom time.Time
	lastRangeTo   time.Time
	log           *domain.AttendanceLog
	open          *domain.AttendanceLog
	err           error
}

func (s *stubAttendanceService) LogVisit(ctx context.Context, memberID string, recordedBy domain.RecordedBy) (*domain.AttendanceLog, error) {
	return s.log, s.err
}

func (s *stubAttendanceService) CheckIn(ctx context.Context, input ports.CheckInInput) (*domain.AttendanceLog, error) {
	s.lastCheckIn = input
	return s.log, s.err
}

func (s *stubAttendanceService) CheckOut(ctx context.Context, input ports.CheckOutInput) (*domain.AttendanceLog, error) {
	s.lastCheckOut = input
	return s.log, s.err
}

func (s *stubAttendanceService) ListByMember(ctx context.Context, memberID string) ([]*domain.AttendanceLog, error) {
	return nil, s.err
}

func (s *stubAttendanceService) ListByStatus(ctx context.Context, status domain.AttendanceStatus) ([]*domain.AttendanceLog, error) {
	return nil, s.err
}

func (s *stubAttendanceService) ListRange(ctx context.Context, start, end time.Time) ([]*domain.AttendanceLog, error) {
	s.lastRangeFrom, s.lastRangeTo = start, end
	return nil, s.err
}

func (s *stubAttendanceService) ListToday(ctx context.Context) ([]*domain.AttendanceLog, error) {
	return nil, s.err
}

func (s *stubAttendanceService) OpenSession(ctx context.Context, memberID string) (*domain.AttendanceLog, error) {
	return s.open, s.err
}

func (s *stubAttendanceService) TodaySummary(ctx context.Context) (view.TodaySummary, error) {
	return view.TodaySummary{TotalCheckIns: 3, TotalCheckOuts: 2, OpenCount: 1}, s.err
}

func newAttendanceContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "desk@gym.test")
	c.Set("role", domain.RoleReceptionist)
	return c, rec
}

func TestAttendanceHandler_CheckInRecordsRole(t *testing.T) {
	svc := &stubAttendanceService{log: &domain.AttendanceLog{
		ID: "a1", MemberID: "m1", RecordedBy: domain.RecordedByReceptionist,
	}}
	h := NewAttendanceHandler(svc)

	c, rec := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-in", `{"memberId":"m1"}`)
	if err := h.CheckIn(c); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastCheckIn.MemberID != "m1" {
		t.Fatalf("member id = %q", svc.lastCheckIn.MemberID)
	}
	if svc.lastCheckIn.RecordedBy != domain.RecordedByReceptionist {
		t.Fatalf("recorded by = %q, want receptionist attribution", svc.lastCheckIn.RecordedBy)
	}
	if svc.lastCheckIn.At != nil {
		t.Fatalf("missing at must defer to server default, got %v", svc.lastCheckIn.At)
	}
}

func TestAttendanceHandler_CheckInParsesTimestamp(t *testing.T) {
	svc := &stubAttendanceService{log: &domain.AttendanceLog{ID: "a1"}}
	h := NewAttendanceHandler(svc)

	c, _ := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-in",
		`{"memberId":"m1","at":"2025-03-01T09:30:00Z","attendanceStatus":"LATE"}`)
	if err := h.CheckIn(c); err != nil {
		t.Fatalf("check in: %v", err)
	}

	if svc.lastCheckIn.At == nil || !svc.lastCheckIn.At.Equal(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("at = %v", svc.lastCheckIn.At)
	}
	if svc.lastCheckIn.Status != domain.AttendanceLate {
		t.Fatalf("status = %q", svc.lastCheckIn.Status)
	}
}

func TestAttendanceHandler_CheckInValidation(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing member id", `{}`},
		{"bad status", `{"memberId":"m1","attendanceStatus":"SLEEPING"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-in", tt.body)
			err := h.CheckIn(c)

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAttendanceHandler_CheckInBadTimestamp(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	c, _ := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-in",
		`{"memberId":"m1","at":"yesterday"}`)
	err := h.CheckIn(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAttendanceHandler_CheckInPropagatesServiceError(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{err: domain.ErrAlreadyCheckedIn})

	c, _ := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-in", `{"memberId":"m1"}`)
	if err := h.CheckIn(c); !errors.Is(err, domain.ErrAlreadyCheckedIn) {
		t.Fatalf("expected ErrAlreadyCheckedIn, got %v", err)
	}
}

func TestAttendanceHandler_CheckOut(t *testing.T) {
	minutes := 45
	svc := &stubAttendanceService{log: &domain.AttendanceLog{ID: "a1", DurationMinutes: &minutes}}
	h := NewAttendanceHandler(svc)

	c, rec := newAttendanceContext(t, http.MethodPost, "/api/v1/attendance/check-out", `{"memberId":"m1"}`)
	if err := h.CheckOut(c); err != nil {
		t.Fatalf("check out: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastCheckOut.MemberID != "m1" {
		t.Fatalf("member id = %q", svc.lastCheckOut.MemberID)
	}
}

func TestAttendanceHandler_OpenSessionNoContent(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{open: nil})

	c, rec := newAttendanceContext(t, http.MethodGet, "/api/v1/attendance/member/m1/open", "")
	c.SetParamNames("memberId")
	c.SetParamValues("m1")
	if err := h.OpenSession(c); err != nil {
		t.Fatalf("open session: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must have an empty body, got %q", rec.Body.String())
	}
}

func TestAttendanceHandler_ListRangeExtendsBareDate(t *testing.T) {
	svc := &stubAttendanceService{}
	h := NewAttendanceHandler(svc)

	c, _ := newAttendanceContext(t, http.MethodGet,
		"/api/v1/attendance/range?from=2024-05-01&to=2024-05-02", "")
	if err := h.ListRange(c); err != nil {
		t.Fatalf("list range: %v", err)
	}

	wantTo := time.Date(2024, 5, 2, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !svc.lastRangeTo.Equal(wantTo) {
		t.Fatalf("bare-date to should cover the whole day, got %v", svc.lastRangeTo)
	}
}

func TestAttendanceHandler_ListRangeKeepsExplicitMidnight(t *testing.T) {
	svc := &stubAttendanceService{}
	h := NewAttendanceHandler(svc)

	c, _ := newAttendanceContext(t, http.MethodGet,
		"/api/v1/attendance/range?from=2024-05-01T00:00:00Z&to=2024-05-02T00:00:00Z", "")
	if err := h.ListRange(c); err != nil {
		t.Fatalf("list range: %v", err)
	}

	wantTo := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	if !svc.lastRangeTo.Equal(wantTo) {
		t.Fatalf("explicit midnight to must pass through unchanged, got %v", svc.lastRangeTo)
	}
	if !svc.lastRangeFrom.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", svc.lastRangeFrom)
	}
}

func TestAttendanceHandler_TodaySummary(t *testing.T) {
	h := NewAttendanceHandler(&stubAttendanceService{})

	c, rec := newAttendanceContext(t, http.MethodGet, "/api/v1/attendance/today/summary", "")
	if err := h.TodaySummary(c); err != nil {
		t.Fatalf("summary: %v", err)
	}

	var got view.TodaySummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalCheckIns != 3 || got.TotalCheckOuts != 2 || got.OpenCount != 1 {
		t.Fatalf("summary = %+v", got)
	}
}
