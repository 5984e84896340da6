package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/api/metrics"
	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

// AttendanceHandler handles HTTP requests for check-in, check-out, and
// attendance queries.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type checkInRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	At       string `json:"at"`
	Status   string `json:"attendanceStatus" validate:"omitempty,oneof=PRESENT LATE MISSED EXCUSED"`
}

type checkOutRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	At       string `json:"at"`
}

// CheckIn opens an attendance session for a member.
//
// @Summary      Check a member in
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkInRequest  true  "Check-in details"
// @Success      201   {object}  domain.AttendanceLog
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CheckInInput{
		MemberID: req.MemberID,
		Status:   domain.AttendanceStatus(req.Status),
	}
	if req.At != "" {
		t, ok := clock.ParseFlexible(req.At)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid at timestamp")
		}
		input.At = &t
	}

	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	input.RecordedBy = domain.RecordedByForRole(role)

	log, err := h.service.CheckIn(c.Request().Context(), input)
	if err != nil {
		countAttendanceError(err)
		return err
	}

	metrics.CheckInsTotal.WithLabelValues(string(log.RecordedBy)).Inc()
	return c.JSON(http.StatusCreated, log)
}

// CheckOut closes the member's open session.
//
// @Summary      Check a member out
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkOutRequest  true  "Check-out details"
// @Success      200   {object}  domain.AttendanceLog
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	var req checkOutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.CheckOutInput{MemberID: req.MemberID}
	if req.At != "" {
		t, ok := clock.ParseFlexible(req.At)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid at timestamp")
		}
		input.At = &t
	}

	log, err := h.service.CheckOut(c.Request().Context(), input)
	if err != nil {
		countAttendanceError(err)
		return err
	}

	metrics.CheckOutsTotal.Inc()
	return c.JSON(http.StatusOK, log)
}

// ListByMember returns a member's full attendance history, oldest first.
//
// @Summary      Attendance history for a member
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        memberId  path     string  true  "Member id"
// @Success      200  {array}  domain.AttendanceLog
// @Router       /api/v1/attendance/member/{memberId} [get]
func (h *AttendanceHandler) ListByMember(c echo.Context) error {
	logs, err := h.service.ListByMember(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// OpenSession returns the member's open session, or 204 when none exists.
//
// @Summary      Open session for a member
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        memberId  path     string  true  "Member id"
// @Success      200  {object}  domain.AttendanceLog
// @Success      204
// @Router       /api/v1/attendance/member/{memberId}/open [get]
func (h *AttendanceHandler) OpenSession(c echo.Context) error {
	log, err := h.service.OpenSession(c.Request().Context(), c.Param("memberId"))
	if err != nil {
		return err
	}
	if log == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, log)
}

// ListByStatus returns logs with the given attendance status.
//
// @Summary      Attendance logs by status
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        status  path     string  true  "Attendance status"
// @Success      200  {array}  domain.AttendanceLog
// @Router       /api/v1/attendance/status/{status} [get]
func (h *AttendanceHandler) ListByStatus(c echo.Context) error {
	logs, err := h.service.ListByStatus(c.Request().Context(), domain.AttendanceStatus(c.Param("status")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// ListRange returns logs whose check-in falls in [from, to].
//
// @Summary      Attendance logs in a date range
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  true  "Range start (inclusive)"
// @Param        to    query     string  true  "Range end (inclusive)"
// @Success      200  {array}  domain.AttendanceLog
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/attendance/range [get]
func (h *AttendanceHandler) ListRange(c echo.Context) error {
	rawTo := c.QueryParam("to")
	from, okFrom := clock.ParseFlexible(c.QueryParam("from"))
	to, okTo := clock.ParseFlexible(rawTo)
	if !okFrom || !okTo {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to must be valid timestamps")
	}

	// A bare date for "to" means end of that day. An explicit timestamp,
	// even one at midnight, is taken as given.
	if clock.DateOnly(rawTo) {
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	logs, err := h.service.ListRange(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// ListToday returns all of today's attendance logs.
//
// @Summary      Today's attendance
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.AttendanceLog
// @Router       /api/v1/attendance/today [get]
func (h *AttendanceHandler) ListToday(c echo.Context) error {
	logs, err := h.service.ListToday(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// TodaySummary returns today's aggregate counts.
//
// @Summary      Today's attendance summary
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  view.TodaySummary
// @Router       /api/v1/attendance/today/summary [get]
func (h *AttendanceHandler) TodaySummary(c echo.Context) error {
	summary, err := h.service.TodaySummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// countAttendanceError records rejected attendance operations by reason.
func countAttendanceError(err error) {
	var reason string
	switch {
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		reason = "already_checked_in"
	case errors.Is(err, domain.ErrDuplicateCheckIn):
		reason = "duplicate_submission"
	case errors.Is(err, domain.ErrNoOpenSession):
		reason = "no_open_session"
	case errors.Is(err, domain.ErrMemberInactive):
		reason = "member_inactive"
	case errors.Is(err, domain.ErrMemberNotFound):
		reason = "member_not_found"
	case errors.Is(err, domain.ErrCheckOutBeforeCheckIn):
		reason = "check_out_before_check_in"
	default:
		reason = "internal"
	}
	metrics.AttendanceErrorsTotal.WithLabelValues(reason).Inc()
}
