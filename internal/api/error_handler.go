package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/SYD090303/GymFlow/internal/api/handler"
	"github.com/SYD090303/GymFlow/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	APIPath      string               `json:"apiPath"`
	ErrorCode    int                  `json:"errorCode"`
	ErrorMessage string               `json:"errorMessage"`
	ErrorTime    time.Time            `json:"errorTime"`
	Errors       []handler.FieldError `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with a per-field errors array.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := errorResponse{
			APIPath:   c.Request().URL.Path,
			ErrorTime: time.Now().UTC(),
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			resp.ErrorCode = http.StatusBadRequest
			resp.ErrorMessage = "validation failed"
			resp.Errors = ve.Fields
			_ = c.JSON(resp.ErrorCode, resp)
			return
		}

		resp.ErrorCode, resp.ErrorMessage = resolveError(err, log, c)
		_ = c.JSON(resp.ErrorCode, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "account is disabled"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, "member not found"
	case errors.Is(err, domain.ErrMemberExists):
		return http.StatusConflict, "member already exists"
	case errors.Is(err, domain.ErrMemberInactive):
		return http.StatusUnprocessableEntity, "member is not active"
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, "membership plan not found"
	case errors.Is(err, domain.ErrPlanInactive):
		return http.StatusUnprocessableEntity, "membership plan is not active"
	case errors.Is(err, domain.ErrReceptionistNotFound):
		return http.StatusNotFound, "receptionist not found"
	case errors.Is(err, domain.ErrReceptionistExists):
		return http.StatusConflict, "receptionist already exists"
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrDuplicateCheckIn):
		return http.StatusConflict, "duplicate check-in submission"
	case errors.Is(err, domain.ErrNoOpenSession):
		return http.StatusUnprocessableEntity, "no open attendance session"
	case errors.Is(err, domain.ErrCheckOutBeforeCheckIn):
		return http.StatusUnprocessableEntity, "check-out time is before check-in time"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
