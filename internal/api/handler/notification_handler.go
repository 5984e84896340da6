package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// NotificationHandler handles HTTP requests for the owner notification feed.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// List returns the caller's notification feed, newest first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Notification
// @Router       /api/v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	notifs, err := h.service.List(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifs)
}

// UnreadCount returns the number of unread notifications for the caller's role.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	n, err := h.service.UnreadCount(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: n})
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.service.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks the caller's entire feed as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllRead(c.Request().Context(), role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
