package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/dashboard"
)

// DashboardHandler resolves the role-appropriate dashboard composition.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Compose returns the view and navigation set for the caller's role.
//
// @Summary      Dashboard composition for the current role
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboard.Composition
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Compose(c echo.Context) error {
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, dashboard.Compose(role))
}
