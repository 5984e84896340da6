package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// PlanHandler handles HTTP requests for the membership plan catalog.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

type planRequest struct {
	PlanType       string  `json:"planType" validate:"required,oneof=BASIC STANDARD PREMIUM"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Description    string  `json:"description"`
	DurationMonths int     `json:"durationMonths" validate:"required,gt=0"`
}

// Create adds a plan to the catalog.
//
// @Summary      Create a membership plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      planRequest  true  "Plan details"
// @Success      201   {object}  domain.MembershipPlan
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/membership-plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.service.Create(c.Request().Context(), ports.PlanInput{
		PlanType:       domain.PlanType(req.PlanType),
		Price:          req.Price,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// Get returns a single plan.
func (h *PlanHandler) Get(c echo.Context) error {
	plan, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// List returns the full plan catalog.
func (h *PlanHandler) List(c echo.Context) error {
	plans, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Update replaces a plan's catalog fields.
//
// @Summary      Update a membership plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Plan id"
// @Param        body  body      planRequest  true  "Plan details"
// @Success      200   {object}  domain.MembershipPlan
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/membership-plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PlanInput{
		PlanType:       domain.PlanType(req.PlanType),
		Price:          req.Price,
		Description:    req.Description,
		DurationMonths: req.DurationMonths,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Activate re-enables a plan for new enrolments.
func (h *PlanHandler) Activate(c echo.Context) error {
	if err := h.service.Activate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate retires a plan from new enrolments.
func (h *PlanHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a plan from the catalog.
func (h *PlanHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
