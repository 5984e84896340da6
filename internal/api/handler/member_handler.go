package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/domain"
	"github.com/SYD090303/GymFlow/internal/core/ports"
	"github.com/SYD090303/GymFlow/pkg/clock"
)

// MemberHandler handles HTTP requests for member and membership operations.
type MemberHandler struct {
	service              ports.MemberService
	endingSoonWindowDays int
}

func NewMemberHandler(service ports.MemberService, endingSoonWindowDays int) *MemberHandler {
	return &MemberHandler{service: service, endingSoonWindowDays: endingSoonWindowDays}
}

type createMemberRequest struct {
	Email            string `json:"email" validate:"required,email"`
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	MembershipPlanID string `json:"membershipPlanId" validate:"required"`
	StartDate        string `json:"startDate"`
	AutoRenew        bool   `json:"autoRenew"`
}

type updateMemberRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Phone            *string `json:"phone"`
	MembershipPlanID *string `json:"membershipPlanId"`
	AutoRenew        *bool   `json:"autoRenew"`
}

type renewMemberRequest struct {
	StartDate string `json:"startDate"`
}

// Create enrols a new member on a plan.
//
// @Summary      Enrol a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMemberRequest  true  "Member details"
// @Success      201   {object}  domain.Member
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start := time.Now()
	if req.StartDate != "" {
		t, ok := clock.ParseFlexible(req.StartDate)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		start = t
	}

	member, err := h.service.Create(c.Request().Context(), ports.CreateMemberInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		PlanID:    req.MembershipPlanID,
		StartDate: start,
		AutoRenew: req.AutoRenew,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, member)
}

// Get returns a single member by id.
//
// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member id"
// @Success      200  {object}  domain.Member
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	member, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// List returns members, optionally filtered by status or membership status.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        status            query     string  false  "Filter by account status (ACTIVE/INACTIVE)"
// @Param        membershipStatus  query     string  false  "Filter by derived membership status"
// @Success      200  {array}  domain.Member
// @Router       /api/v1/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if ms := c.QueryParam("membershipStatus"); ms != "" {
		members, err := h.service.ListByMembershipStatus(ctx, domain.MembershipStatus(ms))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, members)
	}

	if status := c.QueryParam("status"); status != "" {
		members, err := h.service.ListByStatus(ctx, domain.Status(status))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, members)
	}

	members, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Update applies partial changes to a member.
//
// @Summary      Update a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Member id"
// @Param        body  body      updateMemberRequest  true  "Fields to change"
// @Success      200   {object}  domain.Member
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	member, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMemberInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		PlanID:    req.MembershipPlanID,
		AutoRenew: req.AutoRenew,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Delete removes a member record.
//
// @Summary      Delete a member
// @Tags         members
// @Security     BearerAuth
// @Param        id  path  string  true  "Member id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Activate re-enables a member account.
func (h *MemberHandler) Activate(c echo.Context) error {
	if err := h.service.Activate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate disables a member account.
func (h *MemberHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Renew restarts the membership on its current plan.
//
// @Summary      Renew a membership
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true   "Member id"
// @Param        body  body      renewMemberRequest  false  "Optional new start date"
// @Success      200   {object}  domain.Member
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/members/{id}/renew [post]
func (h *MemberHandler) Renew(c echo.Context) error {
	var req renewMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	if req.StartDate != "" {
		t, ok := clock.ParseFlexible(req.StartDate)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		start = t
	}

	member, err := h.service.Renew(c.Request().Context(), c.Param("id"), start)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// EndingSoon lists members whose membership expires within the configured window.
//
// @Summary      Memberships ending soon
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Member
// @Router       /api/v1/members/ending-soon [get]
func (h *MemberHandler) EndingSoon(c echo.Context) error {
	members, err := h.service.EndingSoon(c.Request().Context(), h.endingSoonWindowDays)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}
