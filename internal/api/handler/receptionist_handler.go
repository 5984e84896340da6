package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SYD090303/GymFlow/internal/core/ports"
)

// ReceptionistHandler handles HTTP requests for front-desk staff management.
type ReceptionistHandler struct {
	service ports.ReceptionistService
}

func NewReceptionistHandler(service ports.ReceptionistService) *ReceptionistHandler {
	return &ReceptionistHandler{service: service}
}

type createReceptionistRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Shift     string `json:"shift"`
}

type updateReceptionistRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Shift     *string `json:"shift"`
}

// Create registers a receptionist and their login credential.
//
// @Summary      Create a receptionist
// @Tags         receptionists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReceptionistRequest  true  "Receptionist details"
// @Success      201   {object}  domain.Receptionist
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/receptionists [post]
func (h *ReceptionistHandler) Create(c echo.Context) error {
	var req createReceptionistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec, err := h.service.Create(c.Request().Context(), ports.CreateReceptionistInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Shift:     req.Shift,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rec)
}

// Get returns a single receptionist record.
func (h *ReceptionistHandler) Get(c echo.Context) error {
	rec, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// List returns all receptionist records.
func (h *ReceptionistHandler) List(c echo.Context) error {
	recs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

// Update applies partial changes to a receptionist record.
func (h *ReceptionistHandler) Update(c echo.Context) error {
	var req updateReceptionistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	rec, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateReceptionistInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Shift:     req.Shift,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rec)
}

// Activate re-enables a receptionist and their credential.
func (h *ReceptionistHandler) Activate(c echo.Context) error {
	if err := h.service.Activate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate disables a receptionist and their credential.
func (h *ReceptionistHandler) Deactivate(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a receptionist record after disabling their credential.
func (h *ReceptionistHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
