package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/mandate"
)

// MandateHandler handles HTTP requests for the mandate lifecycle
type MandateHandler struct {
	mandateUC mandate.MandateUC
}

// NewMandateHandler creates a new mandate HTTP handler
func NewMandateHandler(mandateUC mandate.MandateUC) *MandateHandler {
	return &MandateHandler{
		mandateUC: mandateUC,
	}
}

// Create registers a mandate with the payment provider
func (h *MandateHandler) Create(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.MandateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	m, err := h.mandateUC.Create(c.Request().Context(), userID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Mandate created", m)
}

// List returns the caller's mandates
func (h *MandateHandler) List(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	mandates, err := h.mandateUC.List(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", mandates)
}

// Get returns one of the caller's mandates
func (h *MandateHandler) Get(c echo.Context) error {
	return h.withMandate(c, "", h.mandateUC.Get)
}

// Pause asks the provider to pause the mandate
func (h *MandateHandler) Pause(c echo.Context) error {
	return h.withMandate(c, "Mandate paused", h.mandateUC.Pause)
}

// Resume asks the provider to resume the mandate and clears its failure count
func (h *MandateHandler) Resume(c echo.Context) error {
	return h.withMandate(c, "Mandate resumed", h.mandateUC.Resume)
}

// Cancel cancels the mandate for good
func (h *MandateHandler) Cancel(c echo.Context) error {
	return h.withMandate(c, "Mandate cancelled", h.mandateUC.Cancel)
}

type mandateOp func(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error)

func (h *MandateHandler) withMandate(c echo.Context, message string, op mandateOp) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	mandateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid mandate id")
	}

	m, err := op(c.Request().Context(), userID, mandateID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, m)
}
