package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/mandate"
)

// EventHandler serves the caller's audit trail
type EventHandler struct {
	mandateUC mandate.MandateUC
}

// NewEventHandler creates a new audit trail HTTP handler
func NewEventHandler(mandateUC mandate.MandateUC) *EventHandler {
	return &EventHandler{
		mandateUC: mandateUC,
	}
}

// Events lists audit events newest first, optionally narrowed by ?type=
func (h *EventHandler) Events(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var filter models.EventFilter
	err := echo.QueryParamsBinder(c).
		String("type", &filter.EventType).
		Int("limit", &filter.Limit).
		BindError()
	if err != nil || filter.Limit < 0 {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	events, err := h.mandateUC.ListEvents(c.Request().Context(), userID, filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", events)
}

// Notifications lists the pre-debit notices sent to the caller
func (h *EventHandler) Notifications(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil || limit < 0 {
		return utils.BadRequestResponse(c, "Invalid limit")
	}

	notices, err := h.mandateUC.ListNotifications(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", notices)
}
