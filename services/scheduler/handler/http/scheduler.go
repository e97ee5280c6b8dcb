package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/scheduler"
)

// SchedulerHandler exposes on-demand triggers for the scheduled passes
type SchedulerHandler struct {
	schedulerUC scheduler.SchedulerUC
}

// NewSchedulerHandler creates a new scheduler HTTP handler
func NewSchedulerHandler(schedulerUC scheduler.SchedulerUC) *SchedulerHandler {
	return &SchedulerHandler{
		schedulerUC: schedulerUC,
	}
}

// RunDebits runs a debit pass now
func (h *SchedulerHandler) RunDebits(c echo.Context) error {
	summary, err := h.schedulerUC.RunDebitPass(c.Request().Context(), models.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Debit pass finished", summary)
}

// RunSweeps runs a sweep pass now
func (h *SchedulerHandler) RunSweeps(c echo.Context) error {
	summary, err := h.schedulerUC.RunSweepPass(c.Request().Context(), models.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep pass finished", summary)
}

// ProcessMandate runs one mandate through the debit steps. The notice gate still applies.
func (h *SchedulerHandler) ProcessMandate(c echo.Context) error {
	mandateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid mandate id")
	}

	outcome, err := h.schedulerUC.ProcessMandate(c.Request().Context(), mandateID, models.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", outcome)
}
