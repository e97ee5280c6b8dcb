package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/services/scheduler"
	httpHandler "github.com/piresc/roundup/services/scheduler/handler/http"
)

// Handler combines all handlers for the scheduler service
type Handler struct {
	schedulerHTTP *httpHandler.SchedulerHandler
}

// NewHandler creates a new combined handler
func NewHandler(schedulerUC scheduler.SchedulerUC) *Handler {
	return &Handler{
		schedulerHTTP: httpHandler.NewSchedulerHandler(schedulerUC),
	}
}

// RegisterRoutes registers the operator triggers on internal
func (h *Handler) RegisterRoutes(internal *echo.Group) {
	internal.POST("/scheduler/debits/run", h.schedulerHTTP.RunDebits)
	internal.POST("/scheduler/sweeps/run", h.schedulerHTTP.RunSweeps)
	internal.POST("/mandates/:id/debit", h.schedulerHTTP.ProcessMandate)
}
