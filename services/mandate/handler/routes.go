package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/services/mandate"
	httpHandler "github.com/piresc/roundup/services/mandate/handler/http"
)

// Handler combines all HTTP handlers for the mandate service
type Handler struct {
	mandateHTTP *httpHandler.MandateHandler
	webhookHTTP *httpHandler.WebhookHandler
	eventHTTP   *httpHandler.EventHandler
}

// NewHandler creates a new combined handler
func NewHandler(mandateUC mandate.MandateUC, webhookSecret string) *Handler {
	return &Handler{
		mandateHTTP: httpHandler.NewMandateHandler(mandateUC),
		webhookHTTP: httpHandler.NewWebhookHandler(mandateUC, webhookSecret),
		eventHTTP:   httpHandler.NewEventHandler(mandateUC),
	}
}

// RegisterRoutes registers user routes on api and provider callbacks on webhooks
func (h *Handler) RegisterRoutes(api, webhooks *echo.Group) {
	api.POST("/mandates", h.mandateHTTP.Create)
	api.GET("/mandates", h.mandateHTTP.List)
	api.GET("/mandates/:id", h.mandateHTTP.Get)
	api.POST("/mandates/:id/pause", h.mandateHTTP.Pause)
	api.POST("/mandates/:id/resume", h.mandateHTTP.Resume)
	api.POST("/mandates/:id/cancel", h.mandateHTTP.Cancel)
	api.GET("/events", h.eventHTTP.Events)
	api.GET("/notifications", h.eventHTTP.Notifications)

	webhooks.POST("/payments", h.webhookHTTP.Payments)
}
