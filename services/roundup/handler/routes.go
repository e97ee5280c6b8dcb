package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/services/roundup"
	httpHandler "github.com/piresc/roundup/services/roundup/handler/http"
)

// Handler combines all handlers for the roundup service
type Handler struct {
	roundupHTTP *httpHandler.RoundupHandler
}

// NewHandler creates a new combined handler
func NewHandler(roundupUC roundup.RoundupUC) *Handler {
	return &Handler{
		roundupHTTP: httpHandler.NewRoundupHandler(roundupUC),
	}
}

// RegisterRoutes registers the user-facing routes on the authenticated api group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/transactions", h.roundupHTTP.RecordTransaction)
	api.GET("/transactions", h.roundupHTTP.ListTransactions)
	api.GET("/roundups", h.roundupHTTP.ListRoundups)

	api.GET("/caps", h.roundupHTTP.GetCaps)
	api.PATCH("/caps", h.roundupHTTP.UpdateCaps)

	api.GET("/preferences", h.roundupHTTP.GetPreferences)
	api.PATCH("/preferences", h.roundupHTTP.UpdatePreferences)
}
