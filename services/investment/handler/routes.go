package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/services/investment"
	httpHandler "github.com/piresc/roundup/services/investment/handler/http"
)

// Handler combines all handlers for the investment service
type Handler struct {
	investmentHTTP *httpHandler.InvestmentHandler
}

// NewHandler creates a new combined handler
func NewHandler(investmentUC investment.InvestmentUC) *Handler {
	return &Handler{
		investmentHTTP: httpHandler.NewInvestmentHandler(investmentUC),
	}
}

// RegisterRoutes registers user routes on api and operator routes on internal
func (h *Handler) RegisterRoutes(api, internal *echo.Group) {
	api.POST("/investments/sweep", h.investmentHTTP.Sweep)
	api.GET("/investments/orders", h.investmentHTTP.ListOrders)
	api.POST("/allocations/preview", h.investmentHTTP.PreviewAllocation)

	api.GET("/ledger", h.investmentHTTP.ListLedger)
	api.GET("/ledger/reconcile", h.investmentHTTP.Reconcile)
	api.GET("/portfolio", h.investmentHTTP.Portfolio)

	internal.POST("/redemptions", h.investmentHTTP.RecordRedemption)
}
