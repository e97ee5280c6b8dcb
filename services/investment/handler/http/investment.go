package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/investment"
)

// InvestmentHandler handles HTTP requests for sweeps, holdings and the ledger
type InvestmentHandler struct {
	investmentUC investment.InvestmentUC
}

// NewInvestmentHandler creates a new investment HTTP handler
func NewInvestmentHandler(investmentUC investment.InvestmentUC) *InvestmentHandler {
	return &InvestmentHandler{
		investmentUC: investmentUC,
	}
}

type previewRequest struct {
	models.SweepRequest
	TotalPaise int64 `json:"total_paise"`
}

// Sweep invests the caller's pending roundups now
func (h *InvestmentHandler) Sweep(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SweepRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.investmentUC.SweepPending(c.Request().Context(), userID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if result.Status == models.SweepStatusNoPending {
		return utils.SuccessResponse(c, http.StatusOK, "No pending roundups", result)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep "+result.Status, result)
}

// PreviewAllocation returns the shares a sweep would place
func (h *InvestmentHandler) PreviewAllocation(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	shares, err := h.investmentUC.PreviewAllocation(c.Request().Context(), userID, req.TotalPaise, req.SweepRequest)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", shares)
}

// ListOrders returns the caller's investment orders
func (h *InvestmentHandler) ListOrders(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	orders, err := h.investmentUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// ListLedger returns the caller's ledger entries
func (h *InvestmentHandler) ListLedger(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	entries, err := h.investmentUC.ListLedger(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// Reconcile checks the caller's ledger against orders and redemptions
func (h *InvestmentHandler) Reconcile(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rec, err := h.investmentUC.Reconcile(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rec)
}

// Portfolio returns the caller's holdings
func (h *InvestmentHandler) Portfolio(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	portfolio, err := h.investmentUC.Portfolio(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", portfolio)
}

// RecordRedemption records a withdrawal reported by an operator or provider job
func (h *InvestmentHandler) RecordRedemption(c echo.Context) error {
	var req models.RedemptionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	redemption, err := h.investmentUC.RecordRedemption(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Redemption recorded", redemption)
}
