package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/roundup"
)

// RoundupHandler handles HTTP requests for transactions, roundups, caps and preferences
type RoundupHandler struct {
	roundupUC roundup.RoundupUC
}

// NewRoundupHandler creates a new roundup HTTP handler
func NewRoundupHandler(roundupUC roundup.RoundupUC) *RoundupHandler {
	return &RoundupHandler{
		roundupUC: roundupUC,
	}
}

// roundupList is the GET /roundups payload
type roundupList struct {
	Roundups     []models.RoundupEntry `json:"roundups"`
	PendingPaise int64                 `json:"pending_paise"`
}

// capsPatch keeps raw cap values so an explicit null can clear a cap
type capsPatch struct {
	DailyCapPaise   json.RawMessage `json:"daily_cap_paise"`
	MonthlyCapPaise json.RawMessage `json:"monthly_cap_paise"`
	Paused          *bool           `json:"paused"`
}

// RecordTransaction records a purchase and its roundup
func (h *RoundupHandler) RecordTransaction(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.roundupUC.RecordTransaction(c.Request().Context(), userID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded", result)
}

// ListTransactions returns the latest purchases
func (h *RoundupHandler) ListTransactions(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	txns, err := h.roundupUC.ListTransactions(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", txns)
}

// ListRoundups returns roundups filtered by ?status= and the pending total
func (h *RoundupHandler) ListRoundups(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ctx := c.Request().Context()
	entries, err := h.roundupUC.ListRoundups(ctx, userID, c.QueryParam("status"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	pending, err := h.roundupUC.PendingTotal(ctx, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", roundupList{Roundups: entries, PendingPaise: pending})
}

// GetCaps returns the user's caps
func (h *RoundupHandler) GetCaps(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	caps, err := h.roundupUC.GetCaps(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", caps)
}

// UpdateCaps partially updates the user's caps
func (h *RoundupHandler) UpdateCaps(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req capsPatch
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	update := models.CapUpdate{Paused: req.Paused}
	var err error
	if update.DailyCapPaise, update.DailyCapSet, err = optionalPaise(req.DailyCapPaise); err != nil {
		return utils.BadRequestResponse(c, "daily_cap_paise must be an integer or null")
	}
	if update.MonthlyCapPaise, update.MonthlyCapSet, err = optionalPaise(req.MonthlyCapPaise); err != nil {
		return utils.BadRequestResponse(c, "monthly_cap_paise must be an integer or null")
	}

	caps, err := h.roundupUC.UpdateCaps(c.Request().Context(), userID, update)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Caps updated", caps)
}

// GetPreferences returns the user's preferences
func (h *RoundupHandler) GetPreferences(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	pref, err := h.roundupUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", pref)
}

// UpdatePreferences partially updates the user's preferences
func (h *RoundupHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PreferenceUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	pref, err := h.roundupUC.UpdatePreferences(c.Request().Context(), userID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Preferences updated", pref)
}

// optionalPaise decodes a raw field: absent leaves it unset, null clears it
func optionalPaise(raw json.RawMessage) (*int64, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, true, nil
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}
