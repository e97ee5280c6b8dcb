package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestSweep_CustomAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)
	userID := uuid.New()

	want := models.SweepRequest{Allocation: []models.AllocationSlice{
		{Instrument: "mf_equity", Percent: 60},
		{Instrument: "gold", Percent: 40},
	}}
	mockUC.EXPECT().SweepPending(gomock.Any(), userID, want).
		Return(&models.SweepResult{Status: models.SweepStatusExecuted, TotalPaise: 1000, InvestedPaise: 1000}, nil)

	body := `{"allocation":[{"instrument":"mf_equity","percent":60},{"instrument":"gold","percent":40}]}`
	c, rec := newContext(http.MethodPost, "/api/investments/sweep", body, userID)
	require.NoError(t, h.Sweep(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invested_paise":1000`)
}

func TestSweep_AllOrdersFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)

	mockUC.EXPECT().SweepPending(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.SweepResult{Status: models.SweepStatusFailed}, fmt.Errorf("%w: every order of the sweep failed", models.ErrProvider))

	c, rec := newContext(http.MethodPost, "/api/investments/sweep", `{}`, uuid.New())
	require.NoError(t, h.Sweep(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSweep_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)

	mockUC.EXPECT().SweepPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrLocked)

	c, rec := newContext(http.MethodPost, "/api/investments/sweep", `{}`, uuid.New())
	require.NoError(t, h.Sweep(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPreviewAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().PreviewAllocation(gomock.Any(), userID, int64(1000), models.SweepRequest{RiskProfile: "high"}).
		Return([]models.AllocationShare{{Instrument: "mf_equity", AmountPaise: 700}}, nil)

	c, rec := newContext(http.MethodPost, "/api/allocations/preview", `{"total_paise":1000,"risk_profile":"high"}`, userID)
	require.NoError(t, h.PreviewAllocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount_paise":700`)
}

func TestListings_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewInvestmentHandler(mocks.NewMockInvestmentUC(ctrl))

	for _, fn := range []echo.HandlerFunc{h.Sweep, h.PreviewAllocation, h.ListOrders, h.ListLedger, h.Reconcile, h.Portfolio} {
		c, rec := newContext(http.MethodGet, "/api/portfolio", ``, uuid.Nil)
		require.NoError(t, fn(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestPortfolioAndReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().Portfolio(gomock.Any(), userID).Return(&models.Portfolio{UserID: userID, PendingPaise: 42}, nil)
	mockUC.EXPECT().Reconcile(gomock.Any(), userID).Return(&models.Reconciliation{UserID: userID, Balanced: true}, nil)
	mockUC.EXPECT().ListOrders(gomock.Any(), userID).Return([]models.InvestmentOrder{}, nil)
	mockUC.EXPECT().ListLedger(gomock.Any(), userID).Return([]models.LedgerEntry{}, nil)

	c, rec := newContext(http.MethodGet, "/api/portfolio", ``, userID)
	require.NoError(t, h.Portfolio(c))
	assert.Contains(t, rec.Body.String(), `"pending_paise":42`)

	c, rec = newContext(http.MethodGet, "/api/ledger/reconcile", ``, userID)
	require.NoError(t, h.Reconcile(c))
	assert.Contains(t, rec.Body.String(), `"balanced":true`)

	c, rec = newContext(http.MethodGet, "/api/investments/orders", ``, userID)
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/api/ledger", ``, userID)
	require.NoError(t, h.ListLedger(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecordRedemption(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().RecordRedemption(gomock.Any(), models.RedemptionRequest{UserID: userID, InstrumentType: "gold", AmountPaise: 100}).
		Return(&models.Redemption{UserID: userID, AmountPaise: 100}, nil)

	body := fmt.Sprintf(`{"user_id":"%s","instrument_type":"gold","amount_paise":100}`, userID)
	c, rec := newContext(http.MethodPost, "/internal/redemptions", body, uuid.Nil)
	require.NoError(t, h.RecordRedemption(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecordRedemption_ExceedsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockInvestmentUC(ctrl)
	h := NewInvestmentHandler(mockUC)

	mockUC.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: redemption exceeds position", models.ErrValidation))

	c, rec := newContext(http.MethodPost, "/internal/redemptions", `{"instrument_type":"gold","amount_paise":100}`, uuid.Nil)
	require.NoError(t, h.RecordRedemption(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
