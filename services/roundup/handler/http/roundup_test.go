package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/roundup/mocks"
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

func TestRecordTransaction_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().
		RecordTransaction(gomock.Any(), userID, models.TransactionRequest{AmountPaise: 24700, Merchant: "cafe"}).
		Return(&models.TransactionResult{Roundup: &models.RoundupEntry{AmountPaise: 300}}, nil)

	c, rec := newContext(http.MethodPost, "/api/transactions", `{"amount_paise":24700,"merchant":"cafe"}`, userID)
	require.NoError(t, h.RecordTransaction(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount_paise":300`)
}

func TestRecordTransaction_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRoundupHandler(mocks.NewMockRoundupUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/transactions", `{}`, uuid.Nil)
	require.NoError(t, h.RecordTransaction(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecordTransaction_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)

	mockUC.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: amount_paise must be positive", models.ErrValidation))

	c, rec := newContext(http.MethodPost, "/api/transactions", `{"amount_paise":0}`, uuid.New())
	require.NoError(t, h.RecordTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount_paise must be positive")
}

func TestRecordTransaction_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRoundupHandler(mocks.NewMockRoundupUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/transactions", `{"amount_paise":`, uuid.New())
	require.NoError(t, h.RecordTransaction(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRoundups(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().ListRoundups(gomock.Any(), userID, "pending").
		Return([]models.RoundupEntry{{AmountPaise: 300}, {AmountPaise: 400}}, nil)
	mockUC.EXPECT().PendingTotal(gomock.Any(), userID).Return(int64(700), nil)

	c, rec := newContext(http.MethodGet, "/api/roundups?status=pending", "", userID)
	require.NoError(t, h.ListRoundups(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data roundupList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Roundups, 2)
	assert.Equal(t, int64(700), body.Data.PendingPaise)
}

func TestListRoundups_InternalErrorHidesDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)

	mockUC.EXPECT().ListRoundups(gomock.Any(), gomock.Any(), "").Return(nil, errors.New("connection refused"))

	c, rec := newContext(http.MethodGet, "/api/roundups", "", uuid.New())
	require.NoError(t, h.ListRoundups(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestUpdateCaps_NullClearsAndAbsentKeeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().UpdateCaps(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, update models.CapUpdate) (*models.CapSetting, error) {
			assert.True(t, update.DailyCapSet)
			assert.Nil(t, update.DailyCapPaise)
			assert.False(t, update.MonthlyCapSet)
			require.NotNil(t, update.Paused)
			assert.True(t, *update.Paused)
			return &models.CapSetting{UserID: userID, Paused: true}, nil
		})

	c, rec := newContext(http.MethodPatch, "/api/caps", `{"daily_cap_paise":null,"paused":true}`, userID)
	require.NoError(t, h.UpdateCaps(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCaps_SetsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)

	mockUC.EXPECT().UpdateCaps(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, update models.CapUpdate) (*models.CapSetting, error) {
			require.NotNil(t, update.MonthlyCapPaise)
			assert.Equal(t, int64(50000), *update.MonthlyCapPaise)
			return &models.CapSetting{MonthlyCapPaise: update.MonthlyCapPaise}, nil
		})

	c, rec := newContext(http.MethodPatch, "/api/caps", `{"monthly_cap_paise":50000}`, uuid.New())
	require.NoError(t, h.UpdateCaps(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCaps_RejectsNonInteger(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRoundupHandler(mocks.NewMockRoundupUC(ctrl))

	c, rec := newContext(http.MethodPatch, "/api/caps", `{"daily_cap_paise":"lots"}`, uuid.New())
	require.NoError(t, h.UpdateCaps(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRoundupUC(ctrl)
	h := NewRoundupHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().UpdatePreferences(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, update models.PreferenceUpdate) (*models.UserPreference, error) {
			require.NotNil(t, update.RiskProfile)
			assert.Equal(t, models.RiskLow, *update.RiskProfile)
			assert.Nil(t, update.SweepFrequency)
			return &models.UserPreference{RiskProfile: models.RiskLow}, nil
		})

	c, rec := newContext(http.MethodPatch, "/api/preferences", `{"risk_profile":"low"}`, userID)
	require.NoError(t, h.UpdatePreferences(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
