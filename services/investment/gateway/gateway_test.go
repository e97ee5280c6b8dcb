package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_RoutesByFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	mf := mocks.NewMockProvider(ctrl)
	gold := mocks.NewMockProvider(ctrl)
	gw := NewRouter(mf, gold)

	mf.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(&models.PlaceOrderResult{Status: "executed"}, nil).Times(2)
	gold.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(&models.PlaceOrderResult{Status: "executed"}, nil)

	for _, instrument := range []string{models.InstrumentMFDebt, models.InstrumentMFEquity, models.InstrumentGold} {
		_, err := gw.PlaceOrder(context.Background(), models.PlaceOrderRequest{InstrumentType: instrument})
		require.NoError(t, err)
	}
}

func TestRouter_UnknownInstrument(t *testing.T) {
	gw := NewRouter(NewMockProvider(models.InstrumentMF), NewMockProvider(models.InstrumentGold))
	_, err := gw.PlaceOrder(context.Background(), models.PlaceOrderRequest{InstrumentType: "crypto"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestMockProvider(t *testing.T) {
	key := uuid.MustParse("3f2a9c1e-0000-4000-8000-000000000000")
	res, err := NewMockProvider(models.InstrumentGold).PlaceOrder(context.Background(), models.PlaceOrderRequest{IdempotencyKey: key})
	require.NoError(t, err)
	assert.Equal(t, "MOCK-GOLD-3F2A9C1E", res.ExternalOrderID)
	assert.Equal(t, "executed", res.Status)

	res, err = NewMockProvider(models.InstrumentMF).PlaceOrder(context.Background(), models.PlaceOrderRequest{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ExternalOrderID, "MOCK-MF-"))
}

func TestHTTPProvider_PlaceOrder(t *testing.T) {
	key := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "mf-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, key.String(), r.Header.Get("Idempotency-Key"))

		var body placeOrderBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(500), body.AmountPaise)
		assert.Equal(t, models.InstrumentMFEquity, body.InstrumentType)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"external_order_id":"MF-991","status":"executed"}`))
	}))
	defer server.Close()

	p := NewHTTPProvider(models.InstrumentMF, server.URL, "mf-key", &models.ProvidersConfig{Timeout: time.Second})
	res, err := p.PlaceOrder(context.Background(), models.PlaceOrderRequest{
		UserID: uuid.New(), AmountPaise: 500, InstrumentType: models.InstrumentMFEquity, IdempotencyKey: key,
	})
	require.NoError(t, err)
	assert.Equal(t, "MF-991", res.ExternalOrderID)
}

func TestHTTPProvider_ClientErrorIsProviderError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"kyc incomplete"}`))
	}))
	defer server.Close()

	p := NewHTTPProvider(models.InstrumentGold, server.URL, "", &models.ProvidersConfig{Timeout: time.Second, MaxRetries: 2})
	_, err := p.PlaceOrder(context.Background(), models.PlaceOrderRequest{IdempotencyKey: uuid.New()})
	assert.ErrorIs(t, err, models.ErrProvider)
	assert.Equal(t, 1, calls)
}

func TestNewInvestmentGW_DefaultsToMock(t *testing.T) {
	gw := NewInvestmentGW(&models.ProvidersConfig{Investment: "mock"})
	res, err := gw.PlaceOrder(context.Background(), models.PlaceOrderRequest{InstrumentType: models.InstrumentGold, IdempotencyKey: uuid.New()})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ExternalOrderID, "MOCK-GOLD-"))
}
