package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate/gateway"
	"github.com/piresc/roundup/services/mandate/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func newWebhookContext(body, signature, eventID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(gateway.SignatureHeader, signature)
	}
	if eventID != "" {
		req.Header.Set(gateway.EventIDHeader, eventID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPayments_Processed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewWebhookHandler(mockUC, testSecret)

	body := `{"event":"subscription.charged","payload":{"subscription":{"entity":{"id":"sub_1"}},"payment":{"entity":{"id":"pay_1","amount":500}}}}`
	mockUC.EXPECT().HandleCallback(gomock.Any(), models.ProviderCallback{
		EventID: "evt_1", Event: models.CallbackCharged, ExternalMandateID: "sub_1", PaymentID: "pay_1", AmountPaise: 500,
	}).Return(models.CallbackProcessed, nil)

	c, rec := newWebhookContext(body, gateway.Sign([]byte(body), testSecret), "evt_1")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"processed"}`, rec.Body.String())
}

func TestPayments_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWebhookHandler(mocks.NewMockMandateUC(ctrl), testSecret)

	body := `{"event":"subscription.cancelled"}`
	c, rec := newWebhookContext(body, gateway.Sign([]byte(body), "wrong"), "")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPayments_MissingSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWebhookHandler(mocks.NewMockMandateUC(ctrl), testSecret)

	c, rec := newWebhookContext(`{"event":"subscription.cancelled"}`, "", "")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPayments_Unparseable(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewWebhookHandler(mocks.NewMockMandateUC(ctrl), testSecret)

	body := `{"event":`
	c, rec := newWebhookContext(body, gateway.Sign([]byte(body), testSecret), "")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayments_Ignored(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewWebhookHandler(mockUC, testSecret)

	body := `{"event":"invoice.paid","payload":{"subscription":{"entity":{"id":"sub_9"}}}}`
	mockUC.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(models.CallbackIgnored, nil)

	c, rec := newWebhookContext(body, gateway.Sign([]byte(body), testSecret), "")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ignored"}`, rec.Body.String())
}

func TestPayments_ProcessingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewWebhookHandler(mockUC, testSecret)

	body := `{"event":"subscription.paused","payload":{"subscription":{"entity":{"id":"sub_1"}}}}`
	mockUC.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return("", errors.New("db down"))

	c, rec := newWebhookContext(body, gateway.Sign([]byte(body), testSecret), "")
	require.NoError(t, h.Payments(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
