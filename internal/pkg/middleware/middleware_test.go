package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/roundup/internal/pkg/jwt"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestValidateAPIKey(t *testing.T) {
	mw := NewAPIKeyMiddleware(&models.APIKeyConfig{Scheduler: "sched-key", Admin: ""})

	tests := []struct {
		name       string
		key        string
		allowed    []string
		wantStatus int
	}{
		{"missing key", "", []string{CallerScheduler}, http.StatusUnauthorized},
		{"valid scheduler key", "sched-key", []string{CallerScheduler}, http.StatusOK},
		{"caller not allowed", "sched-key", []string{CallerAdmin}, http.StatusUnauthorized},
		{"wrong key", "nope", []string{CallerScheduler, CallerAdmin}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/internal/scheduler/debits/run", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw.ValidateAPIKey(tt.allowed...)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Expiration: 10}
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "user", cfg)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"bad format", "Token " + token, http.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/roundups", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, JWTAuthMiddleware(cfg)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, c.Get("user_id"))
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, RequestIDMiddleware()(okHandler)(c))
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, RequestIDMiddleware()(okHandler)(c))
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	zl := logger.NewFromCore(core, "roundup-test")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/boom", nil), rec)

	err := PanicRecoveryWithZapMiddleware(zl)(func(echo.Context) error {
		panic("unexpected nil mandate")
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}
