package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllHealth(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("ok", CheckerFunc(func(context.Context) error { return nil }))
	svc.AddChecker("broken", CheckerFunc(func(context.Context) error { return errors.New("down") }))

	resp := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["ok"].Status)
	assert.Equal(t, "down", resp.Dependencies["broken"].Error)
}

func TestRedisChecker(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	checker := Redis(&database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})})
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestHealthEndpoints(t *testing.T) {
	e := echo.New()
	svc := NewHealthService()
	healthy := true
	svc.AddChecker("postgres", CheckerFunc(func(context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("connection refused")
	}))
	RegisterHealthEndpoints(e, "roundup-service", "1.0.0", svc)

	tests := []struct {
		name       string
		path       string
		healthy    bool
		wantStatus int
	}{
		{"basic", "/health", false, http.StatusOK},
		{"live", "/health/live", false, http.StatusOK},
		{"ready healthy", "/health/ready", true, http.StatusOK},
		{"ready unhealthy", "/health/ready", false, http.StatusServiceUnavailable},
		{"detailed healthy", "/health/detailed", true, http.StatusOK},
		{"detailed unhealthy", "/health/detailed", false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthy = tt.healthy
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "roundup-service", body["service"])
		})
	}
}
