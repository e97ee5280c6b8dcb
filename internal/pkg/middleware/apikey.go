package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	// Callers allowed on internal routes
	CallerScheduler = "scheduler"
	CallerAdmin     = "admin"
)

// APIKeyMiddleware authenticates internal callers by their shared key
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware loads the configured keys; empty keys are never accepted
func NewAPIKeyMiddleware(config *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{keys: map[string]string{
		CallerScheduler: config.Scheduler,
		CallerAdmin:     config.Admin,
	}}
}

// ValidateAPIKey accepts a request whose key belongs to one of the allowed callers
func (m *APIKeyMiddleware) ValidateAPIKey(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, caller := range allowed {
				want := m.keys[caller]
				if want != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(want)) == 1 {
					c.Set("caller", caller)
					return next(c)
				}
			}

			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
