package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/roundup/internal/pkg/http"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// HTTPProvider places orders with a remote fund or gold provider
type HTTPProvider struct {
	family string
	client *httpclient.Client
}

type placeOrderBody struct {
	UserID         string `json:"user_id"`
	AmountPaise    int64  `json:"amount_paise"`
	InstrumentType string `json:"instrument_type"`
	Reference      string `json:"reference"`
}

// NewHTTPProvider creates a provider authenticated with an API key
func NewHTTPProvider(family, baseURL, apiKey string, cfg *models.ProvidersConfig) *HTTPProvider {
	return &HTTPProvider{
		family: family,
		client: httpclient.NewClient(httpclient.ClientConfig{
			Name:       family + "-provider",
			BaseURL:    baseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			Auth:       httpclient.APIKeyAuth(apiKey),
		}),
	}
}

// PlaceOrder posts the order; the order id doubles as the idempotency key
func (p *HTTPProvider) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error) {
	body := placeOrderBody{
		UserID:         req.UserID.String(),
		AmountPaise:    req.AmountPaise,
		InstrumentType: req.InstrumentType,
		Reference:      req.IdempotencyKey.String(),
	}
	headers := map[string]string{httpclient.IdempotencyHeader: req.IdempotencyKey.String()}

	var result models.PlaceOrderResult
	if err := p.client.PostJSON(ctx, "/orders", body, &result, headers); err != nil {
		logger.WarnCtx(ctx, "Investment order failed",
			logger.String("provider", p.family),
			logger.String("instrument", req.InstrumentType),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %s order failed: %v", models.ErrProvider, p.family, err)
	}
	return &result, nil
}
