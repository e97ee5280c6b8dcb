package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment"
)

// InvestmentGW routes each order to the provider of its instrument family
type InvestmentGW struct {
	providers map[string]investment.Provider
}

// NewInvestmentGW creates a gateway with the MF and gold providers selected by configuration
func NewInvestmentGW(cfg *models.ProvidersConfig) investment.InvestmentGW {
	if cfg.Investment == "http" {
		logger.Info("Using HTTP investment providers",
			logger.String("mf_base_url", cfg.MFBaseURL),
			logger.String("gold_base_url", cfg.GoldBaseURL))
		return NewRouter(
			NewHTTPProvider(models.InstrumentMF, cfg.MFBaseURL, cfg.MFAPIKey, cfg),
			NewHTTPProvider(models.InstrumentGold, cfg.GoldBaseURL, cfg.GoldAPIKey, cfg),
		)
	}

	logger.Info("Using mock investment providers")
	return NewRouter(NewMockProvider(models.InstrumentMF), NewMockProvider(models.InstrumentGold))
}

// NewRouter creates a gateway over explicit providers
func NewRouter(mf, gold investment.Provider) *InvestmentGW {
	return &InvestmentGW{providers: map[string]investment.Provider{
		models.InstrumentMF:   mf,
		models.InstrumentGold: gold,
	}}
}

// PlaceOrder sends the order to the family provider; mf_* goes to MF and gold to gold
func (gw *InvestmentGW) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error) {
	provider, ok := gw.providers[models.InstrumentFamily(req.InstrumentType)]
	if !ok || provider == nil {
		return nil, fmt.Errorf("%w: no provider for instrument %q", models.ErrValidation, req.InstrumentType)
	}
	return provider.PlaceOrder(ctx, req)
}
