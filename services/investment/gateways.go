package investment

import (
	"context"

	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/roundup/services/investment InvestmentGW,Provider

// Provider places orders for one instrument family
type Provider interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error)
}

// InvestmentGW routes orders to the provider serving the instrument
type InvestmentGW interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error)
}
