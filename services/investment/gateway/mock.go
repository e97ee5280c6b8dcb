package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

// MockProvider executes every order immediately
type MockProvider struct {
	prefix string
}

// NewMockProvider creates a mock for one instrument family
func NewMockProvider(family string) *MockProvider {
	return &MockProvider{prefix: "MOCK-" + strings.ToUpper(family)}
}

// PlaceOrder returns an executed order with an id derived from the idempotency key
func (p *MockProvider) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlaceOrderResult, error) {
	key := req.IdempotencyKey
	if key == uuid.Nil {
		key = uuid.New()
	}
	return &models.PlaceOrderResult{
		ExternalOrderID: fmt.Sprintf("%s-%s", p.prefix, strings.ToUpper(key.String()[:8])),
		Status:          string(models.OrderStatusExecuted),
	}, nil
}
