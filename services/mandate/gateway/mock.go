package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

// MockGW activates mandates instantly and captures every debit
type MockGW struct{}

// NewMockGW creates the mock payment gateway
func NewMockGW() *MockGW {
	return &MockGW{}
}

// CreateMandate returns an active mandate with a mock authorization link
func (g *MockGW) CreateMandate(ctx context.Context, req models.CreateMandateRequest) (*models.CreateMandateResult, error) {
	ext := "ext-" + uuid.NewString()
	return &models.CreateMandateResult{
		ExternalID: ext,
		Status:     string(models.MandateStatusActive),
		AuthLink:   fmt.Sprintf("https://mock-upi.local/mandate/%s", ext),
	}, nil
}

func (g *MockGW) PauseMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return &models.MandateStatusResult{Status: string(models.MandateStatusPaused)}, nil
}

func (g *MockGW) ResumeMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return &models.MandateStatusResult{Status: string(models.MandateStatusActive)}, nil
}

func (g *MockGW) CancelMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error) {
	return &models.MandateStatusResult{Status: string(models.MandateStatusCancelled)}, nil
}

// ExecuteDebit captures the amount with a payment id derived from the reference
func (g *MockGW) ExecuteDebit(ctx context.Context, req models.DebitRequest) (*models.DebitResult, error) {
	return &models.DebitResult{
		PaymentID: "pay_mock_" + req.Reference.String()[:8],
		Status:    "captured",
	}, nil
}
