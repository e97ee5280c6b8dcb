package mandate

import (
	"context"

	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/roundup/services/mandate PaymentGW

// PaymentGW is the recurring-payment provider holding the mandates
type PaymentGW interface {
	CreateMandate(ctx context.Context, req models.CreateMandateRequest) (*models.CreateMandateResult, error)
	PauseMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error)
	ResumeMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error)
	CancelMandate(ctx context.Context, externalID string) (*models.MandateStatusResult, error)
	ExecuteDebit(ctx context.Context, req models.DebitRequest) (*models.DebitResult, error)
}
