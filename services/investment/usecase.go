package investment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roundup/services/investment InvestmentUC

// InvestmentUC defines the allocation, sweep and holdings business logic
type InvestmentUC interface {
	PreviewAllocation(ctx context.Context, userID uuid.UUID, totalPaise int64, req models.SweepRequest) ([]models.AllocationShare, error)
	SweepPending(ctx context.Context, userID uuid.UUID, req models.SweepRequest) (*models.SweepResult, error)
	SettleDebit(ctx context.Context, debit *models.MandateDebit) (*models.SweepResult, error)
	Portfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
	RecordRedemption(ctx context.Context, req models.RedemptionRequest) (*models.Redemption, error)
	Reconcile(ctx context.Context, userID uuid.UUID) (*models.Reconciliation, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.InvestmentOrder, error)
	ListLedger(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error)
}
