package investment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roundup/services/investment InvestmentRepo

// ShareFunc splits a locked pending total into per-instrument shares
type ShareFunc func(totalPaise int64) ([]models.AllocationShare, error)

// InvestmentRepo defines the data access operations for sweeps, orders, redemptions and the ledger
type InvestmentRepo interface {
	// Sweeps. A nil debitID sweeps unclaimed roundups, otherwise the roundups funded by that debit.
	PrepareSweep(ctx context.Context, userID uuid.UUID, debitID *uuid.UUID, shares ShareFunc) (*models.SweepPlan, error)
	FinishSweep(ctx context.Context, userID uuid.UUID, debitID *uuid.UUID, orders []models.InvestmentOrder, event models.AuditEvent) error
	MarkDebitSettled(ctx context.Context, debitID uuid.UUID, now time.Time) (bool, error)

	// Holdings
	GetRiskProfile(ctx context.Context, userID uuid.UUID) (string, error)
	SumPending(ctx context.Context, userID uuid.UUID) (int64, error)
	ListPositions(ctx context.Context, userID uuid.UUID) ([]models.Position, error)
	CreateRedemption(ctx context.Context, redemption *models.Redemption, event models.AuditEvent) error
	GetReconciliation(ctx context.Context, userID uuid.UUID) (*models.Reconciliation, error)

	// Listings
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.InvestmentOrder, error)
	ListLedger(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error)
}
