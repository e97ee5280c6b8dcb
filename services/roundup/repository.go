package roundup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roundup/services/roundup RoundupRepo

// CapFunc decides how much of a roundup the locked cap row still allows
type CapFunc func(caps *models.CapSetting, sums models.RoundupWindowSums) int64

// CapUpdateFunc edits the locked cap row before it is written back
type CapUpdateFunc func(caps *models.CapSetting) error

// RoundupRepo defines the data access operations for transactions and roundups
type RoundupRepo interface {
	// Transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	CreateTransactionWithRoundup(ctx context.Context, txn *models.Transaction, allow CapFunc) (*models.RoundupEntry, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)

	// Roundups
	ListRoundups(ctx context.Context, userID uuid.UUID, status models.RoundupStatus) ([]models.RoundupEntry, error)
	SumPending(ctx context.Context, userID uuid.UUID) (int64, error)

	// Settings
	GetCapSetting(ctx context.Context, userID uuid.UUID) (*models.CapSetting, error)
	UpdateCapSetting(ctx context.Context, userID uuid.UUID, now time.Time, fn CapUpdateFunc) (*models.CapSetting, error)
	GetPreference(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error)
	SavePreference(ctx context.Context, pref *models.UserPreference) error
}
