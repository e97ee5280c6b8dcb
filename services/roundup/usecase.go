package roundup

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roundup/services/roundup RoundupUC

// RoundupUC defines the roundup accumulation business logic
type RoundupUC interface {
	RecordTransaction(ctx context.Context, userID uuid.UUID, req models.TransactionRequest) (*models.TransactionResult, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
	ListRoundups(ctx context.Context, userID uuid.UUID, status string) ([]models.RoundupEntry, error)
	PendingTotal(ctx context.Context, userID uuid.UUID) (int64, error)
	GetCaps(ctx context.Context, userID uuid.UUID) (*models.CapSetting, error)
	UpdateCaps(ctx context.Context, userID uuid.UUID, update models.CapUpdate) (*models.CapSetting, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, update models.PreferenceUpdate) (*models.UserPreference, error)
}
