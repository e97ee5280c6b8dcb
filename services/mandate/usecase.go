package mandate

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roundup/services/mandate MandateUC

// MandateUC defines the mandate lifecycle and provider callback logic
type MandateUC interface {
	Create(ctx context.Context, userID uuid.UUID, req models.MandateRequest) (*models.Mandate, error)
	Pause(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error)
	Resume(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error)
	Cancel(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error)
	Get(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.Mandate, error)
	HandleCallback(ctx context.Context, cb models.ProviderCallback) (string, error)
	ListEvents(ctx context.Context, userID uuid.UUID, filter models.EventFilter) ([]models.AuditEvent, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEvent, error)
}
