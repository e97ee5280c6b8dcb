package mandate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roundup/services/mandate MandateRepo,CallbackDeduper

// MutateFunc changes a mandate read under its row lock and returns the events to record with the change.
// Returning an error aborts the write.
type MutateFunc func(m *models.Mandate) ([]models.AuditEvent, error)

// MandateRepo defines the data access operations for mandates and their debit attempts
type MandateRepo interface {
	CreateMandate(ctx context.Context, m *models.Mandate) error
	MutateMandate(ctx context.Context, id uuid.UUID, fn MutateFunc) (*models.Mandate, error)
	GetMandate(ctx context.Context, id uuid.UUID) (*models.Mandate, error)
	GetMandateByExternalID(ctx context.Context, externalID string) (*models.Mandate, error)
	ListMandates(ctx context.Context, userID uuid.UUID) ([]models.Mandate, error)

	// Debit attempts. Each call is one transaction holding the mandate row lock.
	SumUnclaimed(ctx context.Context, userID uuid.UUID) (int64, error)
	BeginDebitAttempt(ctx context.Context, mandateID uuid.UUID, amountPaise int64, now time.Time, noticeWindow time.Duration) (*models.MandateDebit, error)
	CompleteDebit(ctx context.Context, debitID uuid.UUID, paymentID string, fn MutateFunc) (*models.MandateDebit, error)
	FailDebit(ctx context.Context, debitID uuid.UUID, paymentID, reason string, fn MutateFunc) (*models.MandateDebit, error)
	RecordCharge(ctx context.Context, mandateID uuid.UUID, ref models.ChargeRef, amountPaise int64, fn MutateFunc) (*models.MandateDebit, error)
	MatchDebit(ctx context.Context, mandateID uuid.UUID, ref models.ChargeRef) (*models.MandateDebit, error)
	GetDebit(ctx context.Context, id uuid.UUID) (*models.MandateDebit, error)

	ListEvents(ctx context.Context, userID uuid.UUID, filter models.EventFilter) ([]models.AuditEvent, error)
}

// CallbackDeduper remembers provider event ids already applied
type CallbackDeduper interface {
	// MarkSeen returns false when the event id was already recorded
	MarkSeen(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}
