package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roundup/services/scheduler SchedulerUC

// SchedulerUC runs the debit and sweep passes
type SchedulerUC interface {
	RunDebitPass(ctx context.Context, now time.Time) (*models.DebitPassSummary, error)
	ProcessMandate(ctx context.Context, mandateID uuid.UUID, now time.Time) (*models.DebitOutcome, error)
	RunSweepPass(ctx context.Context, now time.Time) (*models.SweepPassSummary, error)
}
