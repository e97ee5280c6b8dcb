package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roundup/services/scheduler SchedulerRepo

// SchedulerRepo defines the queries the periodic passes select their work with
type SchedulerRepo interface {
	ListDueMandates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ListUnsettledDebits(ctx context.Context, limit int) ([]models.MandateDebit, error)
	ListSweepCandidates(ctx context.Context, limit int) ([]models.SweepCandidate, error)
}
