package usecase

import (
	"time"

	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/lock"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/internal/pkg/observability"
	"github.com/piresc/roundup/services/investment"
	"github.com/piresc/roundup/services/mandate"
	"github.com/piresc/roundup/services/scheduler"
)

const (
	// minNoticeWindow is the regulatory floor between a pre-debit notice and the debit
	minNoticeWindow = 24 * time.Hour

	dueBatchSize       = 500
	unsettledBatchSize = 200
	sweepBatchSize     = 500
)

// SchedulerUC implements the scheduler use case interface
type SchedulerUC struct {
	cfg           *models.Config
	schedulerRepo scheduler.SchedulerRepo
	mandateRepo   mandate.MandateRepo
	paymentGW     mandate.PaymentGW
	noticeGW      scheduler.NoticeGW
	investmentUC  investment.InvestmentUC
	locker        lock.Locker
	publisher     audit.Publisher
	tracer        observability.Tracer
	clock         func() time.Time
}

// NewSchedulerUC creates a new scheduler use case
func NewSchedulerUC(
	cfg *models.Config,
	schedulerRepo scheduler.SchedulerRepo,
	mandateRepo mandate.MandateRepo,
	paymentGW mandate.PaymentGW,
	noticeGW scheduler.NoticeGW,
	investmentUC investment.InvestmentUC,
	locker lock.Locker,
	publisher audit.Publisher,
	tracer observability.Tracer,
) *SchedulerUC {
	if tracer == nil {
		tracer = observability.NewNoOpTracer()
	}
	return &SchedulerUC{
		cfg:           cfg,
		schedulerRepo: schedulerRepo,
		mandateRepo:   mandateRepo,
		paymentGW:     paymentGW,
		noticeGW:      noticeGW,
		investmentUC:  investmentUC,
		locker:        locker,
		publisher:     publisher,
		tracer:        tracer,
		clock:         models.Now,
	}
}

func (uc *SchedulerUC) noticeWindow() time.Duration {
	if uc.cfg.Scheduler.NoticeWindow < minNoticeWindow {
		return minNoticeWindow
	}
	return uc.cfg.Scheduler.NoticeWindow
}

// lockExpiry outlives the provider call so the lock cannot lapse mid-debit
func (uc *SchedulerUC) lockExpiry() time.Duration {
	expiry := uc.cfg.Scheduler.LockExpiry
	if floor := 2 * uc.debitTimeout(); expiry < floor {
		expiry = floor
	}
	return expiry
}

func (uc *SchedulerUC) debitTimeout() time.Duration {
	if uc.cfg.Scheduler.DebitTimeout <= 0 {
		return 30 * time.Second
	}
	return uc.cfg.Scheduler.DebitTimeout
}

func (uc *SchedulerUC) insufficientRetry() time.Duration {
	if uc.cfg.Scheduler.InsufficientRetry <= 0 {
		return 24 * time.Hour
	}
	return uc.cfg.Scheduler.InsufficientRetry
}

func (uc *SchedulerUC) maxFailures() int {
	if uc.cfg.Scheduler.MaxFailures <= 0 {
		return 3
	}
	return uc.cfg.Scheduler.MaxFailures
}
