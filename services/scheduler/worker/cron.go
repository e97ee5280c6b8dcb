package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/scheduler"
	"github.com/robfig/cron/v3"
)

// Worker triggers the debit and sweep passes on their cron schedules.
// A pass still running when its next tick fires is not started twice.
type Worker struct {
	cfg         models.SchedulerConfig
	schedulerUC scheduler.SchedulerUC
	cron        *cron.Cron
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWorker creates a worker; schedules are evaluated in UTC
func NewWorker(cfg models.SchedulerConfig, schedulerUC scheduler.SchedulerUC) *Worker {
	cl := cronLogger{}
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		cfg:         cfg,
		schedulerUC: schedulerUC,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start registers the jobs and starts the cron loop
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc(w.cfg.DebitCron, w.runDebitPass); err != nil {
		return fmt.Errorf("invalid debit cron %q: %w", w.cfg.DebitCron, err)
	}
	if _, err := w.cron.AddFunc(w.cfg.SweepCron, w.runSweepPass); err != nil {
		return fmt.Errorf("invalid sweep cron %q: %w", w.cfg.SweepCron, err)
	}

	w.cron.Start()
	logger.Info("Scheduler started",
		logger.String("debit_cron", w.cfg.DebitCron),
		logger.String("sweep_cron", w.cfg.SweepCron))
	return nil
}

// Stop cancels running passes and waits for them to return or ctx to expire
func (w *Worker) Stop(ctx context.Context) error {
	w.cancel()
	done := w.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler did not stop: %w", ctx.Err())
	}
}

func (w *Worker) runDebitPass() {
	if _, err := w.schedulerUC.RunDebitPass(w.ctx, models.Now()); err != nil {
		logger.Error("Debit pass failed", logger.Err(err))
	}
}

func (w *Worker) runSweepPass() {
	if _, err := w.schedulerUC.RunSweepPass(w.ctx, models.Now()); err != nil {
		logger.Error("Sweep pass failed", logger.Err(err))
	}
}

// cronLogger routes cron's own messages to the global zap logger
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.GetGlobalLogger().Sugar().Debugw("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.GetGlobalLogger().Sugar().Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
