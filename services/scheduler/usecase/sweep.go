package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// RunSweepPass invests pending roundups of users without an active mandate, at most once per
// the user's sweep frequency
func (uc *SchedulerUC) RunSweepPass(ctx context.Context, now time.Time) (summary *models.SweepPassSummary, err error) {
	ctx, end := uc.tracer.StartBackground(ctx, "scheduler/sweep-pass")
	defer func() { end(err) }()

	candidates, err := uc.schedulerRepo.ListSweepCandidates(ctx, sweepBatchSize)
	if err != nil {
		return nil, err
	}

	summary = &models.SweepPassSummary{StartedAt: now, Candidates: len(candidates)}
	for _, c := range candidates {
		if ctx.Err() != nil {
			break
		}
		if next := c.NextSweepAt(); now.Before(next) {
			summary.Skipped++
			continue
		}

		result, err := uc.investmentUC.SweepPending(ctx, c.UserID, models.SweepRequest{})
		switch {
		case errors.Is(err, models.ErrLocked):
			summary.Skipped++
		case err != nil:
			summary.Failed++
			logger.WarnCtx(ctx, "Scheduled sweep failed",
				logger.UUID("user_id", c.UserID),
				logger.Err(err))
		case result.Status == models.SweepStatusExecuted || result.Status == models.SweepStatusPartial:
			summary.Swept++
		default:
			summary.Skipped++
		}
	}

	logger.InfoCtx(ctx, "Sweep pass finished",
		logger.Int("candidates", summary.Candidates),
		logger.Int("swept", summary.Swept),
		logger.Int("skipped", summary.Skipped),
		logger.Int("failed", summary.Failed))
	return summary, nil
}
