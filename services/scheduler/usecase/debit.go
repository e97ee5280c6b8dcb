package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate"
)

const (
	reasonInterrupted = "debit attempt interrupted"

	// commitTimeout bounds recording a provider result once the pass context is gone
	commitTimeout = 15 * time.Second
)

// RunDebitPass processes every due mandate. A failing mandate never stops the pass.
func (uc *SchedulerUC) RunDebitPass(ctx context.Context, now time.Time) (summary *models.DebitPassSummary, err error) {
	ctx, end := uc.tracer.StartBackground(ctx, "scheduler/debit-pass")
	defer func() { end(err) }()

	ids, err := uc.schedulerRepo.ListDueMandates(ctx, now, dueBatchSize)
	if err != nil {
		return nil, err
	}

	summary = &models.DebitPassSummary{StartedAt: now, Due: len(ids), Outcomes: make([]models.DebitOutcome, 0, len(ids))}
	for _, id := range ids {
		if ctx.Err() != nil {
			logger.WarnCtx(ctx, "Debit pass cancelled", logger.Int("remaining", len(ids)-len(summary.Outcomes)))
			break
		}

		outcome, err := uc.ProcessMandate(ctx, id, now)
		switch {
		case errors.Is(err, models.ErrLocked):
			outcome = &models.DebitOutcome{MandateID: id, Result: models.DebitResultLocked}
		case err != nil:
			logger.ErrorCtx(ctx, "Failed to process mandate",
				logger.UUID("mandate_id", id),
				logger.Err(err))
			outcome = &models.DebitOutcome{MandateID: id, Result: models.DebitResultError, Reason: err.Error()}
		}
		summary.Outcomes = append(summary.Outcomes, *outcome)
	}

	summary.Settled = uc.settleOutstanding(ctx)

	logger.InfoCtx(ctx, "Debit pass finished",
		logger.Int("due", summary.Due),
		logger.Int("notices", summary.Count(models.DebitResultNoticeSent)),
		logger.Int("debited", summary.Count(models.DebitResultDebited)),
		logger.Int("failed", summary.Count(models.DebitResultFailed)),
		logger.Int("errors", summary.Count(models.DebitResultError)),
		logger.Int("settled", summary.Settled))
	return summary, nil
}

// ProcessMandate runs one mandate through the amount, notice and debit steps under its lock.
// It returns models.ErrLocked when another worker holds the mandate.
func (uc *SchedulerUC) ProcessMandate(ctx context.Context, mandateID uuid.UUID, now time.Time) (*models.DebitOutcome, error) {
	var outcome *models.DebitOutcome
	key := fmt.Sprintf(constants.KeyMandateLock, mandateID)
	err := uc.locker.WithLock(ctx, key, uc.lockExpiry(), func(ctx context.Context) error {
		var err error
		outcome, err = uc.processLocked(ctx, mandateID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (uc *SchedulerUC) processLocked(ctx context.Context, mandateID uuid.UUID, now time.Time) (*models.DebitOutcome, error) {
	m, err := uc.mandateRepo.GetMandate(ctx, mandateID)
	if err != nil {
		return nil, err
	}

	if m.ProcessingDebitID != nil {
		if m.ProcessingStartedAt != nil && now.Sub(*m.ProcessingStartedAt) < uc.lockExpiry() {
			return nil, fmt.Errorf("%w: debit %s is in flight", models.ErrConflict, *m.ProcessingDebitID)
		}
		if err := uc.recoverInterrupted(ctx, m, now); err != nil {
			return nil, err
		}
		if m, err = uc.mandateRepo.GetMandate(ctx, mandateID); err != nil {
			return nil, err
		}
	}

	outcome := &models.DebitOutcome{MandateID: m.ID}
	if !m.IsDue(now) {
		outcome.Result = models.DebitResultNotDue
		return outcome, nil
	}

	pending, err := uc.mandateRepo.SumUnclaimed(ctx, m.UserID)
	if err != nil {
		return nil, err
	}
	amount := min(pending, m.MaxAmountPaise)
	outcome.AmountPaise = amount
	if amount <= 0 {
		return uc.skipEmpty(ctx, m, now)
	}

	if m.PreDebitNotificationSentAt == nil {
		return uc.sendNotice(ctx, m, amount, now)
	}
	if elapsed := now.Sub(*m.PreDebitNotificationSentAt); elapsed < uc.noticeWindow() {
		logger.InfoCtx(ctx, "Waiting for notice window",
			logger.UUID("mandate_id", m.ID),
			logger.Duration("elapsed", elapsed))
		outcome.Result = models.DebitResultNoticePending
		return outcome, nil
	}

	return uc.debit(ctx, m, amount, now)
}

// recoverInterrupted fails an attempt whose worker died between claiming and resolving it
func (uc *SchedulerUC) recoverInterrupted(ctx context.Context, m *models.Mandate, now time.Time) error {
	debitID := *m.ProcessingDebitID
	logger.WarnCtx(ctx, "Resolving interrupted debit attempt",
		logger.UUID("mandate_id", m.ID),
		logger.UUID("debit_id", debitID))

	var events []models.AuditEvent
	_, err := uc.mandateRepo.FailDebit(ctx, debitID, "", reasonInterrupted, uc.failMutation(reasonInterrupted, nil, now, &events))
	if errors.Is(err, models.ErrConflict) {
		// a callback resolved it first
		return nil
	}
	if err != nil {
		return err
	}
	uc.publisher.Publish(ctx, events...)
	return nil
}

func (uc *SchedulerUC) skipEmpty(ctx context.Context, m *models.Mandate, now time.Time) (*models.DebitOutcome, error) {
	var events []models.AuditEvent
	_, err := uc.mandateRepo.MutateMandate(ctx, m.ID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		if !m.IsDue(now) {
			return nil, fmt.Errorf("%w: mandate %s is no longer due", models.ErrConflict, m.ID)
		}
		m.Advance(now)
		m.PreDebitNotificationSentAt = nil
		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventDebitSkipped,
			"No pending roundups, debit skipped", nil)}
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, events...)

	logger.InfoCtx(ctx, "No pending roundups, debit skipped", logger.UUID("mandate_id", m.ID))
	return &models.DebitOutcome{MandateID: m.ID, Result: models.DebitResultNoPending}, nil
}

// sendNotice delivers the advance notice and starts the waiting window. No debit follows in this pass.
func (uc *SchedulerUC) sendNotice(ctx context.Context, m *models.Mandate, amount int64, now time.Time) (*models.DebitOutcome, error) {
	message := models.PreDebitMessage(amount)
	err := uc.noticeGW.SendPreDebitNotice(ctx, models.PreDebitNotice{
		UserID:      m.UserID,
		MandateID:   m.ID,
		AmountPaise: amount,
		Message:     message,
		SentAt:      now,
	})
	if err != nil {
		return nil, err
	}

	// the window runs from when delivery was accepted, never from an earlier pass time
	sentAt := now
	if at := uc.clock(); at.After(sentAt) {
		sentAt = at
	}

	var events []models.AuditEvent
	_, err = uc.mandateRepo.MutateMandate(ctx, m.ID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		if m.PreDebitNotificationSentAt != nil && m.PreDebitNotificationSentAt.After(sentAt) {
			return nil, fmt.Errorf("%w: newer notice already recorded", models.ErrConflict)
		}
		m.PreDebitNotificationSentAt = &sentAt
		a := amount
		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventPreDebitSent, message, &a)}
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, events...)

	return &models.DebitOutcome{MandateID: m.ID, Result: models.DebitResultNoticeSent, AmountPaise: amount}, nil
}

func (uc *SchedulerUC) debit(ctx context.Context, m *models.Mandate, amount int64, now time.Time) (*models.DebitOutcome, error) {
	if m.ExternalMandateID == nil || *m.ExternalMandateID == "" {
		return nil, fmt.Errorf("%w: mandate %s has no provider reference", models.ErrConflict, m.ID)
	}

	debit, err := uc.mandateRepo.BeginDebitAttempt(ctx, m.ID, amount, now, uc.noticeWindow())
	if errors.Is(err, models.ErrConflict) {
		logger.InfoCtx(ctx, "Mandate changed before debit, skipping",
			logger.UUID("mandate_id", m.ID),
			logger.Err(err))
		return &models.DebitOutcome{MandateID: m.ID, Result: models.DebitResultNotDue, Reason: err.Error()}, nil
	}
	if err != nil {
		return nil, err
	}
	if debit == nil {
		return &models.DebitOutcome{MandateID: m.ID, Result: models.DebitResultNoPending}, nil
	}
	outcome := &models.DebitOutcome{MandateID: m.ID, AmountPaise: debit.AmountPaise, DebitID: &debit.ID}

	logger.InfoCtx(ctx, "Executing mandate debit",
		logger.UUID("mandate_id", m.ID),
		logger.UUID("debit_id", debit.ID),
		logger.Paise("amount_paise", debit.AmountPaise))

	paymentID, reason := uc.execute(ctx, m, debit)

	// the provider may already have charged, so the result is recorded even after shutdown
	// or a client disconnect cancels ctx
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
	defer cancel()

	var charged bool
	if reason == "" {
		charged, err = uc.complete(cctx, debit, paymentID, now)
	} else {
		charged, err = uc.fail(cctx, debit, paymentID, reason, now)
	}
	if err != nil {
		return nil, err
	}
	if charged {
		outcome.Result = models.DebitResultDebited
		return outcome, nil
	}
	if reason == "" {
		reason = "Debit failed: payment failed before the provider confirmed it"
	}
	outcome.Result, outcome.Reason = models.DebitResultFailed, reason
	return outcome, nil
}

// execute calls the provider under the debit timeout. A non-empty reason means the debit failed;
// a timeout is a failure even if the provider later charges.
func (uc *SchedulerUC) execute(ctx context.Context, m *models.Mandate, debit *models.MandateDebit) (string, string) {
	dctx, cancel := context.WithTimeout(ctx, uc.debitTimeout())
	defer cancel()

	res, err := uc.paymentGW.ExecuteDebit(dctx, models.DebitRequest{
		ExternalMandateID: *m.ExternalMandateID,
		AmountPaise:       debit.AmountPaise,
		Description:       models.DebitDescription(m.ID),
		Reference:         debit.ID,
	})
	switch {
	case err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(dctx.Err(), context.DeadlineExceeded)):
		return "", fmt.Sprintf("Debit failed: provider timed out after %s", uc.debitTimeout())
	case err != nil:
		return "", "Debit failed: " + err.Error()
	case res == nil:
		return "", "Debit failed: Unknown error"
	case !res.Succeeded():
		detail := res.Error
		if detail == "" {
			detail = "Unknown error"
		}
		return res.PaymentID, "Debit failed: " + detail
	}
	return res.PaymentID, ""
}

// complete records the provider-accepted attempt. It reports false when a failed callback
// already resolved the attempt.
func (uc *SchedulerUC) complete(ctx context.Context, debit *models.MandateDebit, paymentID string, now time.Time) (bool, error) {
	var events []models.AuditEvent
	resolved, err := uc.mandateRepo.CompleteDebit(ctx, debit.ID, paymentID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		m.MarkDebited(now)
		a := debit.AmountPaise
		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateDebited,
			fmt.Sprintf("Debited ₹%s for roundup investment", models.FormatRupees(a)), &a)}
		return events, nil
	})
	if errors.Is(err, models.ErrConflict) {
		resolved, err := uc.settleResolved(ctx, debit.ID)
		if err != nil {
			return false, err
		}
		return resolved.Status == models.DebitStatusSucceeded, nil
	}
	if err != nil {
		return false, err
	}
	uc.publisher.Publish(ctx, events...)

	logger.InfoCtx(ctx, "Mandate debited",
		logger.UUID("debit_id", debit.ID),
		logger.String("payment_id", paymentID))
	uc.settle(ctx, resolved)
	return true, nil
}

// fail records the failed attempt. It reports true when a charged callback already
// resolved the attempt as succeeded.
func (uc *SchedulerUC) fail(ctx context.Context, debit *models.MandateDebit, paymentID, reason string, now time.Time) (bool, error) {
	var events []models.AuditEvent
	a := debit.AmountPaise
	_, err := uc.mandateRepo.FailDebit(ctx, debit.ID, paymentID, reason, uc.failMutation(reason, &a, now, &events))
	if errors.Is(err, models.ErrConflict) {
		resolved, err := uc.settleResolved(ctx, debit.ID)
		if err != nil {
			return false, err
		}
		return resolved.Status == models.DebitStatusSucceeded, nil
	}
	if err != nil {
		return false, err
	}
	uc.publisher.Publish(ctx, events...)

	logger.WarnCtx(ctx, "Mandate debit failed",
		logger.UUID("debit_id", debit.ID),
		logger.String("reason", reason))
	return false, nil
}

// failMutation counts the failure, auto-pauses at the limit and defers insufficient-balance
// retries behind a fresh notice
func (uc *SchedulerUC) failMutation(reason string, amount *int64, now time.Time, out *[]models.AuditEvent) mandate.MutateFunc {
	maxFailures := uc.maxFailures()
	retry := uc.insufficientRetry()
	return func(m *models.Mandate) ([]models.AuditEvent, error) {
		paused := m.MarkDebitFailed(reason, maxFailures)
		events := []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateDebitFailed, reason, amount)}
		if paused {
			events = append(events, models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateAutoPaused,
				fmt.Sprintf("Mandate auto-paused after %d consecutive failures: %s", m.FailureCount, reason), nil))
		}
		if isInsufficientFunds(reason) {
			next := now.Add(retry)
			m.NextDebitAt = &next
			m.PreDebitNotificationSentAt = nil
		}
		*out = events
		return events, nil
	}
}

func isInsufficientFunds(reason string) bool {
	r := strings.ToLower(reason)
	return strings.Contains(r, "insufficient") || strings.Contains(r, "balance")
}

// settleResolved handles a debit a provider callback resolved while the provider call was running
func (uc *SchedulerUC) settleResolved(ctx context.Context, debitID uuid.UUID) (*models.MandateDebit, error) {
	debit, err := uc.mandateRepo.GetDebit(ctx, debitID)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Debit already resolved by callback",
		logger.UUID("debit_id", debitID),
		logger.String("status", string(debit.Status)))
	if debit.Status == models.DebitStatusSucceeded {
		uc.settle(ctx, debit)
	}
	return debit, nil
}

// settle invests a succeeded debit's roundups. Failures stay unsettled and are retried by later passes.
func (uc *SchedulerUC) settle(ctx context.Context, debit *models.MandateDebit) bool {
	result, err := uc.investmentUC.SettleDebit(ctx, debit)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to settle debit",
			logger.UUID("debit_id", debit.ID),
			logger.Err(err))
		return false
	}
	logger.InfoCtx(ctx, "Debit settled",
		logger.UUID("debit_id", debit.ID),
		logger.String("status", result.Status),
		logger.Paise("invested_paise", result.InvestedPaise))
	return true
}

func (uc *SchedulerUC) settleOutstanding(ctx context.Context) int {
	debits, err := uc.schedulerRepo.ListUnsettledDebits(ctx, unsettledBatchSize)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list unsettled debits", logger.Err(err))
		return 0
	}

	settled := 0
	for i := range debits {
		if ctx.Err() != nil {
			break
		}
		if uc.settle(ctx, &debits[i]) {
			settled++
		}
	}
	return settled
}
