package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// errUnchanged aborts a mutation that would not change the mandate
var errUnchanged = errors.New("mandate unchanged")

// HandleCallback applies a verified provider event to the mandate it names.
// Unknown events, unknown mandates and redeliveries are ignored.
func (uc *MandateUC) HandleCallback(ctx context.Context, cb models.ProviderCallback) (string, error) {
	if cb.ExternalMandateID == "" {
		logger.WarnCtx(ctx, "Callback without mandate id", logger.String("event", cb.Event))
		return models.CallbackIgnored, nil
	}

	if uc.deduper != nil && cb.EventID != "" {
		fresh, err := uc.deduper.MarkSeen(ctx, cb.EventID)
		if err != nil {
			return "", err
		}
		if !fresh {
			logger.InfoCtx(ctx, "Duplicate callback ignored",
				logger.String("event_id", cb.EventID),
				logger.String("event", cb.Event))
			return models.CallbackIgnored, nil
		}
	}

	outcome, err := uc.applyCallback(ctx, cb)
	if err != nil {
		if uc.deduper != nil && cb.EventID != "" {
			if ferr := uc.deduper.Forget(ctx, cb.EventID); ferr != nil {
				logger.WarnCtx(ctx, "Failed to forget callback event", logger.Err(ferr))
			}
		}
		logger.ErrorCtx(ctx, "Failed to apply callback",
			logger.String("event", cb.Event),
			logger.String("external_mandate_id", cb.ExternalMandateID),
			logger.Err(err))
		return "", err
	}
	return outcome, nil
}

func (uc *MandateUC) applyCallback(ctx context.Context, cb models.ProviderCallback) (string, error) {
	m, err := uc.mandateRepo.GetMandateByExternalID(ctx, cb.ExternalMandateID)
	if errors.Is(err, models.ErrNotFound) {
		logger.WarnCtx(ctx, "Callback for unknown mandate",
			logger.String("external_mandate_id", cb.ExternalMandateID))
		return models.CallbackIgnored, nil
	}
	if err != nil {
		return "", err
	}

	switch cb.Event {
	case models.CallbackCharged:
		return uc.applyCharge(ctx, m, cb)
	case models.CallbackFailed:
		return uc.applyFailure(ctx, m, cb)
	case models.CallbackAuthenticated:
		return uc.mutate(ctx, m, mirror(models.MandateStatusActive, models.EventMandateActivated, false))
	case models.CallbackPaused:
		return uc.mutate(ctx, m, mirror(models.MandateStatusPaused, models.EventMandatePaused, false))
	case models.CallbackResumed:
		return uc.mutate(ctx, m, mirror(models.MandateStatusActive, models.EventMandateResumed, true))
	case models.CallbackCancelled:
		return uc.mutate(ctx, m, mirror(models.MandateStatusCancelled, models.EventMandateCancelled, false))
	}

	logger.InfoCtx(ctx, "Unhandled callback event", logger.String("event", cb.Event))
	return models.CallbackIgnored, nil
}

func (uc *MandateUC) mutate(ctx context.Context, m *models.Mandate, fn func(m *models.Mandate) ([]models.AuditEvent, error)) (string, error) {
	var events []models.AuditEvent
	_, err := uc.mandateRepo.MutateMandate(ctx, m.ID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		evs, err := fn(m)
		events = evs
		return evs, err
	})
	if errors.Is(err, errUnchanged) {
		return models.CallbackIgnored, nil
	}
	if err != nil {
		return "", err
	}
	uc.publisher.Publish(ctx, events...)
	return models.CallbackProcessed, nil
}

// mirror sets the provider-reported status. Cancelled is terminal and a status
// already in place is left alone, which keeps redeliveries idempotent.
func mirror(target models.MandateStatus, eventType string, resetFailures bool) func(m *models.Mandate) ([]models.AuditEvent, error) {
	return func(m *models.Mandate) ([]models.AuditEvent, error) {
		if m.Status == target || m.Status == models.MandateStatusCancelled {
			return nil, errUnchanged
		}
		m.Status = target
		if resetFailures {
			m.FailureCount = 0
			m.LastFailureReason = nil
		}
		if target == models.MandateStatusActive && m.NextDebitAt == nil {
			start := models.StartOfDay(m.StartDate)
			m.NextDebitAt = &start
		}
		return []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, eventType,
			fmt.Sprintf("Mandate %s by provider", m.Status), nil)}, nil
	}
}

// applyFailure counts a provider-reported payment failure once. A failure the scheduler
// already recorded for the same attempt is ignored, and an attempt still in flight is
// failed here so the scheduler's own result for it is not counted again.
func (uc *MandateUC) applyFailure(ctx context.Context, m *models.Mandate, cb models.ProviderCallback) (string, error) {
	if ref := cb.Ref(); !ref.IsZero() {
		debit, err := uc.mandateRepo.MatchDebit(ctx, m.ID, ref)
		switch {
		case errors.Is(err, models.ErrNotFound):
		case err != nil:
			return "", err
		case debit.Status == models.DebitStatusFailed:
			logger.InfoCtx(ctx, "Debit failure already recorded",
				logger.UUID("debit_id", debit.ID),
				logger.String("payment_id", cb.PaymentID))
			return models.CallbackIgnored, nil
		case debit.Status == models.DebitStatusInitiated:
			return uc.failAttempt(ctx, m, debit, cb)
		default:
			logger.WarnCtx(ctx, "Payment failed for a debit booked as succeeded",
				logger.UUID("debit_id", debit.ID),
				logger.String("payment_id", cb.PaymentID))
		}
	}
	return uc.mutate(ctx, m, uc.onFailed(cb))
}

func (uc *MandateUC) failAttempt(ctx context.Context, m *models.Mandate, debit *models.MandateDebit, cb models.ProviderCallback) (string, error) {
	var events []models.AuditEvent
	onFailed := uc.onFailed(cb)
	_, err := uc.mandateRepo.FailDebit(ctx, debit.ID, cb.PaymentID, "Debit failed: "+failureReason(cb),
		func(m *models.Mandate) ([]models.AuditEvent, error) {
			evs, err := onFailed(m)
			events = evs
			return evs, err
		})
	if errors.Is(err, models.ErrConflict) {
		// the scheduler resolved the attempt first; decide again on its final status
		return uc.applyFailure(ctx, m, cb)
	}
	if err != nil {
		return "", err
	}
	uc.publisher.Publish(ctx, events...)
	return models.CallbackProcessed, nil
}

func failureReason(cb models.ProviderCallback) string {
	if cb.FailureReason == "" {
		return "Unknown error"
	}
	return cb.FailureReason
}

func (uc *MandateUC) onFailed(cb models.ProviderCallback) func(m *models.Mandate) ([]models.AuditEvent, error) {
	return func(m *models.Mandate) ([]models.AuditEvent, error) {
		reason := failureReason(cb)
		var amount *int64
		if cb.AmountPaise > 0 {
			a := cb.AmountPaise
			amount = &a
		}

		paused := m.MarkDebitFailed(reason, uc.maxFailures())
		events := []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateDebitFailed,
			fmt.Sprintf("Debit failed: %s", reason), amount)}
		if paused {
			events = append(events, models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateAutoPaused,
				fmt.Sprintf("Mandate auto-paused after %d consecutive failures", m.FailureCount), nil))
		}
		return events, nil
	}
}

// applyCharge books a provider-confirmed debit. It overrides a failure recorded
// locally for the same attempt, including one that auto-paused the mandate.
func (uc *MandateUC) applyCharge(ctx context.Context, m *models.Mandate, cb models.ProviderCallback) (string, error) {
	maxFailures := uc.maxFailures()
	var events []models.AuditEvent
	debit, err := uc.mandateRepo.RecordCharge(ctx, m.ID, cb.Ref(), cb.AmountPaise, func(m *models.Mandate) ([]models.AuditEvent, error) {
		now := models.Now()
		if m.Status == models.MandateStatusPaused && m.FailureCount >= maxFailures {
			m.Status = models.MandateStatusActive
		}
		m.MarkDebited(now)

		msg, amount := "Mandate charged", (*int64)(nil)
		if cb.AmountPaise > 0 {
			a := cb.AmountPaise
			msg, amount = fmt.Sprintf("Mandate charged ₹%s", models.FormatRupees(a)), &a
		}
		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateCharged, msg, amount)}
		return events, nil
	})
	if err != nil {
		return "", err
	}
	if debit == nil {
		logger.InfoCtx(ctx, "Charge already recorded", logger.String("payment_id", cb.PaymentID))
		return models.CallbackIgnored, nil
	}
	uc.publisher.Publish(ctx, events...)

	// settlement failures are retried by the scheduler's unsettled-debit sweep
	if _, err := uc.investmentUC.SettleDebit(ctx, debit); err != nil {
		logger.WarnCtx(ctx, "Failed to settle charged debit",
			logger.UUID("debit_id", debit.ID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Mandate charge recorded",
		logger.UUID("mandate_id", m.ID),
		logger.UUID("debit_id", debit.ID),
		logger.Paise("amount_paise", debit.AmountPaise))
	return models.CallbackProcessed, nil
}
