package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// Create persists a pending mandate and registers it with the payment provider.
// A provider error leaves the mandate failed and is returned to the caller.
func (uc *MandateUC) Create(ctx context.Context, userID uuid.UUID, req models.MandateRequest) (*models.Mandate, error) {
	m, err := uc.newMandate(userID, req)
	if err != nil {
		return nil, err
	}

	if err := uc.mandateRepo.CreateMandate(ctx, m); err != nil {
		logger.ErrorCtx(ctx, "Failed to create mandate",
			logger.UUID("user_id", userID),
			logger.Err(err))
		return nil, err
	}

	res, gwErr := uc.paymentGW.CreateMandate(ctx, models.CreateMandateRequest{
		UserID:         userID,
		MandateID:      m.ID,
		MaxAmountPaise: m.MaxAmountPaise,
		Frequency:      m.Frequency,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
	})

	var events []models.AuditEvent
	updated, err := uc.mandateRepo.MutateMandate(ctx, m.ID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		if gwErr != nil {
			msg := gwErr.Error()
			m.Status = models.MandateStatusFailed
			m.LastProviderError = &msg
			events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateCreationFailed,
				fmt.Sprintf("Mandate creation failed: %s", msg), nil)}
			return events, nil
		}

		status, ok := models.ParseMandateStatus(res.Status)
		if !ok {
			status = models.MandateStatusPending
		}
		m.Status = status
		m.ExternalMandateID = &res.ExternalID
		if res.AuthLink != "" {
			m.AuthLink = &res.AuthLink
		}
		if m.NextDebitAt == nil {
			start := models.StartOfDay(m.StartDate)
			m.NextDebitAt = &start
		}
		amount := m.MaxAmountPaise
		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, models.EventMandateCreated,
			fmt.Sprintf("Mandate created with max ₹%s %s", models.FormatRupees(m.MaxAmountPaise), m.Frequency), &amount)}
		return events, nil
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to record mandate provider outcome",
			logger.UUID("mandate_id", m.ID),
			logger.Err(err))
		return nil, err
	}
	uc.publisher.Publish(ctx, events...)

	if gwErr != nil {
		logger.WarnCtx(ctx, "Payment provider rejected mandate",
			logger.UUID("mandate_id", m.ID),
			logger.Err(gwErr))
		if errors.Is(gwErr, models.ErrProvider) {
			return nil, gwErr
		}
		return nil, fmt.Errorf("%w: %v", models.ErrProvider, gwErr)
	}

	logger.InfoCtx(ctx, "Mandate created",
		logger.UUID("mandate_id", updated.ID),
		logger.String("status", string(updated.Status)))
	return updated, nil
}

// newMandate validates the request and applies the defaults
func (uc *MandateUC) newMandate(userID uuid.UUID, req models.MandateRequest) (*models.Mandate, error) {
	maxAmount := models.DefaultMandateMaxPaise
	if req.MaxAmountPaise != nil {
		maxAmount = *req.MaxAmountPaise
	}
	if maxAmount <= 0 {
		return nil, fmt.Errorf("%w: max_amount_paise must be positive", models.ErrValidation)
	}
	if ceiling := uc.cfg.Providers.MaxMandatePaise; ceiling > 0 && maxAmount > ceiling {
		return nil, fmt.Errorf("%w: max_amount_paise exceeds provider limit of %d", models.ErrValidation, ceiling)
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = models.DefaultMandateFrequency
	}
	if !frequency.Valid() {
		return nil, fmt.Errorf("%w: frequency must be daily, weekly or monthly", models.ErrValidation)
	}

	now := models.Now()
	start := models.StartOfDay(now)
	if req.StartDate != "" {
		parsed, err := models.ParseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", models.ErrValidation)
		}
		start = parsed
	}

	var end *time.Time
	if req.EndDate != "" {
		parsed, err := models.ParseDate(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", models.ErrValidation)
		}
		if parsed.Before(start) {
			return nil, fmt.Errorf("%w: end_date is before start_date", models.ErrValidation)
		}
		end = &parsed
	}

	return &models.Mandate{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       uc.providerName(),
		Status:         models.MandateStatusPending,
		MaxAmountPaise: maxAmount,
		Frequency:      frequency,
		StartDate:      start,
		EndDate:        end,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Pause asks the provider to pause debits
func (uc *MandateUC) Pause(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error) {
	return uc.transition(ctx, userID, mandateID, models.MandateActionPause)
}

// Resume reactivates a paused mandate and clears its failure streak
func (uc *MandateUC) Resume(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error) {
	return uc.transition(ctx, userID, mandateID, models.MandateActionResume)
}

// Cancel ends the mandate. Cancelled is terminal.
func (uc *MandateUC) Cancel(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error) {
	return uc.transition(ctx, userID, mandateID, models.MandateActionCancel)
}

func (uc *MandateUC) transition(ctx context.Context, userID, mandateID uuid.UUID, action models.MandateAction) (*models.Mandate, error) {
	current, err := uc.Get(ctx, userID, mandateID)
	if err != nil {
		return nil, err
	}
	if !action.AllowedFrom(current.Status) {
		return nil, fmt.Errorf("%w: cannot %s a %s mandate", models.ErrConflict, action, current.Status)
	}

	var reported *string
	if current.ExternalMandateID != nil {
		res, err := uc.callProvider(ctx, action, *current.ExternalMandateID)
		if err != nil {
			logger.WarnCtx(ctx, "Payment provider rejected mandate action",
				logger.UUID("mandate_id", mandateID),
				logger.String("action", string(action)),
				logger.Err(err))
			if errors.Is(err, models.ErrProvider) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", models.ErrProvider, err)
		}
		reported = &res.Status
	}

	var events []models.AuditEvent
	updated, err := uc.mandateRepo.MutateMandate(ctx, mandateID, func(m *models.Mandate) ([]models.AuditEvent, error) {
		if !action.AllowedFrom(m.Status) {
			return nil, fmt.Errorf("%w: cannot %s a %s mandate", models.ErrConflict, action, m.Status)
		}

		target := action.Target()
		if reported != nil {
			if status, ok := models.ParseMandateStatus(*reported); ok {
				target = status
			}
		}
		m.Status = target
		m.LastProviderError = nil

		eventType := models.EventMandateCancelled
		switch action {
		case models.MandateActionPause:
			m.LastPauseStatus = reported
			eventType = models.EventMandatePaused
		case models.MandateActionResume:
			m.LastResumeStatus = reported
			m.FailureCount = 0
			m.LastFailureReason = nil
			eventType = models.EventMandateResumed
		default:
			m.LastCancelStatus = reported
		}

		events = []models.AuditEvent{models.NewAuditEvent(m.UserID, &m.ID, eventType,
			fmt.Sprintf("Mandate %s by user, status %s", action.Past(), m.Status), nil)}
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, events...)

	logger.InfoCtx(ctx, "Mandate transitioned",
		logger.UUID("mandate_id", mandateID),
		logger.String("action", string(action)),
		logger.String("status", string(updated.Status)))
	return updated, nil
}

func (uc *MandateUC) callProvider(ctx context.Context, action models.MandateAction, externalID string) (*models.MandateStatusResult, error) {
	switch action {
	case models.MandateActionPause:
		return uc.paymentGW.PauseMandate(ctx, externalID)
	case models.MandateActionResume:
		return uc.paymentGW.ResumeMandate(ctx, externalID)
	}
	return uc.paymentGW.CancelMandate(ctx, externalID)
}

// Get returns a mandate owned by the user. Mandates of other users are reported as missing.
func (uc *MandateUC) Get(ctx context.Context, userID, mandateID uuid.UUID) (*models.Mandate, error) {
	m, err := uc.mandateRepo.GetMandate(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, fmt.Errorf("%w: mandate %s", models.ErrNotFound, mandateID)
	}
	return m, nil
}

// List returns the user's mandates, newest first
func (uc *MandateUC) List(ctx context.Context, userID uuid.UUID) ([]models.Mandate, error) {
	return uc.mandateRepo.ListMandates(ctx, userID)
}

// ListEvents returns the user's audit trail, optionally narrowed to one event type
func (uc *MandateUC) ListEvents(ctx context.Context, userID uuid.UUID, filter models.EventFilter) ([]models.AuditEvent, error) {
	return uc.mandateRepo.ListEvents(ctx, userID, filter)
}

// ListNotifications returns the pre-debit notices sent to the user
func (uc *MandateUC) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditEvent, error) {
	return uc.mandateRepo.ListEvents(ctx, userID, models.EventFilter{EventType: models.EventPreDebitSent, Limit: limit})
}
