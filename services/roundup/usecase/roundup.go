package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

const defaultTransactionLimit = 50

// RecordTransaction stores a purchase and accrues its roundup within the user's caps
func (uc *RoundupUC) RecordTransaction(ctx context.Context, userID uuid.UUID, req models.TransactionRequest) (*models.TransactionResult, error) {
	if req.AmountPaise <= 0 {
		return nil, fmt.Errorf("%w: amount_paise must be positive", models.ErrValidation)
	}

	now := models.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	txn := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AmountPaise: req.AmountPaise,
		Merchant:    strings.TrimSpace(req.Merchant),
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	}

	pref, err := uc.roundupRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	candidate := ComputeRoundup(txn.AmountPaise, pref.RoundingBasePaise)
	if candidate == 0 {
		if err := uc.roundupRepo.CreateTransaction(ctx, txn); err != nil {
			return nil, err
		}
		return &models.TransactionResult{Transaction: *txn}, nil
	}

	entry, err := uc.roundupRepo.CreateTransactionWithRoundup(ctx, txn,
		func(caps *models.CapSetting, sums models.RoundupWindowSums) int64 {
			return ApplyCaps(caps, sums, candidate)
		})
	if err != nil {
		return nil, err
	}

	result := &models.TransactionResult{Transaction: *txn, Roundup: entry, CappedPaise: candidate}
	if entry != nil {
		result.CappedPaise = candidate - entry.AmountPaise
	}
	if result.CappedPaise > 0 {
		logger.InfoCtx(ctx, "Roundup limited by caps",
			logger.UUID("user_id", userID),
			logger.Paise("candidate_paise", candidate),
			logger.Paise("capped_paise", result.CappedPaise))
	}
	return result, nil
}

// ListTransactions returns the latest purchases, newest first
func (uc *RoundupUC) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultTransactionLimit
	}
	return uc.roundupRepo.ListTransactions(ctx, userID, limit)
}

// ListRoundups returns the user's roundups; an empty status lists all
func (uc *RoundupUC) ListRoundups(ctx context.Context, userID uuid.UUID, status string) ([]models.RoundupEntry, error) {
	switch s := models.RoundupStatus(status); s {
	case "", models.RoundupStatusPending, models.RoundupStatusInvested:
		return uc.roundupRepo.ListRoundups(ctx, userID, s)
	}
	return nil, fmt.Errorf("%w: unknown roundup status %q", models.ErrValidation, status)
}

// PendingTotal returns the sum of roundups not yet invested
func (uc *RoundupUC) PendingTotal(ctx context.Context, userID uuid.UUID) (int64, error) {
	return uc.roundupRepo.SumPending(ctx, userID)
}

// GetCaps returns the user's cap settings
func (uc *RoundupUC) GetCaps(ctx context.Context, userID uuid.UUID) (*models.CapSetting, error) {
	return uc.roundupRepo.GetCapSetting(ctx, userID)
}

// UpdateCaps applies a partial update to the user's caps
func (uc *RoundupUC) UpdateCaps(ctx context.Context, userID uuid.UUID, update models.CapUpdate) (*models.CapSetting, error) {
	if update.DailyCapSet && update.DailyCapPaise != nil && *update.DailyCapPaise < 0 {
		return nil, fmt.Errorf("%w: daily_cap_paise must be zero or more", models.ErrValidation)
	}
	if update.MonthlyCapSet && update.MonthlyCapPaise != nil && *update.MonthlyCapPaise < 0 {
		return nil, fmt.Errorf("%w: monthly_cap_paise must be zero or more", models.ErrValidation)
	}

	return uc.roundupRepo.UpdateCapSetting(ctx, userID, models.Now(), func(caps *models.CapSetting) error {
		if update.DailyCapSet {
			caps.DailyCapPaise = update.DailyCapPaise
		}
		if update.MonthlyCapSet {
			caps.MonthlyCapPaise = update.MonthlyCapPaise
		}
		if update.Paused != nil {
			caps.Paused = *update.Paused
		}
		return nil
	})
}

// GetPreferences returns the user's roundup and investing preferences
func (uc *RoundupUC) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error) {
	return uc.roundupRepo.GetPreference(ctx, userID)
}

// UpdatePreferences applies a partial update to the user's preferences
func (uc *RoundupUC) UpdatePreferences(ctx context.Context, userID uuid.UUID, update models.PreferenceUpdate) (*models.UserPreference, error) {
	if update.RoundingBasePaise != nil && *update.RoundingBasePaise <= 0 {
		return nil, fmt.Errorf("%w: rounding_base_paise must be positive", models.ErrValidation)
	}
	if update.RiskProfile != nil {
		if _, ok := uc.cfg.Allocation.Profiles[*update.RiskProfile]; !ok {
			return nil, fmt.Errorf("%w: unknown risk profile %q", models.ErrValidation, *update.RiskProfile)
		}
	}
	if update.SweepFrequency != nil {
		switch *update.SweepFrequency {
		case models.SweepDaily, models.SweepWeekly:
		default:
			return nil, fmt.Errorf("%w: sweep_frequency must be daily or weekly", models.ErrValidation)
		}
	}

	pref, err := uc.roundupRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update.RoundingBasePaise != nil {
		pref.RoundingBasePaise = *update.RoundingBasePaise
	}
	if update.RiskProfile != nil {
		pref.RiskProfile = *update.RiskProfile
	}
	if update.SweepFrequency != nil {
		pref.SweepFrequency = *update.SweepFrequency
	}
	pref.UserID = userID
	pref.UpdatedAt = models.Now()

	if err := uc.roundupRepo.SavePreference(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
