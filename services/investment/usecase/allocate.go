package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

// Allocate splits total across slices by percentage. Shares are floored and the
// remainder goes to the first instrument, so the shares always sum to total.
// Zero-percent slices produce no share.
func Allocate(total int64, slices []models.AllocationSlice) ([]models.AllocationShare, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: total cannot be negative", models.ErrValidation)
	}
	if err := ValidateSlices(slices); err != nil {
		return nil, err
	}

	shares := make([]models.AllocationShare, 0, len(slices))
	var assigned int64
	for _, s := range slices {
		if s.Percent == 0 {
			continue
		}
		amount := total * int64(s.Percent) / 100
		shares = append(shares, models.AllocationShare{Instrument: s.Instrument, AmountPaise: amount})
		assigned += amount
	}
	shares[0].AmountPaise += total - assigned
	return shares, nil
}

// ValidateSlices rejects maps that do not sum to 100, negative percents and repeated instruments
func ValidateSlices(slices []models.AllocationSlice) error {
	if len(slices) == 0 {
		return fmt.Errorf("%w: allocation cannot be empty", models.ErrValidation)
	}
	seen := make(map[string]bool, len(slices))
	sum := 0
	for _, s := range slices {
		if s.Instrument == "" {
			return fmt.Errorf("%w: allocation instrument is required", models.ErrValidation)
		}
		if s.Percent < 0 {
			return fmt.Errorf("%w: negative percent for %s", models.ErrValidation, s.Instrument)
		}
		if seen[s.Instrument] {
			return fmt.Errorf("%w: duplicate instrument %s", models.ErrValidation, s.Instrument)
		}
		seen[s.Instrument] = true
		sum += s.Percent
	}
	if sum != 100 {
		return fmt.Errorf("%w: allocation percents sum to %d, expected 100", models.ErrValidation, sum)
	}
	return nil
}

// PreviewAllocation computes the shares a sweep would place without touching any state.
// A zero total previews the user's current pending amount.
func (uc *InvestmentUC) PreviewAllocation(ctx context.Context, userID uuid.UUID, totalPaise int64, req models.SweepRequest) ([]models.AllocationShare, error) {
	if totalPaise < 0 {
		return nil, fmt.Errorf("%w: total_paise cannot be negative", models.ErrValidation)
	}
	slices, err := uc.resolveSlices(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if totalPaise == 0 {
		if totalPaise, err = uc.investmentRepo.SumPending(ctx, userID); err != nil {
			return nil, err
		}
	}
	return Allocate(totalPaise, slices)
}

// resolveSlices picks the allocation of a sweep: an explicit map, a single
// instrument, the requested risk profile, the stored one, then the default.
func (uc *InvestmentUC) resolveSlices(ctx context.Context, userID uuid.UUID, req models.SweepRequest) ([]models.AllocationSlice, error) {
	if len(req.Allocation) > 0 {
		for _, s := range req.Allocation {
			if models.InstrumentFamily(s.Instrument) == "" {
				return nil, fmt.Errorf("%w: unknown instrument %q", models.ErrValidation, s.Instrument)
			}
		}
		if err := ValidateSlices(req.Allocation); err != nil {
			return nil, err
		}
		return req.Allocation, nil
	}

	if instrument := strings.TrimSpace(req.Instrument); instrument != "" {
		if models.InstrumentFamily(instrument) == "" {
			return nil, fmt.Errorf("%w: unknown instrument %q", models.ErrValidation, instrument)
		}
		return []models.AllocationSlice{{Instrument: instrument, Percent: 100}}, nil
	}

	profile := strings.TrimSpace(req.RiskProfile)
	if profile == "" {
		stored, err := uc.investmentRepo.GetRiskProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile = stored
	}
	return uc.profileSlices(profile)
}

func (uc *InvestmentUC) profileSlices(profile string) ([]models.AllocationSlice, error) {
	if profile == "" {
		profile = uc.cfg.Allocation.DefaultProfile
	}
	slices, ok := uc.cfg.Allocation.Profiles[profile]
	if !ok {
		return nil, fmt.Errorf("%w: unknown risk profile %q", models.ErrValidation, profile)
	}
	return slices, nil
}
