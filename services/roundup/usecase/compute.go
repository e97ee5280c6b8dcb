package usecase

import "github.com/piresc/roundup/internal/pkg/models"

// ComputeRoundup returns the gap between amount and the next multiple of base.
// Non-positive inputs and exact multiples yield zero.
func ComputeRoundup(amountPaise, basePaise int64) int64 {
	if amountPaise <= 0 || basePaise <= 0 {
		return 0
	}
	rem := amountPaise % basePaise
	if rem == 0 {
		return 0
	}
	return basePaise - rem
}

// ApplyCaps returns how much of candidate fits in the remaining daily and monthly cap
func ApplyCaps(caps *models.CapSetting, sums models.RoundupWindowSums, candidate int64) int64 {
	if candidate <= 0 {
		return 0
	}
	if caps == nil {
		return candidate
	}
	if caps.Paused {
		return 0
	}

	allowed := candidate
	if caps.DailyCapPaise != nil {
		allowed = min(allowed, max(0, *caps.DailyCapPaise-sums.TodayPaise))
	}
	if caps.MonthlyCapPaise != nil {
		allowed = min(allowed, max(0, *caps.MonthlyCapPaise-sums.MonthPaise))
	}
	if allowed <= 0 {
		return 0
	}
	return allowed
}
