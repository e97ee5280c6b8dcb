package models

import (
	"time"

	"github.com/google/uuid"
)

// RoundupStatus represents the lifecycle of a roundup entry
type RoundupStatus string

const (
	RoundupStatusPending  RoundupStatus = "pending"
	RoundupStatusInvested RoundupStatus = "invested"
)

// RoundupEntry is the spare change earmarked from one transaction
type RoundupEntry struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	UserID         uuid.UUID     `json:"user_id" db:"user_id"`
	TransactionID  uuid.UUID     `json:"transaction_id" db:"transaction_id"`
	AmountPaise    int64         `json:"amount_paise" db:"amount_paise"`
	Status         RoundupStatus `json:"status" db:"status"`
	InvestmentID   *uuid.UUID    `json:"investment_id,omitempty" db:"investment_id"`
	DebitID        *uuid.UUID    `json:"debit_id,omitempty" db:"debit_id"`
	PendingOrderID *uuid.UUID    `json:"-" db:"pending_order_id"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
}

// CapSetting holds a user's optional spending ceilings for roundups
type CapSetting struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	DailyCapPaise   *int64    `json:"daily_cap_paise" db:"daily_cap_paise"`
	MonthlyCapPaise *int64    `json:"monthly_cap_paise" db:"monthly_cap_paise"`
	Paused          bool      `json:"paused" db:"paused"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// CapUpdate is a partial update of cap settings.
// A Set flag distinguishes "clear the cap" from "leave unchanged".
type CapUpdate struct {
	DailyCapPaise   *int64
	DailyCapSet     bool
	MonthlyCapPaise *int64
	MonthlyCapSet   bool
	Paused          *bool
}

// RoundupWindowSums are the amounts already accumulated in the current cap windows
type RoundupWindowSums struct {
	TodayPaise int64 `db:"today_paise"`
	MonthPaise int64 `db:"month_paise"`
}

// SweepFrequency controls how often on-demand sweeps may run for a user
type SweepFrequency string

const (
	SweepDaily  SweepFrequency = "daily"
	SweepWeekly SweepFrequency = "weekly"
)

// Interval returns the minimum gap between two sweeps
func (f SweepFrequency) Interval() time.Duration {
	if f == SweepWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// DefaultRoundingBasePaise is ten rupees
const DefaultRoundingBasePaise int64 = 1000

// UserPreference holds per-user roundup and investing settings
type UserPreference struct {
	UserID            uuid.UUID      `json:"user_id" db:"user_id"`
	RoundingBasePaise int64          `json:"rounding_base_paise" db:"rounding_base_paise"`
	RiskProfile       string         `json:"risk_profile" db:"risk_profile"`
	SweepFrequency    SweepFrequency `json:"sweep_frequency" db:"sweep_frequency"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}

// DefaultPreference returns the settings applied to users without a stored row
func DefaultPreference(userID uuid.UUID) *UserPreference {
	return &UserPreference{
		UserID:            userID,
		RoundingBasePaise: DefaultRoundingBasePaise,
		RiskProfile:       RiskMedium,
		SweepFrequency:    SweepDaily,
	}
}

// PreferenceUpdate is a partial update of user preferences
type PreferenceUpdate struct {
	RoundingBasePaise *int64          `json:"rounding_base_paise"`
	RiskProfile       *string         `json:"risk_profile"`
	SweepFrequency    *SweepFrequency `json:"sweep_frequency"`
}
