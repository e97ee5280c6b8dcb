package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MandateStatus represents the authorization state of a recurring-debit mandate
type MandateStatus string

const (
	MandateStatusPending   MandateStatus = "pending"
	MandateStatusActive    MandateStatus = "active"
	MandateStatusPaused    MandateStatus = "paused"
	MandateStatusCancelled MandateStatus = "cancelled"
	MandateStatusFailed    MandateStatus = "failed"
)

// ParseMandateStatus maps a provider-reported status onto a local status.
// Unknown values report ok=false so the caller can fall back to its target state.
func ParseMandateStatus(s string) (MandateStatus, bool) {
	switch MandateStatus(s) {
	case MandateStatusPending, MandateStatusActive, MandateStatusPaused, MandateStatusCancelled, MandateStatusFailed:
		return MandateStatus(s), true
	}
	switch s {
	case "created", "initiated":
		return MandateStatusPending, true
	case "authenticated":
		return MandateStatusActive, true
	case "halted":
		return MandateStatusPaused, true
	case "completed", "expired":
		return MandateStatusCancelled, true
	}
	return "", false
}

// Frequency is the debit cadence of a mandate
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a supported cadence
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Interval returns the scheduling step for the cadence.
// Monthly is a fixed thirty days.
func (f Frequency) Interval() time.Duration {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour
	case FrequencyWeekly:
		return 7 * 24 * time.Hour
	case FrequencyMonthly:
		return 30 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// Mandate defaults applied when the request leaves them out
const (
	DefaultMandateMaxPaise  int64     = 500000
	DefaultMandateFrequency Frequency = FrequencyWeekly
)

// DateLayout is the ISO date format accepted for mandate dates
const DateLayout = "2006-01-02"

// Mandate is a standing authorization for automated debits
type Mandate struct {
	ID                         uuid.UUID     `json:"id" db:"id"`
	UserID                     uuid.UUID     `json:"user_id" db:"user_id"`
	Provider                   string        `json:"provider" db:"provider"`
	ExternalMandateID          *string       `json:"external_mandate_id,omitempty" db:"external_mandate_id"`
	Status                     MandateStatus `json:"status" db:"status"`
	MaxAmountPaise             int64         `json:"max_amount_paise" db:"max_amount_paise"`
	Frequency                  Frequency     `json:"frequency" db:"frequency"`
	StartDate                  time.Time     `json:"start_date" db:"start_date"`
	EndDate                    *time.Time    `json:"end_date,omitempty" db:"end_date"`
	LastDebitAt                *time.Time    `json:"last_debit_at,omitempty" db:"last_debit_at"`
	NextDebitAt                *time.Time    `json:"next_debit_at,omitempty" db:"next_debit_at"`
	PreDebitNotificationSentAt *time.Time    `json:"pre_debit_notification_sent_at,omitempty" db:"pre_debit_notification_sent_at"`
	FailureCount               int           `json:"failure_count" db:"failure_count"`
	LastFailureReason          *string       `json:"last_failure_reason,omitempty" db:"last_failure_reason"`
	ProcessingDebitID          *uuid.UUID    `json:"-" db:"processing_debit_id"`
	ProcessingStartedAt        *time.Time    `json:"-" db:"processing_started_at"`
	AuthLink                   *string       `json:"auth_link,omitempty" db:"auth_link"`
	LastPauseStatus            *string       `json:"last_pause_status,omitempty" db:"last_pause_status"`
	LastResumeStatus           *string       `json:"last_resume_status,omitempty" db:"last_resume_status"`
	LastCancelStatus           *string       `json:"last_cancel_status,omitempty" db:"last_cancel_status"`
	LastProviderError          *string       `json:"last_provider_error,omitempty" db:"last_provider_error"`
	CreatedAt                  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt                  time.Time     `json:"updated_at" db:"updated_at"`
}

// IsDue reports whether an active mandate has reached its next debit time
func (m *Mandate) IsDue(now time.Time) bool {
	return m.Status == MandateStatusActive && m.NextDebitAt != nil && !m.NextDebitAt.After(now)
}

// NoticeElapsed reports whether a pre-debit notice was sent at least window before now
func (m *Mandate) NoticeElapsed(now time.Time, window time.Duration) bool {
	return m.PreDebitNotificationSentAt != nil && now.Sub(*m.PreDebitNotificationSentAt) >= window
}

// Advance moves next_debit_at one interval past from
func (m *Mandate) Advance(from time.Time) {
	next := from.Add(m.Frequency.Interval())
	m.NextDebitAt = &next
}

// MarkDebited applies a successful debit at now and clears the notice and failure streak
func (m *Mandate) MarkDebited(now time.Time) {
	m.LastDebitAt = &now
	m.Advance(now)
	m.FailureCount = 0
	m.LastFailureReason = nil
	m.PreDebitNotificationSentAt = nil
}

// MarkDebitFailed counts a failed debit and pauses the mandate once the streak reaches maxFailures.
// It reports whether this failure paused the mandate.
func (m *Mandate) MarkDebitFailed(reason string, maxFailures int) bool {
	m.FailureCount++
	m.LastFailureReason = &reason
	if maxFailures > 0 && m.FailureCount >= maxFailures && m.Status == MandateStatusActive {
		m.Status = MandateStatusPaused
		return true
	}
	return false
}

// MandateRequest is the inbound payload to create a mandate
type MandateRequest struct {
	MaxAmountPaise *int64    `json:"max_amount_paise"`
	Frequency      Frequency `json:"frequency"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
}

// MandateAction is a user-requested lifecycle change
type MandateAction string

const (
	MandateActionPause  MandateAction = "pause"
	MandateActionResume MandateAction = "resume"
	MandateActionCancel MandateAction = "cancel"
)

// Target returns the state the action optimistically moves a mandate to
func (a MandateAction) Target() MandateStatus {
	switch a {
	case MandateActionPause:
		return MandateStatusPaused
	case MandateActionResume:
		return MandateStatusActive
	}
	return MandateStatusCancelled
}

// AllowedFrom reports whether a user may apply the action to a mandate in status.
// Cancelled is terminal and only a paused mandate can be resumed.
func (a MandateAction) AllowedFrom(status MandateStatus) bool {
	if status == MandateStatusCancelled {
		return false
	}
	if a == MandateActionResume {
		return status == MandateStatusPaused
	}
	return true
}

// Past returns the action in past tense for event messages
func (a MandateAction) Past() string {
	switch a {
	case MandateActionPause:
		return "paused"
	case MandateActionResume:
		return "resumed"
	}
	return "cancelled"
}

// DebitStatus is the state of one debit attempt
type DebitStatus string

const (
	DebitStatusInitiated DebitStatus = "initiated"
	DebitStatusSucceeded DebitStatus = "succeeded"
	DebitStatusFailed    DebitStatus = "failed"
)

// DebitSource records what produced a debit row
type DebitSource string

const (
	DebitSourceScheduler DebitSource = "scheduler"
	DebitSourceCallback  DebitSource = "callback"
)

// MandateDebit is a single attempt to pull funds against a mandate
type MandateDebit struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	MandateID     uuid.UUID   `json:"mandate_id" db:"mandate_id"`
	UserID        uuid.UUID   `json:"user_id" db:"user_id"`
	AmountPaise   int64       `json:"amount_paise" db:"amount_paise"`
	Status        DebitStatus `json:"status" db:"status"`
	Source        DebitSource `json:"source" db:"source"`
	PaymentID     *string     `json:"payment_id,omitempty" db:"payment_id"`
	FailureReason *string     `json:"failure_reason,omitempty" db:"failure_reason"`
	SettledAt     *time.Time  `json:"settled_at,omitempty" db:"settled_at"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// DebitDescription is the narration sent to the payment provider
func DebitDescription(mandateID uuid.UUID) string {
	return fmt.Sprintf("Roundup investment auto-debit for mandate %s", mandateID)
}

// PreDebitMessage is the advance notice text for a pending debit
func PreDebitMessage(amountPaise int64) string {
	return fmt.Sprintf("Auto-debit scheduled: ₹%s will be debited in 24 hours for your roundup investment", FormatRupees(amountPaise))
}

// FormatRupees renders paise as a rupee amount with two decimals
func FormatRupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}
