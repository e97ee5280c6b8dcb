package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit event types
const (
	EventMandateCreated        = "mandate_created"
	EventMandateCreationFailed = "mandate_creation_failed"
	EventMandateActivated      = "mandate_activated"
	EventMandatePaused         = "mandate_paused"
	EventMandateResumed        = "mandate_resumed"
	EventMandateCancelled      = "mandate_cancelled"
	EventMandateAutoPaused     = "mandate_auto_paused"
	EventMandateCharged        = "mandate_charged"
	EventMandateDebited        = "mandate_debited"
	EventMandateDebitFailed    = "mandate_debit_failed"
	EventPreDebitSent          = "pre_debit_sent"
	EventDebitSkipped          = "debit_skipped"
	EventSweepExecuted         = "sweep_executed"
	EventSweepFailed           = "sweep_failed"
	EventRedemptionRecorded    = "redemption_recorded"
)

// AuditEvent is an immutable record of a state transition
type AuditEvent struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	MandateID   *uuid.UUID `json:"mandate_id,omitempty" db:"mandate_id"`
	EventType   string     `json:"event_type" db:"event_type"`
	Message     string     `json:"message" db:"message"`
	AmountPaise *int64     `json:"amount_paise,omitempty" db:"amount_paise"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// NewAuditEvent builds an event stamped with the current time
func NewAuditEvent(userID uuid.UUID, mandateID *uuid.UUID, eventType, message string, amountPaise *int64) AuditEvent {
	return AuditEvent{
		ID:          uuid.New(),
		UserID:      userID,
		MandateID:   mandateID,
		EventType:   eventType,
		Message:     message,
		AmountPaise: amountPaise,
		CreatedAt:   Now(),
	}
}

// Event listing bounds
const (
	DefaultEventLimit = 100
	MaxEventLimit     = 500
)

// EventFilter narrows an audit event listing. An empty EventType lists every type.
type EventFilter struct {
	EventType string
	Limit     int
}

// EffectiveLimit clamps Limit into (0, MaxEventLimit], defaulting to DefaultEventLimit
func (f EventFilter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultEventLimit
	case f.Limit > MaxEventLimit:
		return MaxEventLimit
	}
	return f.Limit
}

// PreDebitNotice is the payload handed to the notification channel
type PreDebitNotice struct {
	UserID      uuid.UUID `json:"user_id"`
	MandateID   uuid.UUID `json:"mandate_id"`
	AmountPaise int64     `json:"amount_paise"`
	Message     string    `json:"message"`
	SentAt      time.Time `json:"sent_at"`
}
