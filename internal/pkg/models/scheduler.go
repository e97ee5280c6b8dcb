package models

import (
	"time"

	"github.com/google/uuid"
)

// Per-mandate results of a debit pass
const (
	DebitResultNotDue        = "not_due"
	DebitResultLocked        = "locked"
	DebitResultNoPending     = "skipped_no_pending"
	DebitResultNoticeSent    = "notice_sent"
	DebitResultNoticePending = "notice_pending"
	DebitResultDebited       = "debited"
	DebitResultFailed        = "failed"
	DebitResultError         = "error"
)

// DebitOutcome reports what a debit pass did to one mandate
type DebitOutcome struct {
	MandateID   uuid.UUID  `json:"mandate_id"`
	Result      string     `json:"result"`
	AmountPaise int64      `json:"amount_paise,omitempty"`
	DebitID     *uuid.UUID `json:"debit_id,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// DebitPassSummary is returned by a debit pass
type DebitPassSummary struct {
	StartedAt time.Time      `json:"started_at"`
	Due       int            `json:"due"`
	Outcomes  []DebitOutcome `json:"outcomes"`
	Settled   int            `json:"settled"`
}

// Count returns how many mandates ended with result
func (s *DebitPassSummary) Count(result string) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Result == result {
			n++
		}
	}
	return n
}

// SweepCandidate is a user with unclaimed pending roundups and no active mandate
type SweepCandidate struct {
	UserID         uuid.UUID      `db:"user_id"`
	SweepFrequency SweepFrequency `db:"sweep_frequency"`
	PendingPaise   int64          `db:"pending_paise"`
	LastSweepAt    *time.Time     `db:"last_sweep_at"`
}

// NextSweepAt returns the earliest time the candidate may be swept again
func (c SweepCandidate) NextSweepAt() time.Time {
	if c.LastSweepAt == nil {
		return time.Time{}
	}
	return c.LastSweepAt.Add(c.SweepFrequency.Interval())
}

// SweepPassSummary is returned by a sweep pass
type SweepPassSummary struct {
	StartedAt  time.Time `json:"started_at"`
	Candidates int       `json:"candidates"`
	Swept      int       `json:"swept"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
}
