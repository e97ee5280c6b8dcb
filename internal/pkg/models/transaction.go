package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a purchase that may generate a roundup
type Transaction struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	AmountPaise int64     `json:"amount_paise" db:"amount_paise"`
	Merchant    string    `json:"merchant" db:"merchant"`
	OccurredAt  time.Time `json:"occurred_at" db:"occurred_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TransactionRequest is the inbound payload for recording a purchase
type TransactionRequest struct {
	AmountPaise int64      `json:"amount_paise"`
	Merchant    string     `json:"merchant"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

// TransactionResult is returned after a purchase has been recorded
type TransactionResult struct {
	Transaction Transaction   `json:"transaction"`
	Roundup     *RoundupEntry `json:"roundup,omitempty"`
	// CappedPaise is the part of the computed roundup withheld by caps
	CappedPaise int64 `json:"capped_paise"`
}
