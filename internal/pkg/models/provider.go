package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateMandateRequest is sent to the payment provider to register a mandate
type CreateMandateRequest struct {
	UserID         uuid.UUID  `json:"user_id"`
	MandateID      uuid.UUID  `json:"mandate_id"`
	MaxAmountPaise int64      `json:"max_amount_paise"`
	Frequency      Frequency  `json:"frequency"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// CreateMandateResult is the provider's answer to a create request
type CreateMandateResult struct {
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
	AuthLink   string `json:"auth_link,omitempty"`
}

// MandateStatusResult carries the status a provider reports after a lifecycle call
type MandateStatusResult struct {
	Status string `json:"status"`
}

// DebitRequest asks the provider to pull funds against a mandate
type DebitRequest struct {
	ExternalMandateID string    `json:"external_mandate_id"`
	AmountPaise       int64     `json:"amount_paise"`
	Description       string    `json:"description"`
	Reference         uuid.UUID `json:"reference"`
}

// DebitResult is the provider outcome of a debit call
type DebitResult struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Succeeded reports whether the status belongs to the provider success set
func (r DebitResult) Succeeded() bool {
	switch strings.ToLower(r.Status) {
	case "authorized", "captured", "paid", "issued":
		return true
	}
	return false
}

// PlaceOrderRequest sends one allocated slice to an investment provider
type PlaceOrderRequest struct {
	UserID         uuid.UUID `json:"user_id"`
	AmountPaise    int64     `json:"amount_paise"`
	InstrumentType string    `json:"instrument_type"`
	IdempotencyKey uuid.UUID `json:"idempotency_key"`
}

// PlaceOrderResult is the provider answer to an order
type PlaceOrderResult struct {
	ExternalOrderID string `json:"external_order_id"`
	Status          string `json:"status"`
}

// Provider callback event names
const (
	CallbackAuthenticated = "subscription.authenticated"
	CallbackCharged       = "subscription.charged"
	CallbackFailed        = "payment.failed"
	CallbackCancelled     = "subscription.cancelled"
	CallbackPaused        = "subscription.paused"
	CallbackResumed       = "subscription.resumed"
)

// ProviderCallback is a verified, decoded provider event
type ProviderCallback struct {
	EventID           string     `json:"event_id,omitempty"`
	Event             string     `json:"event"`
	ExternalMandateID string     `json:"external_mandate_id"`
	PaymentID         string     `json:"payment_id,omitempty"`
	InvoiceID         string     `json:"invoice_id,omitempty"`
	DebitID           *uuid.UUID `json:"debit_id,omitempty"`
	AmountPaise       int64      `json:"amount_paise,omitempty"`
	FailureReason     string     `json:"failure_reason,omitempty"`
	Status            string     `json:"status,omitempty"`
	OccurredAt        *time.Time `json:"occurred_at,omitempty"`
}

// Ref returns the identifiers tying the event's payment to a debit attempt
func (cb ProviderCallback) Ref() ChargeRef {
	return ChargeRef{DebitID: cb.DebitID, PaymentID: cb.PaymentID, InvoiceID: cb.InvoiceID}
}

// ChargeRef identifies the debit attempt a provider payment belongs to. The scheduler
// stores the id the provider returned for the attempt, which for Razorpay is the
// invoice id, while payment events carry the payment id and the invoice it settles.
type ChargeRef struct {
	DebitID   *uuid.UUID
	PaymentID string
	InvoiceID string
}

// IsZero reports whether the reference carries no identifier
func (r ChargeRef) IsZero() bool {
	return r.DebitID == nil && r.PaymentID == "" && r.InvoiceID == ""
}

// RelayedWebhook carries a raw provider webhook over the message bus so the
// consumer can verify the signature itself
type RelayedWebhook struct {
	Body      []byte `json:"body"`
	Signature string `json:"signature"`
	EventID   string `json:"event_id,omitempty"`
}

// Callback outcomes reported back to the webhook caller
const (
	CallbackProcessed = "processed"
	CallbackIgnored   = "ignored"
)
