package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Instruments offered by the investment providers
const (
	InstrumentMFDebt   = "mf_debt"
	InstrumentMFEquity = "mf_equity"
	InstrumentGold     = "gold"
	InstrumentMF       = "mf"
)

// InstrumentFamily groups instruments by the provider that serves them
func InstrumentFamily(instrument string) string {
	if instrument == InstrumentGold || strings.HasPrefix(instrument, InstrumentGold+"_") {
		return InstrumentGold
	}
	if instrument == InstrumentMF || strings.HasPrefix(instrument, InstrumentMF+"_") {
		return InstrumentMF
	}
	return ""
}

// Risk profiles with preset allocations
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// AllocationSlice is the share of a sweep sent to one instrument
type AllocationSlice struct {
	Instrument string `json:"instrument" mapstructure:"instrument"`
	Percent    int    `json:"percent" mapstructure:"percent"`
}

// AllocationShare is the amount computed for one instrument
type AllocationShare struct {
	Instrument  string `json:"instrument"`
	AmountPaise int64  `json:"amount_paise"`
}

// DefaultRiskAllocations are the built-in presets, in instrument order
func DefaultRiskAllocations() map[string][]AllocationSlice {
	return map[string][]AllocationSlice{
		RiskLow: {
			{Instrument: InstrumentMFDebt, Percent: 70},
			{Instrument: InstrumentMFEquity, Percent: 20},
			{Instrument: InstrumentGold, Percent: 10},
		},
		RiskMedium: {
			{Instrument: InstrumentMFDebt, Percent: 40},
			{Instrument: InstrumentMFEquity, Percent: 50},
			{Instrument: InstrumentGold, Percent: 10},
		},
		RiskHigh: {
			{Instrument: InstrumentMFDebt, Percent: 20},
			{Instrument: InstrumentMFEquity, Percent: 70},
			{Instrument: InstrumentGold, Percent: 10},
		},
	}
}

// OrderStatus is the provider-side state of an investment order
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusExecuted OrderStatus = "executed"
	OrderStatusFailed   OrderStatus = "failed"
)

// InvestmentOrder is one allocated slice placed with a provider
type InvestmentOrder struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	InstrumentType  string      `json:"instrument_type" db:"instrument_type"`
	AmountPaise     int64       `json:"amount_paise" db:"amount_paise"`
	Status          OrderStatus `json:"status" db:"status"`
	ExternalOrderID *string     `json:"external_order_id,omitempty" db:"external_order_id"`
	DebitID         *uuid.UUID  `json:"debit_id,omitempty" db:"debit_id"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// Redemption withdraws money from an instrument back to the user
type Redemption struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	UserID         uuid.UUID   `json:"user_id" db:"user_id"`
	InstrumentType string      `json:"instrument_type" db:"instrument_type"`
	AmountPaise    int64       `json:"amount_paise" db:"amount_paise"`
	Status         OrderStatus `json:"status" db:"status"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
}

// RedemptionRequest is the inbound payload to record a redemption
type RedemptionRequest struct {
	UserID         uuid.UUID `json:"user_id"`
	InstrumentType string    `json:"instrument_type"`
	AmountPaise    int64     `json:"amount_paise"`
}

// Ledger directions and categories
const (
	LedgerDebit  = "debit"
	LedgerCredit = "credit"

	LedgerCategoryInvestment = "investment"
	LedgerCategoryRedemption = "redemption"

	ReferenceInvestmentOrder = "InvestmentOrder"
	ReferenceRedemption      = "Redemption"
)

// LedgerEntry is an append-only money movement record
type LedgerEntry struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Type          string    `json:"type" db:"type"`
	Category      string    `json:"category" db:"category"`
	AmountPaise   int64     `json:"amount_paise" db:"amount_paise"`
	ReferenceType string    `json:"reference_type" db:"reference_type"`
	ReferenceID   uuid.UUID `json:"reference_id" db:"reference_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// SweepRequest selects what an on-demand sweep allocates to
type SweepRequest struct {
	Instrument  string            `json:"instrument,omitempty"`
	RiskProfile string            `json:"risk_profile,omitempty"`
	Allocation  []AllocationSlice `json:"allocation,omitempty"`
}

// SweepResult summarises a completed sweep
type SweepResult struct {
	Status        string            `json:"status"`
	TotalPaise    int64             `json:"total_paise"`
	InvestedPaise int64             `json:"invested_paise"`
	Orders        []InvestmentOrder `json:"orders"`
	NextAllowedAt *time.Time        `json:"next_allowed_at,omitempty"`
}

// Sweep outcomes
const (
	SweepStatusExecuted  = "executed"
	SweepStatusPartial   = "partial"
	SweepStatusFailed    = "failed"
	SweepStatusNoPending = "no_pending"
	SweepStatusSkipped   = "skipped_frequency"
)

// SweepPlan is the set of orders prepared by the first sweep transaction.
// Orders left pending by an earlier interrupted sweep are included so they are resubmitted.
type SweepPlan struct {
	TotalPaise int64
	Orders     []InvestmentOrder
}

// Position is the net executed amount held in one instrument
type Position struct {
	InstrumentType string `json:"instrument_type" db:"instrument_type"`
	InvestedPaise  int64  `json:"invested_paise" db:"invested_paise"`
	RedeemedPaise  int64  `json:"redeemed_paise" db:"redeemed_paise"`
}

// NetPaise is invested minus redeemed
func (p Position) NetPaise() int64 {
	return p.InvestedPaise - p.RedeemedPaise
}

// Portfolio is a user's aggregate holdings
type Portfolio struct {
	UserID        uuid.UUID  `json:"user_id"`
	PendingPaise  int64      `json:"pending_paise"`
	InvestedPaise int64      `json:"invested_paise"`
	Positions     []Position `json:"positions"`
}

// Reconciliation compares the ledger with executed orders and redemptions
type Reconciliation struct {
	UserID          uuid.UUID `json:"user_id"`
	LedgerNetPaise  int64     `json:"ledger_net_paise"`
	OrdersPaise     int64     `json:"orders_paise"`
	RedemptionPaise int64     `json:"redemption_paise"`
	Balanced        bool      `json:"balanced"`
}
