package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate"
	rounduprepo "github.com/piresc/roundup/services/roundup/repository"
)

const debitColumns = `id, mandate_id, user_id, amount_paise, status, source, payment_id, failure_reason, settled_at, created_at, updated_at`

// BeginDebitAttempt claims up to amountPaise of unclaimed roundups for a new initiated debit
// and marks the mandate as processing it. It returns nil when nothing could be claimed.
// The due time and the notice window are checked again on the locked row, so a mandate
// changed since the caller read it reports ErrConflict.
func (r *MandateRepo) BeginDebitAttempt(ctx context.Context, mandateID uuid.UUID, amountPaise int64, now time.Time, noticeWindow time.Duration) (*models.MandateDebit, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMandate(ctx, tx, mandateID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MandateStatusActive {
		return nil, fmt.Errorf("%w: mandate %s is %s", models.ErrConflict, m.ID, m.Status)
	}
	if m.ProcessingDebitID != nil {
		return nil, fmt.Errorf("%w: mandate %s already has debit %s in flight", models.ErrConflict, m.ID, *m.ProcessingDebitID)
	}
	if !m.IsDue(now) {
		return nil, fmt.Errorf("%w: mandate %s is no longer due", models.ErrConflict, m.ID)
	}
	if !m.NoticeElapsed(now, noticeWindow) {
		return nil, fmt.Errorf("%w: mandate %s has no elapsed pre-debit notice", models.ErrConflict, m.ID)
	}

	debit := &models.MandateDebit{
		ID:        uuid.New(),
		MandateID: m.ID,
		UserID:    m.UserID,
		Status:    models.DebitStatusInitiated,
		Source:    models.DebitSourceScheduler,
		CreatedAt: now,
		UpdatedAt: now,
	}
	claimed, err := rounduprepo.ClaimUnclaimed(ctx, tx, m.UserID, debit.ID, min(amountPaise, m.MaxAmountPaise), now)
	if err != nil {
		return nil, err
	}
	if claimed <= 0 {
		return nil, nil
	}
	debit.AmountPaise = claimed

	if err := insertDebit(ctx, tx, debit); err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE mandates SET processing_debit_id = $1, processing_started_at = $2, updated_at = $2 WHERE id = $3`,
		debit.ID, now, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark debit in flight: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return debit, nil
}

// CompleteDebit marks an initiated debit succeeded and applies fn to its mandate
func (r *MandateRepo) CompleteDebit(ctx context.Context, debitID uuid.UUID, paymentID string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
	return r.resolveDebit(ctx, debitID, fn, func(tx *sqlx.Tx, debit *models.MandateDebit, now time.Time) error {
		debit.Status = models.DebitStatusSucceeded
		if paymentID != "" {
			debit.PaymentID = &paymentID
		}
		return nil
	})
}

// FailDebit marks an initiated debit failed, returns its claims to the pool and applies fn to its mandate.
// A non-empty paymentID is kept so a later provider event for the same payment can be matched.
func (r *MandateRepo) FailDebit(ctx context.Context, debitID uuid.UUID, paymentID, reason string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
	return r.resolveDebit(ctx, debitID, fn, func(tx *sqlx.Tx, debit *models.MandateDebit, now time.Time) error {
		debit.Status = models.DebitStatusFailed
		debit.FailureReason = &reason
		if paymentID != "" {
			debit.PaymentID = &paymentID
		}
		return rounduprepo.ReleaseClaims(ctx, tx, debit.ID, now)
	})
}

// resolveDebit finishes an initiated attempt. A debit already resolved, for example by a
// charged callback racing the scheduler, reports ErrConflict and nothing is written.
func (r *MandateRepo) resolveDebit(ctx context.Context, debitID uuid.UUID, fn mandate.MutateFunc, resolve func(tx *sqlx.Tx, debit *models.MandateDebit, now time.Time) error) (*models.MandateDebit, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	debit, err := lockDebit(ctx, tx, debitID)
	if err != nil {
		return nil, err
	}
	if debit.Status != models.DebitStatusInitiated {
		return nil, fmt.Errorf("%w: debit %s is already %s", models.ErrConflict, debit.ID, debit.Status)
	}

	m, err := lockMandate(ctx, tx, debit.MandateID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	if err := resolve(tx, debit, now); err != nil {
		return nil, err
	}
	debit.UpdatedAt = now
	if err := updateDebit(ctx, tx, debit); err != nil {
		return nil, err
	}

	if m.ProcessingDebitID != nil && *m.ProcessingDebitID == debit.ID {
		m.ProcessingDebitID = nil
		m.ProcessingStartedAt = nil
	}
	if err := applyAndSave(ctx, tx, m, fn); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return debit, nil
}

// RecordCharge books a provider-confirmed charge. The attempt named by ref is the target; one
// already succeeded means the charge is on file and RecordCharge returns nil. Without a match the
// latest attempt is taken when it is failed or still initiated, re-claiming roundups for a failed
// one, and otherwise a callback-sourced debit is created. A non-positive amount is taken as the
// mandate maximum.
func (r *MandateRepo) RecordCharge(ctx context.Context, mandateID uuid.UUID, ref models.ChargeRef, amountPaise int64, fn mandate.MutateFunc) (*models.MandateDebit, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMandate(ctx, tx, mandateID)
	if err != nil {
		return nil, err
	}

	debit, err := matchDebit(ctx, tx, m.ID, ref, true)
	switch {
	case errors.Is(err, models.ErrNotFound):
		debit, err = latestDebit(ctx, tx, m.ID)
		if errors.Is(err, models.ErrNotFound) || (err == nil && debit.Status == models.DebitStatusSucceeded) {
			debit, err = nil, nil
		}
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case debit.Status == models.DebitStatusSucceeded:
		return nil, nil
	}

	now := models.Now()
	switch {
	case debit == nil:
		if amountPaise <= 0 {
			amountPaise = m.MaxAmountPaise
		}
		debit = &models.MandateDebit{
			ID:          uuid.New(),
			MandateID:   m.ID,
			UserID:      m.UserID,
			AmountPaise: amountPaise,
			Status:      models.DebitStatusSucceeded,
			Source:      models.DebitSourceCallback,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if ref.PaymentID != "" {
			debit.PaymentID = &ref.PaymentID
		}
		if err := insertDebit(ctx, tx, debit); err != nil {
			return nil, err
		}
		if _, err := rounduprepo.ClaimUnclaimed(ctx, tx, m.UserID, debit.ID, amountPaise, now); err != nil {
			return nil, err
		}
	default:
		if debit.Status == models.DebitStatusFailed {
			if _, err := rounduprepo.ClaimUnclaimed(ctx, tx, m.UserID, debit.ID, debit.AmountPaise, now); err != nil {
				return nil, err
			}
		}
		debit.Status = models.DebitStatusSucceeded
		debit.FailureReason = nil
		if ref.PaymentID != "" {
			debit.PaymentID = &ref.PaymentID
		}
		debit.UpdatedAt = now
		if err := updateDebit(ctx, tx, debit); err != nil {
			return nil, err
		}
	}

	if m.ProcessingDebitID != nil && *m.ProcessingDebitID == debit.ID {
		m.ProcessingDebitID = nil
		m.ProcessingStartedAt = nil
	}
	if err := applyAndSave(ctx, tx, m, fn); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return debit, nil
}

// MatchDebit finds the mandate's debit attempt a provider payment event refers to,
// by attempt id or by the payment or invoice id stored on it
func (r *MandateRepo) MatchDebit(ctx context.Context, mandateID uuid.UUID, ref models.ChargeRef) (*models.MandateDebit, error) {
	return matchDebit(ctx, r.db, mandateID, ref, false)
}

func matchDebit(ctx context.Context, q sqlx.QueryerContext, mandateID uuid.UUID, ref models.ChargeRef, forUpdate bool) (*models.MandateDebit, error) {
	if ref.IsZero() {
		return nil, fmt.Errorf("%w: no charge reference", models.ErrNotFound)
	}
	debitID := uuid.Nil
	if ref.DebitID != nil {
		debitID = *ref.DebitID
	}

	query := `
		SELECT ` + debitColumns + `
		FROM mandate_debits
		WHERE mandate_id = $1 AND (id = $2 OR payment_id IN ($3, $4))
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var debit models.MandateDebit
	err := sqlx.GetContext(ctx, q, &debit, query, mandateID, debitID, ref.PaymentID, ref.InvoiceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no debit for charge reference", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to match debit: %w", err)
	}
	return &debit, nil
}

func latestDebit(ctx context.Context, tx *sqlx.Tx, mandateID uuid.UUID) (*models.MandateDebit, error) {
	var debit models.MandateDebit
	err := tx.GetContext(ctx, &debit, `
		SELECT `+debitColumns+`
		FROM mandate_debits
		WHERE mandate_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
		FOR UPDATE`, mandateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: mandate %s has no debits", models.ErrNotFound, mandateID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest debit: %w", err)
	}
	return &debit, nil
}

// GetDebit retrieves a debit attempt by id
func (r *MandateRepo) GetDebit(ctx context.Context, id uuid.UUID) (*models.MandateDebit, error) {
	var debit models.MandateDebit
	err := r.db.GetContext(ctx, &debit, `SELECT `+debitColumns+` FROM mandate_debits WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: debit %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debit: %w", err)
	}
	return &debit, nil
}

func lockDebit(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.MandateDebit, error) {
	var debit models.MandateDebit
	err := tx.GetContext(ctx, &debit, `SELECT `+debitColumns+` FROM mandate_debits WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: debit %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock debit: %w", err)
	}
	return &debit, nil
}

func insertDebit(ctx context.Context, tx *sqlx.Tx, debit *models.MandateDebit) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO mandate_debits (`+debitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		debit.ID, debit.MandateID, debit.UserID, debit.AmountPaise, debit.Status, debit.Source,
		debit.PaymentID, debit.FailureReason, debit.SettledAt, debit.CreatedAt, debit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create debit: %w", err)
	}
	return nil
}

func updateDebit(ctx context.Context, tx *sqlx.Tx, debit *models.MandateDebit) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE mandate_debits SET status = $1, payment_id = $2, failure_reason = $3, updated_at = $4 WHERE id = $5`,
		debit.Status, debit.PaymentID, debit.FailureReason, debit.UpdatedAt, debit.ID)
	if err != nil {
		return fmt.Errorf("failed to update debit: %w", err)
	}
	return nil
}
