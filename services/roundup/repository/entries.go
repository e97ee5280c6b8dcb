package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/models"
)

// The helpers below run inside a caller's transaction. They are shared by the
// debit-claim path and the sweep, which must mutate entries atomically with
// their own rows.

const entryColumns = `id, user_id, transaction_id, amount_paise, status, investment_id, debit_id, pending_order_id, created_at, updated_at`

// InsertEntry writes a roundup entry
func InsertEntry(ctx context.Context, tx sqlx.ExecerContext, entry *models.RoundupEntry) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO roundup_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.UserID, entry.TransactionID, entry.AmountPaise, entry.Status,
		entry.InvestmentID, entry.DebitID, entry.PendingOrderID, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert roundup entry: %w", err)
	}
	return nil
}

// LockUnclaimed locks a user's pending entries that no debit or order holds, oldest first
func LockUnclaimed(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID) ([]models.RoundupEntry, error) {
	entries := []models.RoundupEntry{}
	err := tx.SelectContext(ctx, &entries, `
		SELECT `+entryColumns+`
		FROM roundup_entries
		WHERE user_id = $1 AND status = $2 AND debit_id IS NULL AND pending_order_id IS NULL
		ORDER BY created_at, id
		FOR UPDATE`, userID, models.RoundupStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to lock pending roundups: %w", err)
	}
	return entries, nil
}

// LockClaimed locks the pending entries funded by a debit that no order holds, oldest first
func LockClaimed(ctx context.Context, tx *sqlx.Tx, debitID uuid.UUID) ([]models.RoundupEntry, error) {
	entries := []models.RoundupEntry{}
	err := tx.SelectContext(ctx, &entries, `
		SELECT `+entryColumns+`
		FROM roundup_entries
		WHERE debit_id = $1 AND status = $2 AND pending_order_id IS NULL
		ORDER BY created_at, id
		FOR UPDATE`, debitID, models.RoundupStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to lock claimed roundups: %w", err)
	}
	return entries, nil
}

// SplitEntry shrinks entry to keep paise and stores the rest as a new pending row.
// The remainder keeps the transaction, creation time and debit claim of the original
// so window sums and funding stay unchanged.
func SplitEntry(ctx context.Context, tx *sqlx.Tx, entry *models.RoundupEntry, keep int64, now time.Time) (*models.RoundupEntry, error) {
	if keep <= 0 || keep >= entry.AmountPaise {
		return nil, fmt.Errorf("invalid split of %d paise from entry of %d", keep, entry.AmountPaise)
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE roundup_entries SET amount_paise = $1, updated_at = $2 WHERE id = $3`,
		keep, now, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to split roundup entry: %w", err)
	}

	remainder := &models.RoundupEntry{
		ID:            uuid.New(),
		UserID:        entry.UserID,
		TransactionID: entry.TransactionID,
		AmountPaise:   entry.AmountPaise - keep,
		Status:        models.RoundupStatusPending,
		DebitID:       entry.DebitID,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     now,
	}
	if err := InsertEntry(ctx, tx, remainder); err != nil {
		return nil, err
	}

	entry.AmountPaise = keep
	entry.UpdatedAt = now
	return remainder, nil
}

// Take walks entries in order and returns the ones covering exactly amount paise,
// splitting the boundary entry. The returned slice is the untouched tail.
func Take(ctx context.Context, tx *sqlx.Tx, entries []models.RoundupEntry, amount int64, now time.Time) (taken, rest []models.RoundupEntry, err error) {
	remaining := amount
	for i := range entries {
		if remaining <= 0 {
			return taken, entries[i:], nil
		}
		entry := entries[i]
		if entry.AmountPaise > remaining {
			tail, err := SplitEntry(ctx, tx, &entry, remaining, now)
			if err != nil {
				return nil, nil, err
			}
			taken = append(taken, entry)
			rest = append([]models.RoundupEntry{*tail}, entries[i+1:]...)
			return taken, rest, nil
		}
		taken = append(taken, entry)
		remaining -= entry.AmountPaise
	}
	return taken, nil, nil
}

// ClaimUnclaimed assigns up to amount paise of a user's unclaimed entries to a debit.
// It returns the claimed total, which is less than amount when not enough is pending.
func ClaimUnclaimed(ctx context.Context, tx *sqlx.Tx, userID, debitID uuid.UUID, amount int64, now time.Time) (int64, error) {
	entries, err := LockUnclaimed(ctx, tx, userID)
	if err != nil {
		return 0, err
	}

	taken, _, err := Take(ctx, tx, entries, amount, now)
	if err != nil {
		return 0, err
	}

	var claimed int64
	for _, entry := range taken {
		_, err := tx.ExecContext(ctx, `
			UPDATE roundup_entries SET debit_id = $1, updated_at = $2 WHERE id = $3`,
			debitID, now, entry.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to claim roundup entry: %w", err)
		}
		claimed += entry.AmountPaise
	}
	return claimed, nil
}

// ReleaseClaims returns a failed debit's pending entries to the unclaimed pool
func ReleaseClaims(ctx context.Context, tx *sqlx.Tx, debitID uuid.UUID, now time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE roundup_entries SET debit_id = NULL, updated_at = $2
		WHERE debit_id = $1 AND status = $3`,
		debitID, now, models.RoundupStatusPending)
	if err != nil {
		return fmt.Errorf("failed to release roundup claims: %w", err)
	}
	return nil
}

// SumUnclaimed returns the pending total not yet held by a debit or order
func SumUnclaimed(ctx context.Context, q sqlx.QueryerContext, userID uuid.UUID) (int64, error) {
	var total int64
	err := sqlx.GetContext(ctx, q, &total, `
		SELECT COALESCE(SUM(amount_paise), 0)
		FROM roundup_entries
		WHERE user_id = $1 AND status = $2 AND debit_id IS NULL AND pending_order_id IS NULL`,
		userID, models.RoundupStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to sum unclaimed roundups: %w", err)
	}
	return total, nil
}
