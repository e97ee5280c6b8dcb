package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment"
	rounduprepo "github.com/piresc/roundup/services/roundup/repository"
)

// PrepareSweep locks the target roundups, allocates their total and tags each row
// with the pending order of its slice. Orders still pending from an interrupted
// sweep of the same user are returned too, so they get resubmitted with the same
// idempotency key.
func (r *InvestmentRepo) PrepareSweep(ctx context.Context, userID uuid.UUID, debitID *uuid.UUID, shares investment.ShareFunc) (*models.SweepPlan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	plan := &models.SweepPlan{Orders: []models.InvestmentOrder{}}
	err = tx.SelectContext(ctx, &plan.Orders, `
		SELECT `+orderColumns+`
		FROM investment_orders
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at, id
		FOR UPDATE`, userID, models.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to lock pending orders: %w", err)
	}
	for _, order := range plan.Orders {
		plan.TotalPaise += order.AmountPaise
	}

	var entries []models.RoundupEntry
	if debitID == nil {
		entries, err = rounduprepo.LockUnclaimed(ctx, tx, userID)
	} else {
		entries, err = rounduprepo.LockClaimed(ctx, tx, *debitID)
	}
	if err != nil {
		return nil, err
	}

	var total int64
	for _, entry := range entries {
		total += entry.AmountPaise
	}

	if total > 0 {
		allocated, err := shares(total)
		if err != nil {
			return nil, err
		}

		now := models.Now()
		rest := entries
		for _, share := range allocated {
			if share.AmountPaise <= 0 {
				continue
			}
			order := models.InvestmentOrder{
				ID:             uuid.New(),
				UserID:         userID,
				InstrumentType: share.Instrument,
				AmountPaise:    share.AmountPaise,
				Status:         models.OrderStatusPending,
				DebitID:        debitID,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO investment_orders (`+orderColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				order.ID, order.UserID, order.InstrumentType, order.AmountPaise, order.Status,
				order.ExternalOrderID, order.DebitID, order.CreatedAt, order.UpdatedAt)
			if err != nil {
				return nil, fmt.Errorf("failed to create investment order: %w", err)
			}

			var taken []models.RoundupEntry
			taken, rest, err = rounduprepo.Take(ctx, tx, rest, share.AmountPaise, now)
			if err != nil {
				return nil, err
			}
			for _, entry := range taken {
				_, err := tx.ExecContext(ctx, `
					UPDATE roundup_entries SET pending_order_id = $1, updated_at = $2 WHERE id = $3`,
					order.ID, now, entry.ID)
				if err != nil {
					return nil, fmt.Errorf("failed to tag roundup entry: %w", err)
				}
			}

			plan.Orders = append(plan.Orders, order)
			plan.TotalPaise += order.AmountPaise
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return plan, nil
}

// FinishSweep stores provider outcomes. Rows of executed orders become invested and
// get one ledger entry per order; rows of failed orders return to the unclaimed pool
// and rows of orders still pending stay tagged for the next sweep.
func (r *InvestmentRepo) FinishSweep(ctx context.Context, userID uuid.UUID, debitID *uuid.UUID, orders []models.InvestmentOrder, event models.AuditEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := models.Now()
	var firstExecuted *uuid.UUID
	for i := range orders {
		if orders[i].Status == models.OrderStatusExecuted {
			firstExecuted = &orders[i].ID
			break
		}
	}

	for _, order := range orders {
		_, err := tx.ExecContext(ctx, `
			UPDATE investment_orders SET status = $1, external_order_id = $2, updated_at = $3 WHERE id = $4`,
			order.Status, order.ExternalOrderID, now, order.ID)
		if err != nil {
			return fmt.Errorf("failed to update investment order: %w", err)
		}

		switch order.Status {
		case models.OrderStatusExecuted:
			_, err = tx.ExecContext(ctx, `
				UPDATE roundup_entries
				SET status = $1, investment_id = $2, pending_order_id = NULL, updated_at = $3
				WHERE pending_order_id = $4`,
				models.RoundupStatusInvested, firstExecuted, now, order.ID)
			if err != nil {
				return fmt.Errorf("failed to mark roundups invested: %w", err)
			}
			entry := &models.LedgerEntry{
				ID:            uuid.New(),
				UserID:        userID,
				Type:          models.LedgerDebit,
				Category:      models.LedgerCategoryInvestment,
				AmountPaise:   order.AmountPaise,
				ReferenceType: models.ReferenceInvestmentOrder,
				ReferenceID:   order.ID,
				CreatedAt:     now,
			}
			if err := insertLedgerEntry(ctx, tx, entry); err != nil {
				return err
			}
		case models.OrderStatusFailed:
			_, err = tx.ExecContext(ctx, `
				UPDATE roundup_entries SET pending_order_id = NULL, updated_at = $1 WHERE pending_order_id = $2`,
				now, order.ID)
			if err != nil {
				return fmt.Errorf("failed to release roundups: %w", err)
			}
		}
	}

	if err := audit.Insert(ctx, tx, event); err != nil {
		return err
	}
	if debitID != nil {
		if _, err := markDebitSettled(ctx, tx, *debitID, now); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// MarkDebitSettled stamps settled_at once no roundup funded by the debit is pending
func (r *InvestmentRepo) MarkDebitSettled(ctx context.Context, debitID uuid.UUID, now time.Time) (bool, error) {
	return markDebitSettled(ctx, r.db, debitID, now)
}

func markDebitSettled(ctx context.Context, exec sqlx.ExecerContext, debitID uuid.UUID, now time.Time) (bool, error) {
	result, err := exec.ExecContext(ctx, `
		UPDATE mandate_debits SET settled_at = $1, updated_at = $1
		WHERE id = $2 AND status = $3 AND settled_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM roundup_entries WHERE debit_id = $2 AND status = $4
			)`,
		now, debitID, models.DebitStatusSucceeded, models.RoundupStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark debit settled: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
