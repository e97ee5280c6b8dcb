package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/models"
)

// SchedulerRepo implements scheduler.SchedulerRepo on PostgreSQL
type SchedulerRepo struct {
	db *sqlx.DB
}

// NewSchedulerRepository creates a new scheduler repository
func NewSchedulerRepository(db *sqlx.DB) *SchedulerRepo {
	return &SchedulerRepo{db: db}
}

// ListDueMandates returns active mandates whose next debit time has passed, most overdue first
func (r *SchedulerRepo) ListDueMandates(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id
		FROM mandates
		WHERE status = $1 AND next_debit_at <= $2
		ORDER BY next_debit_at, id
		LIMIT $3`, models.MandateStatusActive, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due mandates: %w", err)
	}
	return ids, nil
}

// ListUnsettledDebits returns succeeded debits whose roundups are not fully invested yet
func (r *SchedulerRepo) ListUnsettledDebits(ctx context.Context, limit int) ([]models.MandateDebit, error) {
	debits := []models.MandateDebit{}
	err := r.db.SelectContext(ctx, &debits, `
		SELECT id, mandate_id, user_id, amount_paise, status, source, payment_id, failure_reason,
			settled_at, created_at, updated_at
		FROM mandate_debits
		WHERE status = $1 AND settled_at IS NULL
		ORDER BY created_at, id
		LIMIT $2`, models.DebitStatusSucceeded, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsettled debits: %w", err)
	}
	return debits, nil
}

// ListSweepCandidates returns users holding unclaimed pending roundups without an active mandate
// to fund them, with their sweep cadence and last executed sweep
func (r *SchedulerRepo) ListSweepCandidates(ctx context.Context, limit int) ([]models.SweepCandidate, error) {
	candidates := []models.SweepCandidate{}
	err := r.db.SelectContext(ctx, &candidates, `
		SELECT e.user_id,
			COALESCE(p.sweep_frequency, $1) AS sweep_frequency,
			SUM(e.amount_paise) AS pending_paise,
			(SELECT MAX(a.created_at) FROM audit_events a
				WHERE a.user_id = e.user_id AND a.event_type = $2) AS last_sweep_at
		FROM roundup_entries e
		LEFT JOIN user_preferences p ON p.user_id = e.user_id
		WHERE e.status = $3 AND e.debit_id IS NULL
			AND NOT EXISTS (SELECT 1 FROM mandates m WHERE m.user_id = e.user_id AND m.status = $4)
		GROUP BY e.user_id, p.sweep_frequency
		ORDER BY e.user_id
		LIMIT $5`,
		models.SweepDaily, models.EventSweepExecuted, models.RoundupStatusPending, models.MandateStatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sweep candidates: %w", err)
	}
	return candidates, nil
}
