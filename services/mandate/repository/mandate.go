package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate"
	rounduprepo "github.com/piresc/roundup/services/roundup/repository"
)

// MandateRepo implements mandate.MandateRepo on PostgreSQL
type MandateRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMandateRepository creates a new mandate repository
func NewMandateRepository(cfg *models.Config, db *sqlx.DB) *MandateRepo {
	return &MandateRepo{
		cfg: cfg,
		db:  db,
	}
}

const mandateColumns = `id, user_id, provider, external_mandate_id, status, max_amount_paise, frequency,
	start_date, end_date, last_debit_at, next_debit_at, pre_debit_notification_sent_at,
	failure_count, last_failure_reason, processing_debit_id, processing_started_at, auth_link,
	last_pause_status, last_resume_status, last_cancel_status, last_provider_error,
	created_at, updated_at`

// CreateMandate inserts a new mandate row
func (r *MandateRepo) CreateMandate(ctx context.Context, m *models.Mandate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mandates (`+mandateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		m.ID, m.UserID, m.Provider, m.ExternalMandateID, m.Status, m.MaxAmountPaise, m.Frequency,
		m.StartDate, m.EndDate, m.LastDebitAt, m.NextDebitAt, m.PreDebitNotificationSentAt,
		m.FailureCount, m.LastFailureReason, m.ProcessingDebitID, m.ProcessingStartedAt, m.AuthLink,
		m.LastPauseStatus, m.LastResumeStatus, m.LastCancelStatus, m.LastProviderError,
		m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mandate: %w", err)
	}
	return nil
}

// MutateMandate applies fn to the locked row, then stores the row and fn's events in the same transaction
func (r *MandateRepo) MutateMandate(ctx context.Context, id uuid.UUID, fn mandate.MutateFunc) (*models.Mandate, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMandate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := applyAndSave(ctx, tx, m, fn); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return m, nil
}

// GetMandate retrieves a mandate by id
func (r *MandateRepo) GetMandate(ctx context.Context, id uuid.UUID) (*models.Mandate, error) {
	var m models.Mandate
	err := r.db.GetContext(ctx, &m, `SELECT `+mandateColumns+` FROM mandates WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: mandate %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mandate: %w", err)
	}
	return &m, nil
}

// GetMandateByExternalID retrieves a mandate by its provider id
func (r *MandateRepo) GetMandateByExternalID(ctx context.Context, externalID string) (*models.Mandate, error) {
	var m models.Mandate
	err := r.db.GetContext(ctx, &m, `SELECT `+mandateColumns+` FROM mandates WHERE external_mandate_id = $1`, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: mandate with external id %s", models.ErrNotFound, externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mandate by external id: %w", err)
	}
	return &m, nil
}

// ListMandates returns a user's mandates, newest first
func (r *MandateRepo) ListMandates(ctx context.Context, userID uuid.UUID) ([]models.Mandate, error) {
	mandates := []models.Mandate{}
	err := r.db.SelectContext(ctx, &mandates, `
		SELECT `+mandateColumns+`
		FROM mandates
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mandates: %w", err)
	}
	return mandates, nil
}

// SumUnclaimed returns the pending roundups a debit could claim
func (r *MandateRepo) SumUnclaimed(ctx context.Context, userID uuid.UUID) (int64, error) {
	return rounduprepo.SumUnclaimed(ctx, r.db, userID)
}

func lockMandate(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (*models.Mandate, error) {
	var m models.Mandate
	err := tx.GetContext(ctx, &m, `SELECT `+mandateColumns+` FROM mandates WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: mandate %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock mandate: %w", err)
	}
	return &m, nil
}

func applyAndSave(ctx context.Context, tx *sqlx.Tx, m *models.Mandate, fn mandate.MutateFunc) error {
	events, err := fn(m)
	if err != nil {
		return err
	}
	m.UpdatedAt = models.Now()
	if err := updateMandate(ctx, tx, m); err != nil {
		return err
	}
	return audit.Insert(ctx, tx, events...)
}

func updateMandate(ctx context.Context, tx *sqlx.Tx, m *models.Mandate) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE mandates SET
			external_mandate_id = $1, status = $2, last_debit_at = $3, next_debit_at = $4,
			pre_debit_notification_sent_at = $5, failure_count = $6, last_failure_reason = $7,
			processing_debit_id = $8, processing_started_at = $9, auth_link = $10,
			last_pause_status = $11, last_resume_status = $12, last_cancel_status = $13,
			last_provider_error = $14, updated_at = $15
		WHERE id = $16`,
		m.ExternalMandateID, m.Status, m.LastDebitAt, m.NextDebitAt,
		m.PreDebitNotificationSentAt, m.FailureCount, m.LastFailureReason,
		m.ProcessingDebitID, m.ProcessingStartedAt, m.AuthLink,
		m.LastPauseStatus, m.LastResumeStatus, m.LastCancelStatus,
		m.LastProviderError, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update mandate: %w", err)
	}
	return nil
}

// ListEvents returns the user's audit trail newest first
func (r *MandateRepo) ListEvents(ctx context.Context, userID uuid.UUID, filter models.EventFilter) ([]models.AuditEvent, error) {
	return audit.List(ctx, r.db, userID, filter)
}
