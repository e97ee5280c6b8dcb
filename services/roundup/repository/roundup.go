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
	"github.com/piresc/roundup/services/roundup"
)

// RoundupRepo implements roundup.RoundupRepo on PostgreSQL
type RoundupRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRoundupRepository creates a new roundup repository
func NewRoundupRepository(cfg *models.Config, db *sqlx.DB) *RoundupRepo {
	return &RoundupRepo{
		cfg: cfg,
		db:  db,
	}
}

const insertTransactionQuery = `
	INSERT INTO transactions (id, user_id, amount_paise, merchant, occurred_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

// CreateTransaction stores a purchase that produced no roundup
func (r *RoundupRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	_, err := r.db.ExecContext(ctx, insertTransactionQuery,
		txn.ID, txn.UserID, txn.AmountPaise, txn.Merchant, txn.OccurredAt, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateTransactionWithRoundup stores the purchase and its capped roundup atomically.
// The user's cap row is locked for the whole transaction so concurrent purchases
// cannot both read the same window sums.
func (r *RoundupRepo) CreateTransactionWithRoundup(ctx context.Context, txn *models.Transaction, allow roundup.CapFunc) (*models.RoundupEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertTransactionQuery,
		txn.ID, txn.UserID, txn.AmountPaise, txn.Merchant, txn.OccurredAt, txn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	caps, err := lockCapSetting(ctx, tx, txn.UserID, txn.CreatedAt)
	if err != nil {
		return nil, err
	}

	var sums models.RoundupWindowSums
	err = tx.GetContext(ctx, &sums, `
		SELECT
			COALESCE(SUM(amount_paise) FILTER (WHERE created_at >= $2), 0) AS today_paise,
			COALESCE(SUM(amount_paise), 0) AS month_paise
		FROM roundup_entries
		WHERE user_id = $1 AND created_at >= $3`,
		txn.UserID, models.StartOfDay(txn.CreatedAt), models.StartOfMonth(txn.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to sum roundup windows: %w", err)
	}

	var entry *models.RoundupEntry
	if allowed := allow(caps, sums); allowed > 0 {
		entry = &models.RoundupEntry{
			ID:            uuid.New(),
			UserID:        txn.UserID,
			TransactionID: txn.ID,
			AmountPaise:   allowed,
			Status:        models.RoundupStatusPending,
			CreatedAt:     txn.CreatedAt,
			UpdatedAt:     txn.CreatedAt,
		}
		if err := InsertEntry(ctx, tx, entry); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return entry, nil
}

func lockCapSetting(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, now time.Time) (*models.CapSetting, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cap_settings (user_id, paused, updated_at)
		VALUES ($1, FALSE, $2)
		ON CONFLICT (user_id) DO NOTHING`, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure cap settings: %w", err)
	}

	var caps models.CapSetting
	err = tx.GetContext(ctx, &caps, `
		SELECT user_id, daily_cap_paise, monthly_cap_paise, paused, updated_at
		FROM cap_settings
		WHERE user_id = $1
		FOR UPDATE`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock cap settings: %w", err)
	}
	return &caps, nil
}

// ListTransactions returns the latest purchases of a user
func (r *RoundupRepo) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	err := r.db.SelectContext(ctx, &txns, `
		SELECT id, user_id, amount_paise, merchant, occurred_at, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// ListRoundups returns a user's entries, optionally filtered by status
func (r *RoundupRepo) ListRoundups(ctx context.Context, userID uuid.UUID, status models.RoundupStatus) ([]models.RoundupEntry, error) {
	entries := []models.RoundupEntry{}
	query := `SELECT ` + entryColumns + ` FROM roundup_entries WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list roundups: %w", err)
	}
	return entries, nil
}

// SumPending returns the total of entries not yet invested
func (r *RoundupRepo) SumPending(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COALESCE(SUM(amount_paise), 0)
		FROM roundup_entries
		WHERE user_id = $1 AND status = $2`, userID, models.RoundupStatusPending)
	if err != nil {
		return 0, fmt.Errorf("failed to sum pending roundups: %w", err)
	}
	return total, nil
}

// GetCapSetting returns the stored caps, or an uncapped setting when none exist
func (r *RoundupRepo) GetCapSetting(ctx context.Context, userID uuid.UUID) (*models.CapSetting, error) {
	var caps models.CapSetting
	err := r.db.GetContext(ctx, &caps, `
		SELECT user_id, daily_cap_paise, monthly_cap_paise, paused, updated_at
		FROM cap_settings
		WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.CapSetting{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cap settings: %w", err)
	}
	return &caps, nil
}

// UpdateCapSetting applies fn to the user's cap row while holding its lock,
// so concurrent partial updates cannot overwrite each other's fields
func (r *RoundupRepo) UpdateCapSetting(ctx context.Context, userID uuid.UUID, now time.Time, fn roundup.CapUpdateFunc) (*models.CapSetting, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	caps, err := lockCapSetting(ctx, tx, userID, now)
	if err != nil {
		return nil, err
	}
	if err := fn(caps); err != nil {
		return nil, err
	}
	caps.UserID = userID
	caps.UpdatedAt = now

	_, err = tx.NamedExecContext(ctx, `
		UPDATE cap_settings SET
			daily_cap_paise = :daily_cap_paise,
			monthly_cap_paise = :monthly_cap_paise,
			paused = :paused,
			updated_at = :updated_at
		WHERE user_id = :user_id`, caps)
	if err != nil {
		return nil, fmt.Errorf("failed to save cap settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return caps, nil
}

// GetPreference returns the stored preferences, or the defaults when none exist
func (r *RoundupRepo) GetPreference(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.GetContext(ctx, &pref, `
		SELECT user_id, rounding_base_paise, risk_profile, sweep_frequency, updated_at
		FROM user_preferences
		WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPreference(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &pref, nil
}

// SavePreference upserts the preferences of a user
func (r *RoundupRepo) SavePreference(ctx context.Context, pref *models.UserPreference) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO user_preferences (user_id, rounding_base_paise, risk_profile, sweep_frequency, updated_at)
		VALUES (:user_id, :rounding_base_paise, :risk_profile, :sweep_frequency, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			rounding_base_paise = EXCLUDED.rounding_base_paise,
			risk_profile = EXCLUDED.risk_profile,
			sweep_frequency = EXCLUDED.sweep_frequency,
			updated_at = EXCLUDED.updated_at`, pref)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
