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
)

// InvestmentRepo implements investment.InvestmentRepo on PostgreSQL
type InvestmentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(cfg *models.Config, db *sqlx.DB) *InvestmentRepo {
	return &InvestmentRepo{
		cfg: cfg,
		db:  db,
	}
}

const orderColumns = `id, user_id, instrument_type, amount_paise, status, external_order_id, debit_id, created_at, updated_at`

// GetRiskProfile returns the user's stored risk profile, or "" when none is stored
func (r *InvestmentRepo) GetRiskProfile(ctx context.Context, userID uuid.UUID) (string, error) {
	var risk string
	err := r.db.GetContext(ctx, &risk, `SELECT risk_profile FROM user_preferences WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get risk profile: %w", err)
	}
	return risk, nil
}

// SumPending returns the total of roundups awaiting investment
func (r *InvestmentRepo) SumPending(ctx context.Context, userID uuid.UUID) (int64, error) {
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

// ListPositions returns executed investments and redemptions grouped by instrument
func (r *InvestmentRepo) ListPositions(ctx context.Context, userID uuid.UUID) ([]models.Position, error) {
	positions := []models.Position{}
	err := r.db.SelectContext(ctx, &positions, `
		SELECT
			COALESCE(o.instrument_type, rd.instrument_type) AS instrument_type,
			COALESCE(o.total, 0) AS invested_paise,
			COALESCE(rd.total, 0) AS redeemed_paise
		FROM (
			SELECT instrument_type, SUM(amount_paise) AS total
			FROM investment_orders
			WHERE user_id = $1 AND status = $2
			GROUP BY instrument_type
		) o
		FULL OUTER JOIN (
			SELECT instrument_type, SUM(amount_paise) AS total
			FROM redemptions
			WHERE user_id = $1 AND status = $2
			GROUP BY instrument_type
		) rd ON rd.instrument_type = o.instrument_type
		ORDER BY 1`, userID, models.OrderStatusExecuted)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

// CreateRedemption records a redemption and its credit entry when the position covers it
func (r *InvestmentRepo) CreateRedemption(ctx context.Context, redemption *models.Redemption, event models.AuditEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var pos models.Position
	err = tx.GetContext(ctx, &pos, `
		SELECT
			(SELECT COALESCE(SUM(amount_paise), 0) FROM investment_orders
				WHERE user_id = $1 AND instrument_type = $2 AND status = $3) AS invested_paise,
			(SELECT COALESCE(SUM(amount_paise), 0) FROM redemptions
				WHERE user_id = $1 AND instrument_type = $2 AND status = $3) AS redeemed_paise`,
		redemption.UserID, redemption.InstrumentType, models.OrderStatusExecuted)
	if err != nil {
		return fmt.Errorf("failed to load position: %w", err)
	}
	if redemption.AmountPaise > pos.NetPaise() {
		return fmt.Errorf("%w: redemption of %d paise exceeds %s position of %d paise",
			models.ErrValidation, redemption.AmountPaise, redemption.InstrumentType, pos.NetPaise())
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO redemptions (id, user_id, instrument_type, amount_paise, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		redemption.ID, redemption.UserID, redemption.InstrumentType, redemption.AmountPaise,
		redemption.Status, redemption.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create redemption: %w", err)
	}

	entry := &models.LedgerEntry{
		ID:            uuid.New(),
		UserID:        redemption.UserID,
		Type:          models.LedgerCredit,
		Category:      models.LedgerCategoryRedemption,
		AmountPaise:   redemption.AmountPaise,
		ReferenceType: models.ReferenceRedemption,
		ReferenceID:   redemption.ID,
		CreatedAt:     redemption.CreatedAt,
	}
	if err := insertLedgerEntry(ctx, tx, entry); err != nil {
		return err
	}
	if err := audit.Insert(ctx, tx, event); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetReconciliation sums the ledger, executed orders and executed redemptions of a user
func (r *InvestmentRepo) GetReconciliation(ctx context.Context, userID uuid.UUID) (*models.Reconciliation, error) {
	var sums struct {
		LedgerNet  int64 `db:"ledger_net_paise"`
		Orders     int64 `db:"orders_paise"`
		Redemption int64 `db:"redemption_paise"`
	}
	err := r.db.GetContext(ctx, &sums, `
		SELECT
			COALESCE((SELECT SUM(CASE WHEN type = 'debit' THEN amount_paise ELSE -amount_paise END)
				FROM ledger_entries WHERE user_id = $1), 0) AS ledger_net_paise,
			COALESCE((SELECT SUM(amount_paise)
				FROM investment_orders WHERE user_id = $1 AND status = $2), 0) AS orders_paise,
			COALESCE((SELECT SUM(amount_paise)
				FROM redemptions WHERE user_id = $1 AND status = $2), 0) AS redemption_paise`,
		userID, models.OrderStatusExecuted)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile ledger: %w", err)
	}
	return &models.Reconciliation{
		UserID:          userID,
		LedgerNetPaise:  sums.LedgerNet,
		OrdersPaise:     sums.Orders,
		RedemptionPaise: sums.Redemption,
	}, nil
}

// ListOrders returns every investment order of a user, newest first
func (r *InvestmentRepo) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.InvestmentOrder, error) {
	orders := []models.InvestmentOrder{}
	err := r.db.SelectContext(ctx, &orders, `
		SELECT `+orderColumns+`
		FROM investment_orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListLedger returns the ledger of a user in posting order
func (r *InvestmentRepo) ListLedger(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error) {
	entries := []models.LedgerEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, user_id, type, category, amount_paise, reference_type, reference_id, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}
	return entries, nil
}

func insertLedgerEntry(ctx context.Context, exec sqlx.ExecerContext, entry *models.LedgerEntry) error {
	_, err := exec.ExecContext(ctx, `
		INSERT INTO ledger_entries (id, user_id, type, category, amount_paise, reference_type, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Type, entry.Category, entry.AmountPaise,
		entry.ReferenceType, entry.ReferenceID, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}
