package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/piresc/roundup/internal/pkg/audit Publisher

// Publisher fans committed audit events out to subscribers
type Publisher interface {
	Publish(ctx context.Context, events ...models.AuditEvent)
}

const insertQuery = `
	INSERT INTO audit_events (id, user_id, mandate_id, event_type, message, amount_paise, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Insert appends events using exec, which is a *sqlx.DB or the caller's *sqlx.Tx
func Insert(ctx context.Context, exec sqlx.ExecerContext, events ...models.AuditEvent) error {
	for _, ev := range events {
		_, err := exec.ExecContext(ctx, insertQuery,
			ev.ID, ev.UserID, ev.MandateID, ev.EventType, ev.Message, ev.AmountPaise, ev.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert audit event %s: %w", ev.EventType, err)
		}
	}
	return nil
}

const eventColumns = `id, user_id, mandate_id, event_type, message, amount_paise, created_at`

// List returns a user's events newest first
func List(ctx context.Context, q sqlx.QueryerContext, userID uuid.UUID, filter models.EventFilter) ([]models.AuditEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM audit_events WHERE user_id = $1`
	args := []interface{}{userID}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		query += fmt.Sprintf(` AND event_type = $%d`, len(args))
	}
	args = append(args, filter.EffectiveLimit())
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args))

	events := []models.AuditEvent{}
	if err := sqlx.SelectContext(ctx, q, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	return events, nil
}

// JSONPublisher is the subset of the NATS client used for fan-out
type JSONPublisher interface {
	PublishJSON(subject string, v interface{}) error
}

// NATSPublisher publishes each event on roundup.audit.<event_type>
type NATSPublisher struct {
	client JSONPublisher
}

// NewNATSPublisher creates a publisher on the given client
func NewNATSPublisher(client JSONPublisher) *NATSPublisher {
	return &NATSPublisher{client: client}
}

// Publish is best effort; the database row is the record of truth
func (p *NATSPublisher) Publish(ctx context.Context, events ...models.AuditEvent) {
	for _, ev := range events {
		subject := fmt.Sprintf(constants.SubjectAuditEvent, ev.EventType)
		if err := p.client.PublishJSON(subject, ev); err != nil {
			logger.WarnCtx(ctx, "Failed to publish audit event",
				logger.String("subject", subject),
				logger.UUID("user_id", ev.UserID),
				logger.Err(err))
		}
	}
}
