package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/database"
)

const callbackTTL = 72 * time.Hour

// CallbackDeduper records processed provider event ids in Redis
type CallbackDeduper struct {
	redisClient *database.RedisClient
}

// NewCallbackDeduper creates a deduper on the shared Redis client
func NewCallbackDeduper(redisClient *database.RedisClient) *CallbackDeduper {
	return &CallbackDeduper{redisClient: redisClient}
}

// MarkSeen stores the event id and returns false if it was stored before
func (d *CallbackDeduper) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	ok, err := d.redisClient.SetNX(ctx, fmt.Sprintf(constants.KeyWebhookEvent, eventID), time.Now().Unix(), callbackTTL)
	if err != nil {
		return false, fmt.Errorf("failed to record callback event: %w", err)
	}
	return ok, nil
}

// Forget drops the event id so a redelivery is processed again
func (d *CallbackDeduper) Forget(ctx context.Context, eventID string) error {
	if err := d.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyWebhookEvent, eventID)); err != nil {
		return fmt.Errorf("failed to forget callback event: %w", err)
	}
	return nil
}
