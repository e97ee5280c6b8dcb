package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_locker.go -package=mocks github.com/piresc/roundup/internal/pkg/lock Locker

// Locker runs fn while holding an exclusive lock on key.
// It returns models.ErrLocked without calling fn when another holder owns the key.
type Locker interface {
	WithLock(ctx context.Context, key string, expiry time.Duration, fn func(ctx context.Context) error) error
}

// RedisLocker is a Locker backed by redsync on a single redis node
type RedisLocker struct {
	rs *redsync.Redsync
}

// NewRedisLocker creates a locker on the given client
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{rs: redsync.New(goredis.NewPool(client))}
}

// WithLock makes a single acquisition attempt, so concurrent callers skip instead of queueing
func (l *RedisLocker) WithLock(ctx context.Context, key string, expiry time.Duration, fn func(ctx context.Context) error) error {
	if key == "" {
		return fmt.Errorf("lock key cannot be empty")
	}
	if expiry <= 0 {
		return fmt.Errorf("lock expiry must be greater than 0")
	}

	mutex := l.rs.NewMutex(key, redsync.WithExpiry(expiry), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		if isContention(err) {
			return fmt.Errorf("%w: %s: %v", models.ErrLocked, key, err)
		}
		return fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	defer func() {
		// a separate context so a cancelled caller still releases the key
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if ok, err := mutex.UnlockContext(unlockCtx); err != nil || !ok {
			logger.Warn("Failed to release lock", logger.String("key", key), logger.Err(err))
		}
	}()

	return fn(ctx)
}

// isContention reports whether a LockContext error means another holder owns the key,
// as opposed to redis being unreachable
func isContention(err error) bool {
	var taken *redsync.ErrTaken
	return errors.As(err, &taken) || errors.Is(err, redsync.ErrFailed)
}
