package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(retries int) Config {
	return Config{MaxRetries: retries, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(3), nil)
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	r := New(fastConfig(2), nil)
	boom := errors.New("boom")
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_PermanentStopsImmediately(t *testing.T) {
	r := New(fastConfig(5), nil)
	boom := errors.New("declined")
	calls := 0

	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return &Permanent{Err: boom}
	})

	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_NotRetryable(t *testing.T) {
	cfg := fastConfig(5)
	cfg.IsRetryable = func(error) bool { return false }
	calls := 0

	_ = New(cfg, nil).Execute(context.Background(), func(context.Context) error {
		calls++
		return errors.New("bad request")
	})
	assert.Equal(t, 1, calls)
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(fastConfig(1), nil).Execute(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	r := New(Config{BaseDelay: 10 * time.Millisecond, MaxDelay: 25 * time.Millisecond, Multiplier: 2}, nil)
	assert.Equal(t, 10*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 20*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 25*time.Millisecond, r.calculateDelay(5))
}
