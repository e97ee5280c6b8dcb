package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupMockRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "roundup:key", "value", time.Minute))
	got, err := client.Get(ctx, "roundup:key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.True(t, mr.TTL("roundup:key") > 0)

	require.NoError(t, client.Delete(ctx, "roundup:key"))
	_, err = client.Get(ctx, "roundup:key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_SetNX(t *testing.T) {
	_, client := setupMockRedis(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "lock", "a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "lock", "b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}
