package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromCore(core, "roundup-test"), logs
}

func TestShutdownManager_ReverseOrderAndContinuesOnError(t *testing.T) {
	zl, logs := testLogger()
	sm := NewShutdownManager(zl)

	var order []string
	sm.Register("postgres", func(context.Context) error { order = append(order, "postgres"); return nil })
	sm.Register("nats", func(context.Context) error { order = append(order, "nats"); return errors.New("drain timeout") })
	sm.Register("scheduler", func(context.Context) error { order = append(order, "scheduler"); return nil })

	failed := sm.Shutdown(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"scheduler", "nats", "postgres"}, order)
	assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
}

func TestGracefulServer_ShutdownRunsComponents(t *testing.T) {
	zl, _ := testLogger()
	sm := NewShutdownManager(zl)
	closed := false
	sm.Register("redis", func(context.Context) error { closed = true; return nil })

	s := NewGracefulServer(echo.New(), zl, 0, time.Second, sm)

	assert.NoError(t, s.Shutdown())
	assert.True(t, closed)
}

func TestNewGracefulServer_Defaults(t *testing.T) {
	zl, _ := testLogger()
	s := NewGracefulServer(echo.New(), zl, 8080, 0, nil)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)
	assert.NotNil(t, s.components)
}
