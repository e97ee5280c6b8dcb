package observability

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Tracer starts non-web transactions for background jobs
type Tracer interface {
	// StartBackground returns a context carrying the transaction and a func that ends it
	StartBackground(ctx context.Context, name string) (context.Context, func(err error))
}

// NoOpTracer is used when no APM agent is configured
type NoOpTracer struct{}

// NewNoOpTracer creates a new no-operation tracer
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

func (t *NoOpTracer) StartBackground(ctx context.Context, name string) (context.Context, func(err error)) {
	return ctx, func(error) {}
}

// NewRelicTracer records each job run as a New Relic background transaction
type NewRelicTracer struct {
	app *newrelic.Application
}

// NewTracer returns a New Relic tracer, or a no-op tracer for a nil app
func NewTracer(app *newrelic.Application) Tracer {
	if app == nil {
		return NewNoOpTracer()
	}
	return &NewRelicTracer{app: app}
}

func (t *NewRelicTracer) StartBackground(ctx context.Context, name string) (context.Context, func(err error)) {
	txn := t.app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), func(err error) {
		if err != nil {
			txn.NoticeError(err)
		}
		txn.End()
	}
}
