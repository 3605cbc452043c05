package reqctx

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/cli/pkg/logger"
)

// Adapter builds contexts for outgoing backend calls: a per-call timeout
// plus a fresh request ID for log correlation.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs a new Adapter using the provided timeout.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Adapter{
		timeout: timeout,
	}
}

// New derives a call context from parent with the adapter's timeout and a
// generated request ID attached.
func (a *Adapter) New(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, a.timeout)
	ctx = logger.ContextWithRequestID(ctx, uuid.NewString())
	return ctx, cancel
}
