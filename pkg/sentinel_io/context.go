// pkg/sentinel_io/context.go

// Package sentinel_io carries the per-command runtime context and terminal
// input helpers.
package sentinel_io

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/sentinel/pkg/logger"
)

// RuntimeContext bundles what every command handler needs: a context, a
// command-scoped logger and the start timestamp for duration reporting.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Command   string
	Timestamp time.Time
}

// NewContext builds the runtime context for one command invocation.
func NewContext(ctx context.Context, command string) *RuntimeContext {
	return &RuntimeContext{
		Ctx:       ctx,
		Log:       logger.L().Named(command).With(zap.String("command", command)),
		Command:   command,
		Timestamp: time.Now(),
	}
}

// HandlePanic recovers a panic, logs it, and converts it to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with its duration.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Info("command completed", zap.Duration("duration", duration))
		return
	}
	rc.Log.Error("command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
}
