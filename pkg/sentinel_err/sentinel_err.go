// pkg/sentinel_err/sentinel_err.go

// Package sentinel_err separates expected user errors (bad flags, rejected
// generation configs, missing files) from system errors so the CLI can exit
// gracefully for the former and loudly for the latter.
package sentinel_err

import (
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// UserError marks an error as expected: caused by user input, not by a bug
// or a broken environment.
type UserError struct {
	cause error
}

func (e *UserError) Error() string { return e.cause.Error() }

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *UserError) Unwrap() error { return e.cause }

// NewExpectedError wraps err as an expected user error. Returns nil for nil.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// NewExpectedErrorf builds an expected user error from a format string.
func NewExpectedErrorf(format string, args ...interface{}) error {
	return &UserError{cause: cerr.Newf(format, args...)}
}

// IsExpectedUserError checks whether err is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return cerr.As(err, &e)
}

// PrintError writes a human-readable error line to stderr and mirrors it to
// the structured log without exiting.
func PrintError(userMessage string, err error) {
	if err == nil {
		return
	}
	if IsExpectedUserError(err) {
		zap.L().Warn(userMessage, zap.Error(err))
		fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", userMessage, err)
		return
	}
	zap.L().Error(userMessage, zap.Error(err))
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", userMessage, err)
}
