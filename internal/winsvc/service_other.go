//go:build !windows

package winsvc

import (
	"context"
	"time"
)

// EnsureRunning always returns ErrUnsupported on non-Windows platforms.
func EnsureRunning(_ context.Context, _ string, _ time.Duration) (State, error) {
	return NotRunning, ErrUnsupported
}
