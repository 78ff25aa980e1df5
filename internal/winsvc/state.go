// Package winsvc makes sure the Windows management service is running before
// the inventory is queried.
package winsvc

import "errors"

// ErrUnsupported is returned on platforms without a service control manager.
var ErrUnsupported = errors.New("service control is not supported on this platform")

// State is the outcome of EnsureRunning.
type State int

const (
	NotRunning State = iota
	AlreadyRunning
	Started
	TimedOut
)

func (s State) String() string {
	switch s {
	case AlreadyRunning:
		return "already running"
	case Started:
		return "started"
	case TimedOut:
		return "timed out"
	default:
		return "not running"
	}
}
