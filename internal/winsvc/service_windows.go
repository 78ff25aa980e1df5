//go:build windows

package winsvc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

const pollInterval = 500 * time.Millisecond

// EnsureRunning starts the named service when it is stopped and waits up to
// timeout for it to report running. A service in any pending state other
// than stop-pending is left alone and reported as NotRunning.
func EnsureRunning(ctx context.Context, name string, timeout time.Duration) (State, error) {
	m, err := mgr.Connect()
	if err != nil {
		return NotRunning, fmt.Errorf("connect to SCM: %w", err)
	}
	defer m.Disconnect()

	s, err := m.OpenService(name)
	if err != nil {
		return NotRunning, fmt.Errorf("open service %s: %w", name, err)
	}
	defer s.Close()

	status, err := s.Query()
	if err != nil {
		return NotRunning, fmt.Errorf("query service %s: %w", name, err)
	}

	switch status.State {
	case svc.Running:
		return AlreadyRunning, nil
	case svc.Stopped, svc.StopPending:
	default:
		return NotRunning, nil
	}

	if err := s.Start(); err != nil {
		return NotRunning, fmt.Errorf("start service %s: %w", name, err)
	}
	return waitRunning(ctx, s, timeout)
}

func waitRunning(ctx context.Context, s *mgr.Service, timeout time.Duration) (State, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		status, err := s.Query()
		if err != nil {
			return NotRunning, fmt.Errorf("query service %s: %w", s.Name, err)
		}
		if status.State == svc.Running {
			return Started, nil
		}

		select {
		case <-ctx.Done():
			return TimedOut, nil
		case <-ticker.C:
		}
	}
}
