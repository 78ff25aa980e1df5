//go:build !windows

package collector

import (
	"context"
	"fmt"
	"runtime"
)

type otherProvider struct {
	portable
}

// NewProvider returns the Provider for the current platform. Facts that only
// Windows management interfaces expose are reported as unsupported.
func NewProvider() Provider {
	return &otherProvider{portable: newPortable()}
}

func unsupported(what string) error {
	return fmt.Errorf("%s on %s: %w", what, runtime.GOOS, ErrUnsupported)
}

func (*otherProvider) CPUID(_ context.Context) (string, error) {
	return "", unsupported("processor id")
}

func (*otherProvider) GPU(_ context.Context) (string, error) {
	return "", unsupported("video controller")
}

func (*otherProvider) InstalledSoftware(_ context.Context) ([]string, error) {
	return nil, unsupported("installed software")
}

func (*otherProvider) MemoryModules(_ context.Context) ([]MemoryModule, error) {
	return nil, unsupported("memory modules")
}

func (*otherProvider) Displays(_ context.Context) ([]Display, error) {
	return nil, unsupported("displays")
}

func driveName(mountpoint string) string {
	return mountpoint
}
