package collector

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by a Provider for facts it cannot determine on
// the current platform.
var ErrUnsupported = errors.New("not supported on this platform")

// Sentinel values stored in a Record when a fact cannot be determined.
const (
	SentinelNull    = "Null"
	SentinelRAM     = "-1"
	SentinelCount   = -1
	SentinelUnknown = "Unknown"
	SentinelInvalid = "Invalid"
)

// Provider retrieves individual facts about the local host. Every method
// either returns a well formed value or an error; errors wrapping
// ErrUnsupported mean the fact does not exist on this platform.
type Provider interface {
	CPUID(ctx context.Context) (string, error)
	ComputerName(ctx context.Context) (string, error)
	OSVersion(ctx context.Context) (string, error)
	BIOSSerialNumber(ctx context.Context) (string, error)
	CPUName(ctx context.Context) (string, error)
	CPUCores(ctx context.Context) (int, error)
	Motherboard(ctx context.Context) (Motherboard, error)
	System(ctx context.Context) (SystemInfo, error)
	GPU(ctx context.Context) (string, error)
	Architecture(ctx context.Context) (string, error)
	// LastBootUpTime returns the boot time in the WMI CIM_DATETIME encoding.
	LastBootUpTime(ctx context.Context) (string, error)
	Endpoints(ctx context.Context) ([]Endpoint, error)
	UserName(ctx context.Context) (string, error)
	InstalledSoftware(ctx context.Context) ([]string, error)
	Drives(ctx context.Context) ([]Drive, error)
	TotalRAMBytes(ctx context.Context) (uint64, error)
	MemoryModules(ctx context.Context) ([]MemoryModule, error)
	Displays(ctx context.Context) ([]Display, error)
}

// firstQuery runs each query in turn until one succeeds and returns the last
// error when none does.
func firstQuery(run func(q string) error, queries ...string) error {
	var err error
	for _, q := range queries {
		if err = run(q); err == nil {
			return nil
		}
	}
	return err
}
