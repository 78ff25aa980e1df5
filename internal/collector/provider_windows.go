package collector

import (
	"fmt"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type windowsProvider struct {
	portable
	wmi *wmi.Client
}

// NewProvider returns the Provider for the current platform, backed by WMI,
// the registry and user32 with SMBIOS as fallback for firmware facts.
func NewProvider() Provider {
	return &windowsProvider{
		portable: newPortable(),
		wmi: &wmi.Client{
			NonePtrZero:        true,
			PtrNil:             true,
			AllowMissingFields: true,
		},
	}
}

// query runs a WQL query into dst, a pointer to a slice of structs.
func (p *windowsProvider) query(q string, dst interface{}) error {
	if err := p.wmi.Query(q, dst); err != nil {
		return fmt.Errorf("wmi %q: %w", q, err)
	}
	return nil
}

func driveName(mountpoint string) string {
	if strings.HasSuffix(mountpoint, `\`) {
		return mountpoint
	}
	return mountpoint + `\`
}
