package collector

import (
	"fmt"
	"sync"

	"github.com/siderolabs/go-smbios/smbios"
)

// firmware reads the SMBIOS tables once per run.
type firmware struct {
	once sync.Once
	s    *smbios.SMBIOS
	err  error
}

func (f *firmware) tables() (*smbios.SMBIOS, error) {
	f.once.Do(func() {
		f.s, f.err = smbios.New()
		if f.err != nil {
			f.err = fmt.Errorf("read SMBIOS: %w", f.err)
		}
	})
	return f.s, f.err
}
