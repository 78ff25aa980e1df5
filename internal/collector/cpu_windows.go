package collector

import (
	"context"
	"fmt"
	"strings"
)

type win32Processor struct {
	ProcessorId string
	Name        string
}

func (p *windowsProvider) processors() ([]win32Processor, error) {
	var procs []win32Processor
	if err := p.query("SELECT ProcessorId, Name FROM Win32_Processor", &procs); err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("no Win32_Processor instances")
	}
	return procs, nil
}

// CPUID returns the ProcessorId of the first processor.
func (p *windowsProvider) CPUID(_ context.Context) (string, error) {
	procs, err := p.processors()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(procs[0].ProcessorId), nil
}

// CPUName returns the name of the first processor, falling back to gopsutil.
func (p *windowsProvider) CPUName(ctx context.Context) (string, error) {
	procs, err := p.processors()
	if err == nil && strings.TrimSpace(procs[0].Name) != "" {
		return strings.TrimSpace(procs[0].Name), nil
	}
	return p.portable.CPUName(ctx)
}
