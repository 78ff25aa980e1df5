package collector

import (
	"context"
	"fmt"
	"strings"
)

type win32ComputerSystemMem struct {
	TotalPhysicalMemory uint64
}

type win32PhysicalMemory struct {
	Capacity         uint64
	Speed            uint32
	MemoryType       uint16
	SMBIOSMemoryType uint32
	Manufacturer     string
	PartNumber       string
	DeviceLocator    string
}

// TotalRAMBytes queries Win32_ComputerSystem for total physical RAM.
func (p *windowsProvider) TotalRAMBytes(ctx context.Context) (uint64, error) {
	var cs []win32ComputerSystemMem
	err := p.query("SELECT TotalPhysicalMemory FROM Win32_ComputerSystem", &cs)
	if err == nil && len(cs) > 0 && cs[0].TotalPhysicalMemory > 0 {
		return cs[0].TotalPhysicalMemory, nil
	}
	return p.portable.TotalRAMBytes(ctx)
}

// SMBIOSMemoryType only exists from Windows 10 on; older systems fail the
// first query and take the legacy MemoryType code from the second.
const (
	physicalMemoryQuery       = "SELECT Capacity, Speed, MemoryType, SMBIOSMemoryType, Manufacturer, PartNumber, DeviceLocator FROM Win32_PhysicalMemory"
	physicalMemoryLegacyQuery = "SELECT Capacity, Speed, MemoryType, Manufacturer, PartNumber, DeviceLocator FROM Win32_PhysicalMemory"
)

// MemoryModules queries Win32_PhysicalMemory for per-DIMM details.
func (p *windowsProvider) MemoryModules(_ context.Context) ([]MemoryModule, error) {
	var pm []win32PhysicalMemory
	err := firstQuery(func(q string) error {
		pm = nil
		return p.query(q, &pm)
	}, physicalMemoryQuery, physicalMemoryLegacyQuery)
	if err != nil {
		return nil, err
	}
	if len(pm) == 0 {
		return nil, fmt.Errorf("no Win32_PhysicalMemory instances")
	}

	modules := make([]MemoryModule, len(pm))
	for i, m := range pm {
		modules[i] = MemoryModule{
			SizeGB:       BytesToGiB(m.Capacity),
			SpeedMHz:     m.Speed,
			Type:         MemoryTypeName(m.SMBIOSMemoryType, m.MemoryType),
			Manufacturer: strings.TrimSpace(m.Manufacturer),
			PartNumber:   strings.TrimSpace(m.PartNumber),
			Slot:         strings.TrimSpace(m.DeviceLocator),
		}
	}
	return modules, nil
}
