// Package collectortest provides a Provider with canned facts for tests.
package collectortest

import (
	"context"
	"errors"

	"github.com/go-tangra/go-tangra-computerinfo/internal/collector"
)

// ErrUnavailable is the error returned for failed fields.
var ErrUnavailable = errors.New("source unavailable")

// Stub is a collector.Provider returning the values in its fields. A field
// named in Fail returns its error instead; calls counts queries per field.
type Stub struct {
	Values Values
	Fail   map[string]error
	Panic  map[string]bool

	calls map[string]int
}

// Values are the facts a Stub reports.
type Values struct {
	CPUID             string
	ComputerName      string
	OSVersion         string
	BIOSSerialNumber  string
	CPUName           string
	CPUCores          int
	Motherboard       collector.Motherboard
	System            collector.SystemInfo
	GPU               string
	Architecture      string
	LastBootUpTime    string
	Endpoints         []collector.Endpoint
	UserName          string
	InstalledSoftware []string
	Drives            []collector.Drive
	TotalRAMBytes     uint64
	MemoryModules     []collector.MemoryModule
	Displays          []collector.Display
}

// New returns a Stub populated with a plausible workstation.
func New() *Stub {
	return &Stub{
		Values: Values{
			CPUID:            "BFEBFBFF000906EA",
			ComputerName:     "WS-0042",
			OSVersion:        "Microsoft Windows 11 Pro 10.0.22631 Build 22631",
			BIOSSerialNumber: "5CG1234XYZ",
			CPUName:          "Intel(R) Core(TM) i7-9700 CPU @ 3.00GHz",
			CPUCores:         8,
			Motherboard: collector.Motherboard{
				Manufacturer: "HP",
				Product:      "8767",
				SerialNumber: "PGXYZ0001",
			},
			System: collector.SystemInfo{
				Manufacturer: "HP",
				Model:        "HP EliteDesk 800 G5",
				SerialNumber: "5CG1234XYZ",
				UUID:         "4C4C4544-0042-3510-8052-B4C04F4E4B32",
			},
			GPU:            "Intel(R) UHD Graphics 630",
			Architecture:   "64-bit",
			LastBootUpTime: "20240115103000.000000+480",
			Endpoints: []collector.Endpoint{
				{IP: "192.168.1.20", MAC: "00-1A-2B-3C-4D-5E"},
			},
			UserName:          "alice",
			InstalledSoftware: []string{"7-Zip 23.01 (x64)", "Microsoft Edge", "中文輸入法 <beta> & tools"},
			Drives: []collector.Drive{
				{Name: `C:\`, TotalBytes: 256 << 30, FreeBytes: 100 << 30},
				{Name: `D:\`, TotalBytes: 1 << 40, FreeBytes: 3 << 29},
			},
			TotalRAMBytes: 16 << 30,
			MemoryModules: []collector.MemoryModule{
				{SizeGB: 8, SpeedMHz: 2666, Type: "DDR4", Manufacturer: "Samsung", PartNumber: "M378A1K43CB2-CTD", Slot: "DIMM1"},
				{SizeGB: 8, SpeedMHz: 2666, Type: "DDR4", Manufacturer: "Samsung", PartNumber: "M378A1K43CB2-CTD", Slot: "DIMM2"},
			},
			Displays: []collector.Display{
				{DeviceName: `\\.\DISPLAY1`, Resolution: "1920x1080", Primary: true, Manufacturer: "DEL", Model: "Dell P2419H"},
			},
		},
		Fail:  map[string]error{},
		Panic: map[string]bool{},
		calls: map[string]int{},
	}
}

// Calls returns how many times the named field was queried.
func (s *Stub) Calls(field string) int { return s.calls[field] }

func get[T any](s *Stub, field string, v T) (T, error) {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[field]++
	if s.Panic[field] {
		panic(field + " exploded")
	}
	if err, ok := s.Fail[field]; ok {
		var zero T
		return zero, err
	}
	return v, nil
}

func (s *Stub) CPUID(context.Context) (string, error) { return get(s, "CpuId", s.Values.CPUID) }

func (s *Stub) ComputerName(context.Context) (string, error) {
	return get(s, "ComputerName", s.Values.ComputerName)
}

func (s *Stub) OSVersion(context.Context) (string, error) {
	return get(s, "OSVersion", s.Values.OSVersion)
}

func (s *Stub) BIOSSerialNumber(context.Context) (string, error) {
	return get(s, "BIOSSerialNumber", s.Values.BIOSSerialNumber)
}

func (s *Stub) CPUName(context.Context) (string, error) { return get(s, "Cpu", s.Values.CPUName) }

func (s *Stub) CPUCores(context.Context) (int, error) {
	return get(s, "CpuCoreNumbers", s.Values.CPUCores)
}

func (s *Stub) Motherboard(context.Context) (collector.Motherboard, error) {
	return get(s, "Motherboard", s.Values.Motherboard)
}

func (s *Stub) System(context.Context) (collector.SystemInfo, error) {
	return get(s, "System", s.Values.System)
}

func (s *Stub) GPU(context.Context) (string, error) { return get(s, "Gpu", s.Values.GPU) }

func (s *Stub) Architecture(context.Context) (string, error) {
	return get(s, "SystemArchitecture", s.Values.Architecture)
}

func (s *Stub) LastBootUpTime(context.Context) (string, error) {
	return get(s, "LastBootUpTime", s.Values.LastBootUpTime)
}

func (s *Stub) Endpoints(context.Context) ([]collector.Endpoint, error) {
	return get(s, "Network", s.Values.Endpoints)
}

func (s *Stub) UserName(context.Context) (string, error) {
	return get(s, "UserName", s.Values.UserName)
}

func (s *Stub) InstalledSoftware(context.Context) ([]string, error) {
	return get(s, "InstalledSoftware", s.Values.InstalledSoftware)
}

func (s *Stub) Drives(context.Context) ([]collector.Drive, error) {
	return get(s, "Drives", s.Values.Drives)
}

func (s *Stub) TotalRAMBytes(context.Context) (uint64, error) {
	return get(s, "TotalRAM", s.Values.TotalRAMBytes)
}

func (s *Stub) MemoryModules(context.Context) ([]collector.MemoryModule, error) {
	return get(s, "Memory", s.Values.MemoryModules)
}

func (s *Stub) Displays(context.Context) ([]collector.Display, error) {
	return get(s, "Displays", s.Values.Displays)
}
