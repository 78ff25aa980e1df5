package collector

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	gib           = 1024 * 1024 * 1024
	wmiDateLayout = "20060102150405"
	wmiDatePrefix = len(wmiDateLayout)
	timeLayout    = "2006/01/02 15:04:05"
)

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BytesToGiB converts a byte count to gibibytes rounded to two decimals.
func BytesToGiB(b uint64) float64 {
	return Round2(float64(b) / gib)
}

// FormatTotalRAM renders a total memory size the way the record reports it,
// e.g. "15.84GB".
func FormatTotalRAM(b uint64) string {
	return fmt.Sprintf("%.2fGB", float64(b)/gib)
}

// FormatWMIDate reformats a CIM_DATETIME value such as
// "20240115103000.000000+480" to "2024/01/15 10:30:00". Only the first 14
// characters are read; the microseconds and UTC offset are ignored.
func FormatWMIDate(s string) string {
	if s == "" {
		return SentinelUnknown
	}
	if len(s) < wmiDatePrefix {
		return SentinelInvalid
	}
	t, err := time.Parse(wmiDateLayout, s[:wmiDatePrefix])
	if err != nil {
		return SentinelInvalid
	}
	return t.Format(timeLayout)
}

// EncodeWMIDate renders t in the CIM_DATETIME encoding with its UTC offset in
// minutes.
func EncodeWMIDate(t time.Time) string {
	_, offset := t.Zone()
	minutes := offset / 60
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%s.%06d%c%03d", t.Format(wmiDateLayout), t.Nanosecond()/1000, sign, minutes)
}

// FormatMAC converts "aa:bb:cc:dd:ee:ff" to "AA-BB-CC-DD-EE-FF".
func FormatMAC(hw string) string {
	return strings.ToUpper(strings.ReplaceAll(hw, ":", "-"))
}

// memoryTypes maps SMBIOS memory type codes to a generation name.
var memoryTypes = map[uint32]string{
	20: "DDR",
	21: "DDR2",
	22: "DDR2 FB-DIMM",
	24: "DDR3",
	26: "DDR4",
	27: "LPDDR",
	28: "LPDDR2",
	29: "LPDDR3",
	30: "LPDDR4",
	34: "DDR5",
	35: "LPDDR5",
}

// MemoryTypeName returns the memory generation for an SMBIOS memory type
// code. The legacy WMI MemoryType code is used when smbiosType is not
// recognised.
func MemoryTypeName(smbiosType uint32, legacyType uint16) string {
	if name, ok := memoryTypes[smbiosType]; ok {
		return name
	}
	if name, ok := memoryTypes[uint32(legacyType)]; ok {
		return name
	}
	return SentinelUnknown
}

// Summarize aggregates modules into counts, total capacity and the distinct
// types in order of first appearance.
func Summarize(modules []MemoryModule) MemoryInfo {
	info := MemoryInfo{
		ModuleCount: len(modules),
		Types:       []string{},
		Modules:     modules,
	}
	if info.Modules == nil {
		info.Modules = []MemoryModule{}
	}

	seen := make(map[string]bool)
	var total float64
	for _, m := range modules {
		total += m.SizeGB
		if !seen[m.Type] {
			seen[m.Type] = true
			info.Types = append(info.Types, m.Type)
		}
	}
	info.TotalCapacityGB = Round2(total)
	return info
}

// architectureName maps a kernel architecture string to "64-bit" or "32-bit".
func architectureName(arch string) string {
	switch strings.ToLower(arch) {
	case "x86_64", "amd64", "arm64", "aarch64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64", "mips64":
		return "64-bit"
	case "":
		return ""
	default:
		if strings.Contains(arch, "64") {
			return "64-bit"
		}
		return "32-bit"
	}
}

// orNull substitutes SentinelNull for an empty string.
func orNull(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return SentinelNull
	}
	return s
}

// PnPVendor extracts the three letter vendor code from a monitor device id
// such as `MONITOR\DEL4099\{4d36e96e-e325-11ce-bfc1-08002be10318}\0001`.
// It returns "" when id has another shape.
func PnPVendor(id string) string {
	parts := strings.Split(id, `\`)
	if len(parts) < 2 || !strings.EqualFold(parts[0], "MONITOR") || len(parts[1]) < 3 {
		return ""
	}
	return strings.ToUpper(parts[1][:3])
}
