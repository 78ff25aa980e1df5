package collector

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32                = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevicesW  = modUser32.NewProc("EnumDisplayDevicesW")
	procEnumDisplaySettingsW = modUser32.NewProc("EnumDisplaySettingsW")
)

const (
	displayAttachedToDesktop = 0x00000001
	displayPrimaryDevice     = 0x00000004
	enumCurrentSettings      = 0xFFFFFFFF
	maxDisplayAdapters       = 64
)

// displayDevice mirrors DISPLAY_DEVICEW.
type displayDevice struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

// devMode mirrors DEVMODEW with the display variant of its union.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

func enumDisplayDevice(device *uint16, index uint32, dd *displayDevice) bool {
	dd.Cb = uint32(unsafe.Sizeof(*dd))
	ret, _, _ := procEnumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(index),
		uintptr(unsafe.Pointer(dd)),
		0,
	)
	return ret != 0
}

// Displays enumerates display adapters attached to the desktop together with
// their current resolution and the monitor connected to each.
func (p *windowsProvider) Displays(_ context.Context) ([]Display, error) {
	if err := procEnumDisplayDevicesW.Find(); err != nil {
		return nil, fmt.Errorf("EnumDisplayDevicesW: %w", err)
	}

	var displays []Display
	for i := uint32(0); i < maxDisplayAdapters; i++ {
		var adapter displayDevice
		if !enumDisplayDevice(nil, i, &adapter) {
			break
		}
		if adapter.StateFlags&displayAttachedToDesktop == 0 {
			continue
		}

		d := Display{
			DeviceName: windows.UTF16ToString(adapter.DeviceName[:]),
			Primary:    adapter.StateFlags&displayPrimaryDevice != 0,
		}

		var dm devMode
		dm.Size = uint16(unsafe.Sizeof(dm))
		if ret, _, _ := procEnumDisplaySettingsW.Call(
			uintptr(unsafe.Pointer(&adapter.DeviceName[0])),
			uintptr(enumCurrentSettings),
			uintptr(unsafe.Pointer(&dm)),
		); ret != 0 {
			d.Resolution = fmt.Sprintf("%dx%d", dm.PelsWidth, dm.PelsHeight)
		}

		var monitor displayDevice
		if enumDisplayDevice(&adapter.DeviceName[0], 0, &monitor) {
			d.Model = windows.UTF16ToString(monitor.DeviceString[:])
			d.Manufacturer = PnPVendor(windows.UTF16ToString(monitor.DeviceID[:]))
		}

		displays = append(displays, d)
	}
	return displays, nil
}
