package collector

import (
	"context"
	"fmt"
	"strings"
)

type win32BIOS struct {
	SerialNumber string
}

type win32BaseBoard struct {
	Manufacturer string
	Product      string
	SerialNumber string
}

type win32ComputerSystem struct {
	Manufacturer string
	Model        string
}

type win32ComputerSystemProduct struct {
	UUID string
}

type win32OperatingSystem struct {
	LastBootUpTime string
}

type win32VideoController struct {
	Name string
}

// BIOSSerialNumber queries Win32_BIOS, falling back to the SMBIOS system
// serial number.
func (p *windowsProvider) BIOSSerialNumber(ctx context.Context) (string, error) {
	var bios []win32BIOS
	err := p.query("SELECT SerialNumber FROM Win32_BIOS", &bios)
	if err == nil && len(bios) > 0 && strings.TrimSpace(bios[0].SerialNumber) != "" {
		return strings.TrimSpace(bios[0].SerialNumber), nil
	}
	if s, ferr := p.portable.BIOSSerialNumber(ctx); ferr == nil {
		return s, nil
	}
	if err == nil {
		err = fmt.Errorf("no Win32_BIOS serial number")
	}
	return "", err
}

// Motherboard queries Win32_BaseBoard, falling back to SMBIOS type 2.
func (p *windowsProvider) Motherboard(ctx context.Context) (Motherboard, error) {
	var boards []win32BaseBoard
	err := p.query("SELECT Manufacturer, Product, SerialNumber FROM Win32_BaseBoard", &boards)
	if err == nil && len(boards) > 0 {
		b := boards[0]
		return Motherboard{
			Manufacturer: strings.TrimSpace(b.Manufacturer),
			Product:      strings.TrimSpace(b.Product),
			SerialNumber: strings.TrimSpace(b.SerialNumber),
		}, nil
	}
	if mb, ferr := p.portable.Motherboard(ctx); ferr == nil {
		return mb, nil
	}
	if err == nil {
		err = fmt.Errorf("no Win32_BaseBoard instances")
	}
	return Motherboard{}, err
}

// System queries Win32_ComputerSystem, Win32_ComputerSystemProduct and
// Win32_BIOS for manufacturer, model, serial number and UUID. SMBIOS type 1
// fills in whatever WMI could not provide.
func (p *windowsProvider) System(ctx context.Context) (SystemInfo, error) {
	var info SystemInfo

	var cs []win32ComputerSystem
	csErr := p.query("SELECT Manufacturer, Model FROM Win32_ComputerSystem", &cs)
	if csErr == nil && len(cs) > 0 {
		info.Manufacturer = strings.TrimSpace(cs[0].Manufacturer)
		info.Model = strings.TrimSpace(cs[0].Model)
	}

	var prod []win32ComputerSystemProduct
	if err := p.query("SELECT UUID FROM Win32_ComputerSystemProduct", &prod); err == nil && len(prod) > 0 {
		info.UUID = strings.TrimSpace(prod[0].UUID)
	}

	var bios []win32BIOS
	if err := p.query("SELECT SerialNumber FROM Win32_BIOS", &bios); err == nil && len(bios) > 0 {
		info.SerialNumber = strings.TrimSpace(bios[0].SerialNumber)
	}

	if info.Manufacturer == "" || info.Model == "" || info.SerialNumber == "" || info.UUID == "" {
		fw, err := p.portable.System(ctx)
		if err == nil {
			info = fillSystem(info, fw)
		} else if csErr != nil {
			return info, csErr
		}
	}
	return info, nil
}

func fillSystem(info, fw SystemInfo) SystemInfo {
	if info.Manufacturer == "" {
		info.Manufacturer = fw.Manufacturer
	}
	if info.Model == "" {
		info.Model = fw.Model
	}
	if info.SerialNumber == "" {
		info.SerialNumber = fw.SerialNumber
	}
	if info.UUID == "" {
		info.UUID = fw.UUID
	}
	return info
}

// GPU returns the name of the first video controller.
func (p *windowsProvider) GPU(_ context.Context) (string, error) {
	var vcs []win32VideoController
	if err := p.query("SELECT Name FROM Win32_VideoController", &vcs); err != nil {
		return "", err
	}
	for _, vc := range vcs {
		if name := strings.TrimSpace(vc.Name); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("no Win32_VideoController instances")
}

// LastBootUpTime returns Win32_OperatingSystem.LastBootUpTime unparsed.
func (p *windowsProvider) LastBootUpTime(_ context.Context) (string, error) {
	var oss []win32OperatingSystem
	if err := p.query("SELECT LastBootUpTime FROM Win32_OperatingSystem", &oss); err != nil {
		return "", err
	}
	if len(oss) == 0 {
		return "", fmt.Errorf("no Win32_OperatingSystem instances")
	}
	return oss[0].LastBootUpTime, nil
}
