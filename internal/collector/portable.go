package collector

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// portable implements the queries that gopsutil and firmware tables can
// answer on every platform.
type portable struct {
	firmware *firmware
}

func newPortable() portable {
	return portable{firmware: &firmware{}}
}

func (portable) ComputerName(_ context.Context) (string, error) {
	return os.Hostname()
}

func (portable) OSVersion(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}
	return strings.TrimSpace(info.Platform + " " + info.PlatformVersion), nil
}

func (p portable) BIOSSerialNumber(_ context.Context) (string, error) {
	s, err := p.firmware.tables()
	if err != nil {
		return "", err
	}
	return s.SystemInformation.SerialNumber, nil
}

func (portable) CPUName(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 {
		return "", fmt.Errorf("no CPU info returned")
	}
	return infos[0].ModelName, nil
}

func (portable) CPUCores(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("cpu counts: %w", err)
	}
	return n, nil
}

func (p portable) Motherboard(_ context.Context) (Motherboard, error) {
	s, err := p.firmware.tables()
	if err != nil {
		return Motherboard{}, err
	}
	return Motherboard{
		Manufacturer: s.BaseboardInformation.Manufacturer,
		Product:      s.BaseboardInformation.Product,
		SerialNumber: s.BaseboardInformation.SerialNumber,
	}, nil
}

func (p portable) System(_ context.Context) (SystemInfo, error) {
	s, err := p.firmware.tables()
	if err != nil {
		return SystemInfo{}, err
	}
	return SystemInfo{
		Manufacturer: s.SystemInformation.Manufacturer,
		Model:        s.SystemInformation.ProductName,
		SerialNumber: s.SystemInformation.SerialNumber,
		UUID:         s.SystemInformation.UUID,
	}, nil
}

func (portable) Architecture(_ context.Context) (string, error) {
	arch, err := host.KernelArch()
	if err != nil {
		return "", fmt.Errorf("kernel arch: %w", err)
	}
	return architectureName(arch), nil
}

func (portable) LastBootUpTime(ctx context.Context) (string, error) {
	bt, err := host.BootTimeWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("boot time: %w", err)
	}
	return EncodeWMIDate(time.Unix(int64(bt), 0)), nil
}

// Endpoints returns the first IPv4 address and MAC of every interface that
// is up and not a loopback.
func (portable) Endpoints(ctx context.Context) ([]Endpoint, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("interfaces: %w", err)
	}
	return endpointsFrom(ifaces), nil
}

func endpointsFrom(ifaces []psnet.InterfaceStat) []Endpoint {
	var eps []Endpoint
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			ip, _, err := net.ParseCIDR(a.Addr)
			if err != nil {
				ip = net.ParseIP(a.Addr)
			}
			if ip == nil || ip.To4() == nil {
				continue
			}
			eps = append(eps, Endpoint{IP: ip.String(), MAC: FormatMAC(iface.HardwareAddr)})
			break
		}
	}
	return eps
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func (portable) UserName(_ context.Context) (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}
	return stripDomain(u.Username), nil
}

// stripDomain turns `DOMAIN\user` into `user`.
func stripDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Drives returns every mounted volume whose usage can be read.
func (portable) Drives(ctx context.Context) ([]Drive, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("partitions: %w", err)
	}

	var drives []Drive
	for _, part := range parts {
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		drives = append(drives, Drive{
			Name:       driveName(part.Mountpoint),
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	return drives, nil
}

func (portable) TotalRAMBytes(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}
	return vm.Total, nil
}
