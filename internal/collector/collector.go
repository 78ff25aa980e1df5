package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// now is replaced in tests.
var now = time.Now

// FieldError reports a field that was degraded to its sentinel value.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

// Unsupported reports whether the field does not exist on this platform, as
// opposed to a failed query.
func (e *FieldError) Unsupported() bool { return errors.Is(e.Err, ErrUnsupported) }

type assembler struct {
	ctx    context.Context
	logger *zap.Logger
	errs   *multierror.Error
}

// query runs fn once and returns its value, or sentinel when fn fails or
// panics.
func query[T any](a *assembler, field string, sentinel T, fn func(context.Context) (T, error)) (v T) {
	defer func() {
		if r := recover(); r != nil {
			a.fail(field, fmt.Errorf("panic: %v", r))
			v = sentinel
		}
	}()

	v, err := fn(a.ctx)
	if err != nil {
		a.fail(field, err)
		return sentinel
	}
	return v
}

func (a *assembler) fail(field string, err error) {
	fe := &FieldError{Field: field, Err: err}
	if fe.Unsupported() {
		a.logger.Debug("Field not supported", zap.String("field", field))
	} else {
		a.logger.Warn("Field query failed", zap.String("field", field), zap.Error(err))
	}
	a.errs = multierror.Append(a.errs, fe)
}

// Collect gathers a full inventory of the local host from p. Every field is
// queried exactly once in record order. A failed field is set to its
// sentinel and reported in the returned error; the record is never nil.
func Collect(ctx context.Context, p Provider, logger *zap.Logger) (*Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &assembler{ctx: ctx, logger: logger}
	rec := &Record{}

	rec.CpuID = orNull(query(a, "CpuId", "", p.CPUID))
	rec.ComputerName = orNull(query(a, "ComputerName", "", p.ComputerName))
	rec.OSVersion = orNull(query(a, "OSVersion", "", p.OSVersion))
	rec.BIOSSerialNumber = orNull(query(a, "BIOSSerialNumber", "", p.BIOSSerialNumber))
	rec.CPU = orNull(query(a, "Cpu", "", p.CPUName))
	rec.CPUCoreNumbers = query(a, "CpuCoreNumbers", SentinelCount, p.CPUCores)

	mb := query(a, "Motherboard", Motherboard{}, p.Motherboard)
	rec.Motherboard = Motherboard{
		Manufacturer: orNull(mb.Manufacturer),
		Product:      orNull(mb.Product),
		SerialNumber: orNull(mb.SerialNumber),
	}

	sys := query(a, "System", SystemInfo{}, p.System)
	rec.System = SystemInfo{
		Manufacturer: orNull(sys.Manufacturer),
		Model:        orNull(sys.Model),
		SerialNumber: orNull(sys.SerialNumber),
		UUID:         orNull(sys.UUID),
	}

	rec.GPU = orNull(query(a, "Gpu", "", p.GPU))
	rec.SystemArchitecture = orNull(query(a, "SystemArchitecture", "", p.Architecture))
	rec.LastBootUpTime = FormatWMIDate(query(a, "LastBootUpTime", "", p.LastBootUpTime))

	rec.IPAddress, rec.MACAddress = []string{}, []string{}
	for _, ep := range query(a, "Network", nil, p.Endpoints) {
		rec.IPAddress = append(rec.IPAddress, ep.IP)
		rec.MACAddress = append(rec.MACAddress, ep.MAC)
	}

	rec.UserName = orNull(query(a, "UserName", "", p.UserName))

	rec.InstalledSoftware = query(a, "InstalledSoftware", nil, p.InstalledSoftware)
	if rec.InstalledSoftware == nil {
		rec.InstalledSoftware = []string{}
	}

	rec.DriveName, rec.DriveMemory, rec.DriveAvailableMemory = []string{}, []float64{}, []float64{}
	for _, d := range query(a, "Drives", nil, p.Drives) {
		rec.DriveName = append(rec.DriveName, d.Name)
		rec.DriveMemory = append(rec.DriveMemory, BytesToGiB(d.TotalBytes))
		rec.DriveAvailableMemory = append(rec.DriveAvailableMemory, BytesToGiB(d.FreeBytes))
	}

	rec.TotalRAM = SentinelRAM
	if total := query(a, "TotalRAM", 0, p.TotalRAMBytes); total > 0 {
		rec.TotalRAM = FormatTotalRAM(total)
	}

	rec.Memory = Summarize(query(a, "Memory", nil, p.MemoryModules))

	rec.Displays = query(a, "Displays", nil, p.Displays)
	if rec.Displays == nil {
		rec.Displays = []Display{}
	}

	rec.UploadTime = now().Format(timeLayout)

	return rec, a.errs.ErrorOrNil()
}
