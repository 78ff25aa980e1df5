package collector_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-tangra/go-tangra-computerinfo/internal/collector"
	"github.com/go-tangra/go-tangra-computerinfo/internal/collector/collectortest"
)

var allFields = []string{
	"CpuId", "ComputerName", "OSVersion", "BIOSSerialNumber", "Cpu", "CpuCoreNumbers",
	"Motherboard", "System", "Gpu", "SystemArchitecture", "LastBootUpTime", "Network",
	"UserName", "InstalledSoftware", "Drives", "TotalRAM", "Memory", "Displays",
}

func fixedClock(t *testing.T) {
	t.Helper()
	restore := collector.SetNow(func() time.Time {
		return time.Date(2024, 3, 5, 7, 8, 9, 0, time.Local)
	})
	t.Cleanup(restore)
}

func TestCollect(t *testing.T) {
	fixedClock(t)
	stub := collectortest.New()

	rec, err := collector.Collect(context.Background(), stub, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "BFEBFBFF000906EA", rec.CpuID)
	assert.Equal(t, "WS-0042", rec.ComputerName)
	assert.Equal(t, 8, rec.CPUCoreNumbers)
	assert.Equal(t, collector.Motherboard{Manufacturer: "HP", Product: "8767", SerialNumber: "PGXYZ0001"}, rec.Motherboard)
	assert.Equal(t, "2024/01/15 10:30:00", rec.LastBootUpTime)
	assert.Equal(t, []string{"192.168.1.20"}, rec.IPAddress)
	assert.Equal(t, []string{"00-1A-2B-3C-4D-5E"}, rec.MACAddress)
	assert.Equal(t, []string{`C:\`, `D:\`}, rec.DriveName)
	assert.Equal(t, []float64{256, 1024}, rec.DriveMemory)
	assert.Equal(t, []float64{100, 1.5}, rec.DriveAvailableMemory)
	assert.Equal(t, "16.00GB", rec.TotalRAM)
	assert.Equal(t, 2, rec.Memory.ModuleCount)
	assert.Equal(t, 16.0, rec.Memory.TotalCapacityGB)
	assert.Equal(t, []string{"DDR4"}, rec.Memory.Types)
	assert.Len(t, rec.Displays, 1)
	assert.Equal(t, "2024/03/05 07:08:09", rec.UploadTime)

	for _, f := range allFields {
		assert.Equal(t, 1, stub.Calls(f), "field %s must be queried exactly once", f)
	}
}

func TestCollectSentinels(t *testing.T) {
	fixedClock(t)
	stub := collectortest.New()
	for _, f := range allFields {
		stub.Fail[f] = collectortest.ErrUnavailable
	}

	rec, err := collector.Collect(context.Background(), stub, zap.NewNop())
	require.Error(t, err)
	require.NotNil(t, rec)

	want := &collector.Record{
		CpuID:            collector.SentinelNull,
		ComputerName:     collector.SentinelNull,
		OSVersion:        collector.SentinelNull,
		BIOSSerialNumber: collector.SentinelNull,
		CPU:              collector.SentinelNull,
		CPUCoreNumbers:   collector.SentinelCount,
		Motherboard: collector.Motherboard{
			Manufacturer: collector.SentinelNull,
			Product:      collector.SentinelNull,
			SerialNumber: collector.SentinelNull,
		},
		System: collector.SystemInfo{
			Manufacturer: collector.SentinelNull,
			Model:        collector.SentinelNull,
			SerialNumber: collector.SentinelNull,
			UUID:         collector.SentinelNull,
		},
		GPU:                  collector.SentinelNull,
		SystemArchitecture:   collector.SentinelNull,
		LastBootUpTime:       collector.SentinelUnknown,
		IPAddress:            []string{},
		MACAddress:           []string{},
		UserName:             collector.SentinelNull,
		InstalledSoftware:    []string{},
		DriveName:            []string{},
		DriveMemory:          []float64{},
		DriveAvailableMemory: []float64{},
		TotalRAM:             collector.SentinelRAM,
		Memory: collector.MemoryInfo{
			Types:   []string{},
			Modules: []collector.MemoryModule{},
		},
		Displays:   []collector.Display{},
		UploadTime: "2024/03/05 07:08:09",
	}
	assert.Equal(t, want, rec)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, len(allFields))
	assert.ErrorIs(t, err, collectortest.ErrUnavailable)
}

func TestCollectSingleFieldFailure(t *testing.T) {
	for _, field := range allFields {
		t.Run(field, func(t *testing.T) {
			stub := collectortest.New()
			stub.Fail[field] = collectortest.ErrUnavailable

			rec, err := collector.Collect(context.Background(), stub, zap.NewNop())
			require.NotNil(t, rec)

			var merr *multierror.Error
			require.True(t, errors.As(err, &merr))
			require.Len(t, merr.Errors, 1)

			var fe *collector.FieldError
			require.True(t, errors.As(merr.Errors[0], &fe))
			assert.Equal(t, field, fe.Field)
			assert.False(t, fe.Unsupported())

			// Untouched fields keep their values.
			if field != "ComputerName" {
				assert.Equal(t, "WS-0042", rec.ComputerName)
			}
			if field != "TotalRAM" {
				assert.Equal(t, "16.00GB", rec.TotalRAM)
			}
		})
	}
}

func TestCollectUnsupported(t *testing.T) {
	stub := collectortest.New()
	stub.Fail["InstalledSoftware"] = fmt.Errorf("installed software on linux: %w", collector.ErrUnsupported)
	stub.Fail["Gpu"] = errors.New("wmi timeout")

	core, logs := observer.New(zap.DebugLevel)
	rec, err := collector.Collect(context.Background(), stub, zap.New(core))
	require.Error(t, err)
	assert.ErrorIs(t, err, collector.ErrUnsupported)
	assert.Equal(t, []string{}, rec.InstalledSoftware)
	assert.Equal(t, collector.SentinelNull, rec.GPU)

	merr := err.(*multierror.Error)
	require.Len(t, merr.Errors, 2)
	for _, e := range merr.Errors {
		fe := e.(*collector.FieldError)
		switch fe.Field {
		case "InstalledSoftware":
			assert.True(t, fe.Unsupported())
		case "Gpu":
			assert.False(t, fe.Unsupported())
		default:
			t.Fatalf("unexpected field %s", fe.Field)
		}
	}

	assert.Equal(t, 1, logs.FilterMessage("Field query failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("Field not supported").Len())
	assert.Equal(t, zap.WarnLevel, logs.FilterMessage("Field query failed").All()[0].Level)
}

func TestCollectRecoversPanics(t *testing.T) {
	stub := collectortest.New()
	stub.Panic["Displays"] = true

	rec, err := collector.Collect(context.Background(), stub, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Equal(t, []collector.Display{}, rec.Displays)
	assert.Equal(t, "WS-0042", rec.ComputerName)
	assert.Equal(t, "16.00GB", rec.TotalRAM)
}

func TestCollectBlankValuesBecomeNull(t *testing.T) {
	stub := collectortest.New()
	stub.Values.GPU = "  "
	stub.Values.Motherboard.SerialNumber = ""
	stub.Values.LastBootUpTime = "garbage"

	rec, err := collector.Collect(context.Background(), stub, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, collector.SentinelNull, rec.GPU)
	assert.Equal(t, collector.SentinelNull, rec.Motherboard.SerialNumber)
	assert.Equal(t, "HP", rec.Motherboard.Manufacturer)
	assert.Equal(t, collector.SentinelInvalid, rec.LastBootUpTime)
}
