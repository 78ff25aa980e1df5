// Package app runs one inventory pass: collect, serialize, then emit to the
// enabled sinks.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/go-tangra/go-tangra-computerinfo/internal/codec"
	"github.com/go-tangra/go-tangra-computerinfo/internal/collector"
	"github.com/go-tangra/go-tangra-computerinfo/internal/config"
	"github.com/go-tangra/go-tangra-computerinfo/internal/logging"
	"github.com/go-tangra/go-tangra-computerinfo/internal/output"
	"github.com/go-tangra/go-tangra-computerinfo/internal/sender"
	"github.com/go-tangra/go-tangra-computerinfo/internal/winsvc"
)

// EnsureFunc makes sure a service is running before collection.
type EnsureFunc func(ctx context.Context, name string, timeout time.Duration) (winsvc.State, error)

// App holds everything a run needs. Zero fields get platform defaults.
type App struct {
	Config   *config.Config
	Options  config.Options
	Provider collector.Provider
	Stdout   io.Writer
	Ensure   EnsureFunc
}

// Run performs a single inventory pass. It never fails: problems are printed,
// logged and the remaining steps still run.
func (a *App) Run(ctx context.Context) {
	a.defaults()

	logger, closeLog, err := logging.New(logging.Options{
		Enabled:    a.Options.DebugEnabled,
		Dir:        a.Options.LogDir,
		Level:      a.Config.Log.Level,
		MaxSizeMB:  a.Config.Log.MaxSizeMB,
		MaxBackups: a.Config.Log.MaxBackups,
	})
	switch {
	case errors.Is(err, logging.ErrInvalidLevel):
		fmt.Fprintf(a.Stdout, "[Debug] Warning: %v\n", err)
		fmt.Fprintf(a.Stdout, "[Debug] Logging enabled to: %s\n", a.Options.LogDir)
	case err != nil:
		fmt.Fprintf(a.Stdout, "[Debug] Logging disabled: %v\n", err)
	case a.Options.DebugEnabled:
		fmt.Fprintf(a.Stdout, "[Debug] Logging enabled to: %s\n", a.Options.LogDir)
	}
	defer closeLog()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure", zap.Any("panic", r))
			fmt.Fprintf(a.Stdout, "Unexpected error: %v\n", r)
		}
	}()

	if a.Options.JSONEnabled {
		fmt.Fprintf(a.Stdout, "[JSON] Output enabled. Directory: %s\n", a.Options.JSONDir)
	}

	logger.Info("Program started")
	a.run(ctx, logger)
	logger.Info("Program finished")
}

func (a *App) defaults() {
	if a.Config == nil {
		a.Config = config.Default()
	}
	if a.Provider == nil {
		a.Provider = collector.NewProvider()
	}
	if a.Stdout == nil {
		a.Stdout = os.Stdout
	}
	if a.Ensure == nil {
		a.Ensure = winsvc.EnsureRunning
	}
}

func (a *App) run(ctx context.Context, logger *zap.Logger) {
	if a.Config.WMI.EnsureService {
		a.ensureService(ctx, logger)
	}

	rec, err := collector.Collect(ctx, a.Provider, logger)
	var merr *multierror.Error
	if errors.As(err, &merr) {
		logger.Warn("Inventory incomplete", zap.Int("failed_fields", len(merr.Errors)))
	}

	doc, err := codec.Marshal(rec, codec.Pretty)
	if err != nil {
		logger.Error("Failed to serialize inventory", zap.Error(err))
		fmt.Fprintf(a.Stdout, "Failed to serialize inventory: %v\n", err)
		return
	}
	logger.Info("Inventory serialized", zap.Int("bytes", len(doc)))

	if err := output.Console(a.Stdout, doc); err != nil {
		logger.Error("Console output failed", zap.Error(err))
	}

	a.writeFile(doc, logger)

	if a.Config.Upload.URL != "" {
		a.upload(ctx, rec, logger)
	}
}

func (a *App) ensureService(ctx context.Context, logger *zap.Logger) {
	name := a.Config.WMI.ServiceName
	state, err := a.Ensure(ctx, name, a.Config.WMI.StartTimeout)
	switch {
	case errors.Is(err, winsvc.ErrUnsupported):
		logger.Debug("Service check skipped", zap.String("service", name))
	case err != nil:
		logger.Error("Service check failed", zap.String("service", name), zap.Error(err))
	case state == winsvc.AlreadyRunning || state == winsvc.Started:
		logger.Info("Service running", zap.String("service", name), zap.Stringer("state", state))
	default:
		logger.Warn("Service not running", zap.String("service", name), zap.Stringer("state", state))
	}
}

func (a *App) writeFile(doc []byte, logger *zap.Logger) {
	sink := output.FileSink{
		Enabled: a.Options.JSONEnabled,
		Dir:     a.Options.JSONDir,
		Name:    a.Config.Output.FileName,
	}
	path, err := sink.Write(doc)
	switch {
	case errors.Is(err, output.ErrDisabled):
	case err != nil:
		logger.Error("Failed to write JSON file", zap.Error(err))
		fmt.Fprintf(a.Stdout, "[JSON] Failed to write file: %v\n", err)
	default:
		logger.Info("JSON file written", zap.String("path", path))
		fmt.Fprintf(a.Stdout, "[JSON] Saved to: %s\n", path)
	}
}

func (a *App) upload(ctx context.Context, rec *collector.Record, logger *zap.Logger) {
	s := sender.New(a.Config.Upload.URL, a.Config.Upload.Timeout)
	res, err := s.Send(ctx, rec)
	if err != nil {
		logger.Error("API upload failed", zap.String("url", a.Config.Upload.URL), zap.Error(err))
		fmt.Fprintf(a.Stdout, "API upload failed: %v\n", err)
		return
	}
	logger.Info("API response",
		zap.String("request_id", res.RequestID),
		zap.Int("status_code", res.StatusCode),
	)
	fmt.Fprintf(a.Stdout, "API Response: %s\n", res.Status)
}
