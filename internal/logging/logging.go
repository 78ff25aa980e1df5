// Package logging builds the diagnostic logger. Logging is off unless a
// directory is given; each calendar day gets its own file.
package logging

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05.000"

// ErrInvalidLevel is returned together with a working info level logger
// when Options.Level cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// unbounded keeps lumberjack from rotating the daily file.
const unbounded = math.MaxInt32

// Options configures the file logger.
type Options struct {
	Enabled    bool
	Dir        string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// FileName returns the log file for the day of t, e.g. "2024-01-15.log".
func FileName(dir string, t time.Time) string {
	return filepath.Join(dir, t.Format("2006-01-02")+".log")
}

// New returns a logger appending to the daily file in opts.Dir, and a
// function that flushes and closes it. When logging is disabled, or the
// directory cannot be created, a no-op logger is returned; in the latter
// case the error is returned too. An unknown level falls back to info and
// returns ErrInvalidLevel alongside the usable logger. MaxSizeMB of zero
// means the daily file is never rotated.
func New(opts Options) (*zap.Logger, func(), error) {
	nop := func() {}
	if !opts.Enabled {
		return zap.NewNop(), nop, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return zap.NewNop(), nop, fmt.Errorf("create log directory: %w", err)
	}

	var levelErr error
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			level = zapcore.InfoLevel
			levelErr = fmt.Errorf("%w %q, using info", ErrInvalidLevel, opts.Level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = " | "

	w := &lumberjack.Logger{
		Filename:   FileName(opts.Dir, time.Now()),
		MaxSize:    maxSizeMB(opts.MaxSizeMB),
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	if levelErr != nil {
		logger.Warn("Invalid log level, using info", zap.String("level", opts.Level))
	}

	return logger, func() {
		_ = logger.Sync()
		_ = w.Close()
	}, levelErr
}

func maxSizeMB(n int) int {
	if n <= 0 {
		return unbounded
	}
	return n
}
