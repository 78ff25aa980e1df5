package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 1, 15, 23, 59, 0, 0, time.Local)
	assert.Equal(t, filepath.Join("logs", "2024-01-15.log"), FileName("logs", ts))
}

func TestNewDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Logs")

	logger, closeFn, err := New(Options{Enabled: false, Dir: dir})
	require.NoError(t, err)
	logger.Info("dropped")
	closeFn()

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestNewWritesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Logs")

	logger, closeFn, err := New(Options{Enabled: true, Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	logger.Info("Program start.")
	logger.Warn("WMI not running", zap.String("service", "winmgmt"))
	logger.Debug("below level")
	closeFn()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".log"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "INFO | ")
	assert.Contains(t, text, "Program start.")
	assert.Contains(t, text, "WARN | ")
	assert.Contains(t, text, `"service": "winmgmt"`)
	assert.NotContains(t, text, "below level")
}

func TestNewAppends(t *testing.T) {
	dir := t.TempDir()
	for _, msg := range []string{"first run", "second run"} {
		logger, closeFn, err := New(Options{Enabled: true, Dir: dir})
		require.NoError(t, err)
		logger.Info(msg)
		closeFn()
	}

	data, err := os.ReadFile(FileName(dir, time.Now()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNewBadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	logger, closeFn, err := New(Options{Enabled: true, Dir: filepath.Join(file, "Logs")})
	require.Error(t, err)
	require.NotNil(t, logger)
	logger.Info("still safe")
	closeFn()
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(Options{Enabled: true, Dir: dir, Level: "loud"})
	require.ErrorIs(t, err, ErrInvalidLevel)
	logger.Info("still logging")
	logger.Debug("below info")
	closeFn()

	data, err := os.ReadFile(FileName(dir, time.Now()))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Invalid log level, using info")
	assert.Contains(t, text, "still logging")
	assert.NotContains(t, text, "below info")
}

func TestMaxSizeMB(t *testing.T) {
	assert.Equal(t, unbounded, maxSizeMB(0))
	assert.Equal(t, unbounded, maxSizeMB(-5))
	assert.Equal(t, 25, maxSizeMB(25))
}

func TestNewDoesNotRotateByDefault(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(Options{Enabled: true, Dir: dir})
	require.NoError(t, err)
	line := strings.Repeat("x", 64*1024)
	for range 20 {
		logger.Info(line)
	}
	closeFn()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(FileName(dir, time.Now())), entries[0].Name())
}
