// Package output holds the console and file sinks for a serialized record.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDisabled is returned by FileSink.Write when the sink is off.
var ErrDisabled = errors.New("file output disabled")

// Console writes the pretty printed document to w under a header line.
func Console(w io.Writer, doc []byte) error {
	if _, err := fmt.Fprintf(w, "Computer info JSON:\n\n%s\n", doc); err != nil {
		return fmt.Errorf("write console: %w", err)
	}
	return nil
}

// FileSink writes the document to Name inside Dir.
type FileSink struct {
	Enabled bool
	Dir     string
	Name    string
}

// Write creates Dir when needed, writes doc to the sink's file and returns
// the absolute path written. A disabled sink writes nothing and returns
// ErrDisabled.
func (s FileSink) Write(doc []byte) (string, error) {
	if !s.Enabled {
		return "", ErrDisabled
	}
	if s.Name == "" {
		return "", fmt.Errorf("file output: empty file name")
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(s.Dir, s.Name))
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return path, nil
}
