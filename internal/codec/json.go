// Package codec encodes inventory records as JSON.
package codec

import (
	"bytes"
	"encoding/json"
)

// Style selects the JSON layout.
type Style int

const (
	// Compact emits the document on a single line.
	Compact Style = iota
	// Pretty indents nested values by two spaces.
	Pretty
)

// Marshal encodes v as JSON. Field order follows the struct declaration.
// HTML characters and non-ASCII text are written as is rather than escaped,
// and no trailing newline is emitted.
func Marshal(v any, style Style) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if style == Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
