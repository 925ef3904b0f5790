// Package output renders query results.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/pick/internal/tree"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format represents the output format for results.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat accepts "json", "yaml"/"yml" and "text", case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options tunes rendering.
type Options struct {
	// Compact disables JSON indentation.
	Compact bool
}

// Encode writes v to w in format, followed by a newline.
func Encode(w io.Writer, v tree.Value, format Format, opts Options) error {
	var (
		payload []byte
		err     error
	)

	switch format {
	case FormatJSON:
		payload, err = EncodeJSON(v, opts.Compact)
	case FormatYAML:
		payload, err = EncodeYAML(v)
	case FormatText:
		payload = EncodeText(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		payload = append(payload, '\n')
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
