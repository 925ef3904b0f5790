// Package decode turns JSON and YAML text into tree values.
//
// Both decoders keep the document order of object keys.
package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jacoelho/pick/internal/tree"
)

var (
	// ErrDecode indicates input that is not a well-formed document.
	ErrDecode = errors.New("decode error")

	// ErrUnknownFormat indicates an unsupported input format name.
	ErrUnknownFormat = errors.New("unknown input format")
)

// Format names a document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode decodes data written in format.
func Decode(format Format, data []byte) (tree.Value, error) {
	switch format {
	case FormatJSON:
		return JSON(data)
	case FormatYAML:
		return YAML(data)
	default:
		return tree.Value{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
