package fileutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrUnsupportedFormat is returned for encodings other than json and yaml
var ErrUnsupportedFormat = errors.New("unsupported format")

// Encode marshals v as indented JSON or as YAML
func Encode(format string, v any) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatFromPath guesses the encoding from a file extension, falling back
// to the given default
func FormatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return fallback
	}
}

// WriteEncoded encodes v and writes it atomically to filename
func WriteEncoded(filename, format string, v any) error {
	data, err := Encode(format, v)
	if err != nil {
		return err
	}
	return WriteFileAtomic(filename, data, 0644)
}
