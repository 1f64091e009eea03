// Package yamlutil wraps YAML decoding for the config and layout loaders.
// Callers never import the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML documents (default 256KB). Config files and layout
// descriptors are a few hundred bytes; anything near this limit is a mistake.
var MaxInputSize = 256 << 10

var (
	ErrEmptyDocument = errors.New("yamlutil: empty document")
	ErrNilTarget     = errors.New("yamlutil: nil target pointer")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

func checkInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects keys that do not map to a field.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadFileStrict reads path and decodes it with UnmarshalStrict.
// Read errors wrap the *fs.PathError so callers can test fs.ErrNotExist.
func ReadFileStrict(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the operator
	if err != nil {
		return fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return UnmarshalStrict(data, v)
}
