package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// MaxInputSize limits config input to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput        = errors.New("config: empty input")
	ErrInputTooLarge     = errors.New("config: input exceeds maximum size")
	ErrUnsupportedFormat = errors.New("config: unsupported file extension")
)

// extensions lists supported config extensions in lookup order.
var extensions = []string{".yaml", ".yml", ".toml"}

func isKnownExtension(ext string) bool {
	for _, known := range extensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

// decode picks the decoder from the file extension. Unknown keys are
// rejected by both decoders.
func decode(path string, data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data, cfg)
	case ".toml":
		return decodeTOML(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decodeYAML(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("toml: %w", err)
	}
	return nil
}
