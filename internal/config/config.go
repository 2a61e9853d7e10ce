// Package config loads optional bib2html settings from a YAML or TOML file.
// Values from the file are defaults; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-bib2html/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxNameLength      = 255 // template file name
	MaxEntryTypeLength = 50  // "inproceedings", "techreport"
	MaxLabelLength     = 100 // CSS class list
	MaxDateLength      = 60  // literal or "auto:FORMAT"
	MaxSortLength      = 20
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-bib2html"

// Config holds file-provided defaults for a bib2html run.
type Config struct {
	Input       string            `yaml:"input" toml:"input"`             // BibTeX file
	Output      string            `yaml:"output" toml:"output"`           // empty = stdout
	Sort        string            `yaml:"sort" toml:"sort"`               // "year", "author", "title"
	Reverse     bool              `yaml:"reverse" toml:"reverse"`         // descending order
	Skip        []string          `yaml:"skip" toml:"skip"`               // entry types to exclude
	Template    string            `yaml:"template" toml:"template"`       // template file name
	TemplateDir string            `yaml:"templateDir" toml:"templateDir"` // empty = ./templates or embedded
	Date        string            `yaml:"date" toml:"date"`               // "last updated": literal, "auto", "auto:FORMAT"
	Labels      map[string]string `yaml:"labels" toml:"labels"`           // entry type -> CSS class overrides
}

// DefaultConfig returns an empty configuration; every value falls back to
// the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("input", c.Input, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("templateDir", c.TemplateDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template", c.Template, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("sort", c.Sort, MaxSortLength); err != nil {
		return err
	}
	if err := validateFieldLength("date", c.Date, MaxDateLength); err != nil {
		return err
	}

	for i, entryType := range c.Skip {
		if strings.TrimSpace(entryType) == "" {
			return fmt.Errorf("%w: skip[%d]: entry type cannot be empty", ErrInvalidConfig, i)
		}
		if err := validateFieldLength(fmt.Sprintf("skip[%d]", i), entryType, MaxEntryTypeLength); err != nil {
			return err
		}
	}

	// Sorted for a deterministic first error.
	types := make([]string, 0, len(c.Labels))
	for entryType := range c.Labels {
		types = append(types, entryType)
	}
	sort.Strings(types)
	for _, entryType := range types {
		class := c.Labels[entryType]
		if entryType == "" {
			return fmt.Errorf("%w: labels: entry type cannot be empty", ErrInvalidConfig)
		}
		if strings.TrimSpace(class) == "" {
			return fmt.Errorf("%w: labels.%s: class cannot be empty", ErrInvalidConfig, entryType)
		}
		if err := validateFieldLength("labels."+entryType, class, MaxLabelLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decode(configPath, data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml, .toml
// Tries locations in order: current directory, <user config dir>/go-bib2html/
func resolveConfigPath(name string) (string, error) {
	triedPaths := make([]string, 0, len(extensions)*2)

	// A name that already carries a known extension is looked up as is
	if isKnownExtension(filepath.Ext(name)) {
		if fileutil.FileExists(name) {
			return name, nil
		}
		triedPaths = append(triedPaths, name)
	} else {
		for _, ext := range extensions {
			localPath := name + ext
			if fileutil.FileExists(localPath) {
				return localPath, nil
			}
			triedPaths = append(triedPaths, localPath)
		}
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
