package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fileutil"
	"github.com/LorhanBezerra/gerador-cartazes/internal/yamlutil"
)

// AppDir is the directory name used under the user config directory.
const AppDir = "gerador-cartazes"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength   = 4096
	MaxPrefixLength = 10 // "R$ ", "US$ "
	MaxFontEntries  = 32
)

// Row error policies and page orders accepted in batch.onError / batch.order.
const (
	OnErrorAbort  = "abort"
	OnErrorSkip   = "skip"
	OrderFilename = "filename"
	OrderRows     = "rows"
)

// Config holds all configuration for a batch run.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Fonts    FontsConfig    `yaml:"fonts"`
	Currency CurrencyConfig `yaml:"currency"`
	Batch    BatchConfig    `yaml:"batch"`
}

// OutputConfig defines where tags are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // Output directory for tags and the combined PDF
	Archive bool   `yaml:"archive"` // Also write cartazes_individuais.zip
}

// FontsConfig adds font candidates searched before the platform defaults.
type FontsConfig struct {
	Dirs    []string `yaml:"dirs"`    // Directories holding the regular/bold files
	Regular []string `yaml:"regular"` // Explicit regular-weight files
	Bold    []string `yaml:"bold"`    // Explicit bold-weight files
}

// CurrencyConfig defines price presentation.
type CurrencyConfig struct {
	Prefix string `yaml:"prefix"` // e.g. "R$ " (default: none)
}

// BatchConfig defines failure and ordering policy.
type BatchConfig struct {
	OnError string `yaml:"onError"` // "abort" (default) or "skip"
	Order   string `yaml:"order"`   // "filename" (default) or "rows"
}

// Validate checks enum values and field lengths. Called by LoadConfig, but
// also available to callers that build a Config from flags or env.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("currency.prefix", c.Currency.Prefix, MaxPrefixLength); err != nil {
		return err
	}

	lists := []struct {
		name  string
		items []string
	}{
		{"fonts.dirs", c.Fonts.Dirs},
		{"fonts.regular", c.Fonts.Regular},
		{"fonts.bold", c.Fonts.Bold},
	}
	for _, l := range lists {
		if len(l.items) > MaxFontEntries {
			return fmt.Errorf("%w: %s (%d entries, max %d)", ErrFieldTooLong, l.name, len(l.items), MaxFontEntries)
		}
		for i, item := range l.items {
			if err := validateFieldLength(fmt.Sprintf("%s[%d]", l.name, i), item, MaxPathLength); err != nil {
				return err
			}
		}
	}

	switch strings.ToLower(c.Batch.OnError) {
	case "", OnErrorAbort, OnErrorSkip:
	default:
		return fmt.Errorf("%w: batch.onError %q (must be abort or skip)", ErrInvalidValue, c.Batch.OnError)
	}
	switch strings.ToLower(c.Batch.Order) {
	case "", OrderFilename, OrderRows:
	default:
		return fmt.Errorf("%w: batch.order %q (must be filename or rows)", ErrInvalidValue, c.Batch.Order)
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

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: "cartazes_prontos"},
		Batch:  BatchConfig{OnError: OnErrorAbort, Order: OrderFilename},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Values missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.As(err, &pathErr):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CandidatePaths lists, in search order, where a config name is looked up:
// the current directory, then the user config directory.
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in CandidatePaths order.
func resolveConfigPath(name string) (string, error) {
	tried := CandidatePaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
