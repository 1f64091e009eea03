package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/LorhanBezerra/gerador-cartazes/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string   // CARTAZES_CONFIG: config file name or path
	OutputDir      string   // CARTAZES_OUTPUT_DIR: output directory
	FontDirs       []string // CARTAZES_FONT_DIRS: font directories, os.PathListSeparator-separated
	CurrencyPrefix string   // CARTAZES_CURRENCY_PREFIX: prefix for prices, e.g. "R$ "
	OnError        string   // CARTAZES_ON_ERROR: abort or skip
	Order          string   // CARTAZES_ORDER: filename or rows
}

// knownEnvVars lists valid CARTAZES_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CARTAZES_CONFIG":          true,
	"CARTAZES_OUTPUT_DIR":      true,
	"CARTAZES_FONT_DIRS":       true,
	"CARTAZES_CURRENCY_PREFIX": true,
	"CARTAZES_ON_ERROR":        true,
	"CARTAZES_ORDER":           true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("CARTAZES_CONFIG"),
		OutputDir:      getenv("CARTAZES_OUTPUT_DIR"),
		CurrencyPrefix: getenv("CARTAZES_CURRENCY_PREFIX"),
		OnError:        getenv("CARTAZES_ON_ERROR"),
		Order:          getenv("CARTAZES_ORDER"),
	}

	for _, dir := range filepath.SplitList(getenv("CARTAZES_FONT_DIRS")) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.FontDirs = append(cfg.FontDirs, dir)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CARTAZES_* variables.
// Helps catch typos like CARTAZES_OUTPUT instead of CARTAZES_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, "CARTAZES_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment variables that
// are set. Flags are applied afterwards by mergeFlags, so the precedence is:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if len(env.FontDirs) > 0 {
		cfg.Fonts.Dirs = env.FontDirs
	}
	if env.CurrencyPrefix != "" {
		cfg.Currency.Prefix = env.CurrencyPrefix
	}
	if env.OnError != "" {
		cfg.Batch.OnError = env.OnError
	}
	if env.Order != "" {
		cfg.Batch.Order = env.Order
	}
}
