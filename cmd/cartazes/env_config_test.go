package main

// Notes:
// - loadEnvConfig: we test every CARTAZES_* variable through an injected
//   lookup, so tests run in parallel without t.Setenv.
// - applyEnvConfig: we test that set variables override config values and
//   unset ones leave them alone.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/LorhanBezerra/gerador-cartazes/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	fontDirs := strings.Join([]string{"/fonts/a", " ", "/fonts/b"}, string(filepath.ListSeparator))
	cfg := loadEnvConfig(mapGetenv(map[string]string{
		"CARTAZES_CONFIG":          "loja",
		"CARTAZES_OUTPUT_DIR":      "/saida",
		"CARTAZES_FONT_DIRS":       fontDirs,
		"CARTAZES_CURRENCY_PREFIX": "R$ ",
		"CARTAZES_ON_ERROR":        "skip",
		"CARTAZES_ORDER":           "rows",
	}))

	if cfg.ConfigPath != "loja" {
		t.Errorf("ConfigPath = %q, want loja", cfg.ConfigPath)
	}
	if cfg.OutputDir != "/saida" {
		t.Errorf("OutputDir = %q, want /saida", cfg.OutputDir)
	}
	if want := []string{"/fonts/a", "/fonts/b"}; !slices.Equal(cfg.FontDirs, want) {
		t.Errorf("FontDirs = %v, want %v", cfg.FontDirs, want)
	}
	if cfg.CurrencyPrefix != "R$ " {
		t.Errorf("CurrencyPrefix = %q, want %q", cfg.CurrencyPrefix, "R$ ")
	}
	if cfg.OnError != "skip" || cfg.Order != "rows" {
		t.Errorf("OnError, Order = %q, %q, want skip, rows", cfg.OnError, cfg.Order)
	}
}

func TestLoadEnvConfig_Empty(t *testing.T) {
	t.Parallel()

	cfg := loadEnvConfig(mapGetenv(nil))
	if cfg.ConfigPath != "" || cfg.OutputDir != "" || len(cfg.FontDirs) != 0 {
		t.Errorf("loadEnvConfig() = %+v, want zero values", cfg)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"CARTAZES_OUTPUT=/tmp",
		"CARTAZES_ORDER=rows",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "CARTAZES_OUTPUT ") {
		t.Errorf("expected warning for CARTAZES_OUTPUT, got %q", out)
	}
	if strings.Contains(out, "CARTAZES_ORDER") {
		t.Errorf("known variable CARTAZES_ORDER should not warn, got %q", out)
	}
	if strings.Contains(out, "HOME") {
		t.Errorf("non-CARTAZES variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Override behavior
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set variables override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Currency.Prefix = "$"
		applyEnvConfig(&envConfig{
			OutputDir:      "/saida",
			FontDirs:       []string{"/fonts"},
			CurrencyPrefix: "R$ ",
			OnError:        "skip",
			Order:          "rows",
		}, cfg)

		if cfg.Output.Dir != "/saida" {
			t.Errorf("Output.Dir = %q, want /saida", cfg.Output.Dir)
		}
		if !slices.Equal(cfg.Fonts.Dirs, []string{"/fonts"}) {
			t.Errorf("Fonts.Dirs = %v, want [/fonts]", cfg.Fonts.Dirs)
		}
		if cfg.Currency.Prefix != "R$ " {
			t.Errorf("Currency.Prefix = %q, want %q", cfg.Currency.Prefix, "R$ ")
		}
		if cfg.Batch.OnError != "skip" || cfg.Batch.Order != "rows" {
			t.Errorf("Batch = %+v, want skip/rows", cfg.Batch)
		}
	})

	t.Run("unset variables keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Fonts.Dirs = []string{"/cfg/fonts"}
		applyEnvConfig(&envConfig{}, cfg)

		want := config.DefaultConfig()
		if cfg.Output.Dir != want.Output.Dir {
			t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, want.Output.Dir)
		}
		if !slices.Equal(cfg.Fonts.Dirs, []string{"/cfg/fonts"}) {
			t.Errorf("Fonts.Dirs = %v, want config value", cfg.Fonts.Dirs)
		}
		if cfg.Batch != want.Batch {
			t.Errorf("Batch = %+v, want %+v", cfg.Batch, want.Batch)
		}
	})
}
