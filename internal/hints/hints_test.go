package hints

// Notes:
// - ForFontFallback tests cannot use t.Parallel() because they modify the
//   package-level GOOS variable.
// These are acceptable gaps: we test observable behavior through variable injection.

import (
	"strings"
	"testing"
)

func TestForFontFallback(t *testing.T) {
	orig := GOOS
	defer func() { GOOS = orig }()

	tests := []struct {
		goos string
		want string
	}{
		{"windows", "arialbd.ttf"},
		{"darwin", "Arial Bold.ttf"},
		{"linux", "fonts-liberation"},
		{"freebsd", "fonts-liberation"},
	}

	for _, tt := range tests {
		GOOS = tt.goos
		hint := ForFontFallback()
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("GOOS=%s: hint %q missing prefix", tt.goos, hint)
		}
		if !strings.Contains(hint, tt.want) {
			t.Errorf("GOOS=%s: hint %q should mention %q", tt.goos, hint, tt.want)
		}
		if !strings.Contains(hint, "--font-dir") {
			t.Errorf("GOOS=%s: hint %q should mention --font-dir", tt.goos, hint)
		}
	}
}

func TestForColumnCount(t *testing.T) {
	t.Parallel()

	if got := ForColumnCount(nil); got != "" {
		t.Errorf("ForColumnCount(nil) = %q, want empty", got)
	}

	got := ForColumnCount([]string{"code", "description"})
	if !strings.Contains(got, "expected columns: code, description") {
		t.Errorf("ForColumnCount() = %q", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
	}{
		{
			name:     "no paths",
			paths:    nil,
			contains: []string{"--config"},
		},
		{
			name:     "user config path suggested",
			paths:    []string{"loja.yaml", "/home/op/.config/gerador-cartazes/loja.yaml"},
			contains: []string{"--config", "or create /home/op/.config/gerador-cartazes/loja.yaml"},
		},
		{
			name:     "windows separators",
			paths:    []string{`C:\Users\op\AppData\Roaming\gerador-cartazes\loja.yaml`},
			contains: []string{"or create C:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.paths)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("ForConfigNotFound() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"invalid number": ForInvalidNumber(),
		"template":       ForTemplate(),
		"output dir":     ForOutputDirectory(),
		"skip rows":      ForSkipRows(),
		"missing value":  ForMissingValue(),
		"invalid code":   ForInvalidCode(),
		"duplicate code": ForDuplicateCode(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s: hint %q does not use the standard prefix", name, hint)
		}
	}

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
