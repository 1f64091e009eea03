package main

// Notes:
// - Tests go through runDoctorCmd() and runDoctor() observable outputs.
// - System fonts depend on the host, so role sources are only checked when
//   a test points the resolver at a known font file.

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fonts"
)

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Verifies JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	exitCode := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout.String())
	}

	if result.Env.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", result.Env.OS, runtime.GOOS)
	}
	if len(result.Fonts.Roles) != len(fonts.Roles()) {
		t.Errorf("len(Roles) = %d, want %d", len(result.Fonts.Roles), len(fonts.Roles()))
	}

	validStatuses := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !validStatuses[result.Status] {
		t.Errorf("Invalid status %q, expected ready/warnings/errors", result.Status)
	}
	if result.Status == "errors" && exitCode != ExitGeneral {
		t.Errorf("Expected exit code %d for errors status, got %d", ExitGeneral, exitCode)
	}
	if result.Status != "errors" && exitCode != ExitSuccess {
		t.Errorf("Expected exit code %d for non-error status, got %d", ExitSuccess, exitCode)
	}
}

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)
	runDoctorCmd(nil, env)

	out := stdout.String()
	for _, want := range []string{"cartazes doctor", "Fonts (", "price", "Temp directory", "Status:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDoctorCmd_BadFlag(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil)
	if code := runDoctorCmd([]string{"--nope"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctor - Font checks
// ---------------------------------------------------------------------------

func TestRunDoctor_NoFonts(t *testing.T) {
	t.Parallel()

	result := runDoctor(fonts.NewResolver(fonts.WithoutSystemFonts()), nil)

	if result.Fonts.Platform != "none" {
		t.Errorf("Platform = %q, want none", result.Fonts.Platform)
	}
	for _, r := range result.Fonts.Roles {
		if !r.Fallback || r.Source != "" {
			t.Errorf("role %s = %+v, want built-in fallback", r.Role, r)
		}
	}
	if result.Status == "ready" {
		t.Error("Status = ready, want warnings for fallback fonts")
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "hint:") {
		t.Errorf("Warnings = %v, want fallback hint", result.Warnings)
	}
}

func TestRunDoctor_FontDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"arial.ttf", "arialbd.ttf"} {
		if err := os.WriteFile(filepath.Join(dir, name), goregular.TTF, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	r := fonts.NewResolver(fonts.WithoutSystemFonts(), fonts.WithDirs(dir))
	result := runDoctor(r, []string{dir})

	for _, role := range result.Fonts.Roles {
		if role.Fallback {
			t.Errorf("role %s fell back, want a file from %s", role.Role, dir)
		}
		if filepath.Dir(role.Source) != dir {
			t.Errorf("role %s source = %q, want file in %s", role.Role, role.Source, dir)
		}
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}

	var buf bytes.Buffer
	printDoctorResult(&buf, result)
	if !strings.Contains(buf.String(), "Font directory: "+dir) {
		t.Errorf("output does not list the font directory:\n%s", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd - Same font lookup as generate
// ---------------------------------------------------------------------------

func writeFont(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
}

func runDoctorJSON(t *testing.T, env *Environment, args ...string) (*doctorResult, int) {
	t.Helper()
	stdout := env.Stdout.(*bytes.Buffer)
	code := runDoctorCmd(append([]string{"--json"}, args...), env)
	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout.String())
	}
	return &result, code
}

func TestRunDoctorCmd_ConfigFontFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	regular := filepath.Join(dir, "loja-regular.ttf")
	bold := filepath.Join(dir, "loja-bold.ttf")
	writeFont(t, regular)
	writeFont(t, bold)

	cfgPath := filepath.Join(dir, "loja.yaml")
	cfg := "fonts:\n  regular: ['" + regular + "']\n  bold: ['" + bold + "']\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv(nil)
	result, code := runDoctorJSON(t, env, "--no-system-fonts", "-c", cfgPath)
	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
	if result.Fonts.Platform != "none" {
		t.Errorf("Platform = %q, want none with --no-system-fonts", result.Fonts.Platform)
	}
	for _, r := range result.Fonts.Roles {
		want := regular
		if fonts.Role(r.Role).Weight() == fonts.Bold {
			want = bold
		}
		if r.Fallback || r.Source != want {
			t.Errorf("role %s = %+v, want source %s", r.Role, r, want)
		}
	}
}

func TestRunDoctorCmd_FontDirFlagOverridesEnv(t *testing.T) {
	t.Parallel()

	fontDir := t.TempDir()
	writeFont(t, filepath.Join(fontDir, "arial.ttf"))
	writeFont(t, filepath.Join(fontDir, "arialbd.ttf"))
	emptyDir := t.TempDir()

	env, _, _ := testEnv(map[string]string{"CARTAZES_FONT_DIRS": emptyDir})
	result, _ := runDoctorJSON(t, env, "--no-system-fonts", "--font-dir", fontDir)

	if len(result.Env.FontDirs) != 1 || result.Env.FontDirs[0] != fontDir {
		t.Errorf("FontDirs = %v, want [%s]", result.Env.FontDirs, fontDir)
	}
	for _, r := range result.Fonts.Roles {
		if r.Fallback {
			t.Errorf("role %s fell back, want a file from %s", r.Role, fontDir)
		}
	}
}

func TestRunDoctorCmd_EnvFontDirs(t *testing.T) {
	t.Parallel()

	fontDir := t.TempDir()
	writeFont(t, filepath.Join(fontDir, "arial.ttf"))
	writeFont(t, filepath.Join(fontDir, "arialbd.ttf"))

	env, _, _ := testEnv(map[string]string{"CARTAZES_FONT_DIRS": fontDir})
	result, _ := runDoctorJSON(t, env, "--no-system-fonts")

	for _, r := range result.Fonts.Roles {
		if r.Fallback || filepath.Dir(r.Source) != fontDir {
			t.Errorf("role %s = %+v, want a file from %s", r.Role, r, fontDir)
		}
	}
}

func TestRunDoctorCmd_MissingConfig(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv(nil)
	code := runDoctorCmd([]string{"-c", filepath.Join(t.TempDir(), "nao-existe.yaml")}, env)

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "config file not found") {
		t.Errorf("stderr = %q, want config error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want no report", stdout.String())
	}
}
