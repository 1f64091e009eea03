package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/LorhanBezerra/gerador-cartazes/internal/config"
	"github.com/LorhanBezerra/gerador-cartazes/internal/fileutil"
	"github.com/LorhanBezerra/gerador-cartazes/internal/fonts"
	"github.com/LorhanBezerra/gerador-cartazes/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Fonts    fontsInfo  `json:"fonts"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// fontsInfo holds font resolution results.
type fontsInfo struct {
	Platform string     `json:"platform"`
	Roles    []roleInfo `json:"roles"`
}

// roleInfo describes how one font role resolved.
type roleInfo struct {
	Role     string  `json:"role"`
	Size     float64 `json:"size"`
	Source   string  `json:"source,omitempty"`
	Fallback bool    `json:"fallback"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS       string   `json:"os"`
	Arch     string   `json:"arch"`
	FontDirs []string `json:"font_dirs,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags,
// otherwise the exit code of the config error.
// Fonts are looked up with the same config, env and flags as generate.
func runDoctorCmd(args []string, env *Environment) int {
	var f doctorFlags
	fs := newDoctorFlagSet(&f)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printDoctorUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())
	cfg, err := loadConfig(f.config, envCfg.ConfigPath)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	applyEnvConfig(envCfg, cfg)
	mergeFontFlags(f.fonts, cfg)

	r := fonts.NewResolver(resolverOptions(cfg, f.fonts.noSystem)...)
	result := runDoctor(r, cfg.Fonts.Dirs)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// resolverOptions mirrors the font options buildOptions hands to the Service.
func resolverOptions(cfg *config.Config, noSystem bool) []fonts.Option {
	opts := []fonts.Option{
		fonts.WithDirs(cfg.Fonts.Dirs...),
		fonts.WithFiles(fonts.Regular, cfg.Fonts.Regular...),
		fonts.WithFiles(fonts.Bold, cfg.Fonts.Bold...),
	}
	if noSystem {
		opts = append(opts, fonts.WithoutSystemFonts())
	}
	return opts
}

// runDoctor performs all diagnostic checks.
func runDoctor(r *fonts.Resolver, dirs []string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			FontDirs: dirs,
		},
	}

	checkFonts(result, r)
	checkSystem(result)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkFonts resolves every role. Fallbacks are warnings: tags still render.
func checkFonts(result *doctorResult, r *fonts.Resolver) {
	set := r.FontSet()
	defer func() { _ = set.Close() }()

	result.Fonts.Platform = r.Platform()
	for _, role := range fonts.Roles() {
		face := set.Face(role)
		result.Fonts.Roles = append(result.Fonts.Roles, roleInfo{
			Role:     string(role),
			Size:     role.Size(),
			Source:   face.Source,
			Fallback: face.Fallback(),
		})
	}

	if n := len(set.Fallbacks()); n > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d font role(s) use the built-in face%s", n, hints.ForFontFallback()))
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	if fileutil.DirWritable(tmpDir) {
		result.System.TempWritable = true
		return
	}
	result.Errors = append(result.Errors,
		fmt.Sprintf("Temp directory not writable: %s", tmpDir))
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cartazes doctor")
	fmt.Fprintln(w)

	// Fonts section
	fmt.Fprintf(w, "Fonts (%s)\n", r.Fonts.Platform)
	for _, role := range r.Fonts.Roles {
		if role.Fallback {
			fmt.Fprintf(w, "  [WARN] %-12s %4.0fpt built-in face\n", role.Role, role.Size)
		} else {
			fmt.Fprintf(w, "  [OK] %-12s %4.0fpt %s\n", role.Role, role.Size, role.Source)
		}
	}
	fmt.Fprintln(w)

	// Environment section
	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	for _, dir := range r.Env.FontDirs {
		fmt.Fprintf(w, "  [OK] Font directory: %s\n", dir)
	}
	fmt.Fprintln(w)

	// System section
	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
