package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	cartazes "github.com/LorhanBezerra/gerador-cartazes"
	"github.com/LorhanBezerra/gerador-cartazes/internal/config"
	"github.com/LorhanBezerra/gerador-cartazes/internal/hints"
	"github.com/LorhanBezerra/gerador-cartazes/internal/sheet"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage = errors.New("invalid usage")
)

// runGenerate renders one spreadsheet into tags and the combined PDF.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) != 2 {
		printGenerateUsage(env.Stderr)
		return fmt.Errorf("%w: expected <planilha.xlsx> <modelo.png>, got %d argument(s)", ErrUsage, len(positional))
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := buildOptions(cfg, flags, newLogger(env.Stderr, flags.common))
	if err != nil {
		return err
	}

	job := cartazes.Job{
		Spreadsheet: positional[0],
		Template:    positional[1],
		OutputDir:   cfg.Output.Dir,
	}
	res, err := cartazes.New(opts...).Run(ctx, job)
	if err != nil {
		return withHint(err)
	}

	printResult(env, res, flags.common.quiet)
	return nil
}

// loadConfig loads the config named by the flag, else by CARTAZES_CONFIG.
// Without either, defaults are used.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.CandidatePaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.archiveSet {
		cfg.Output.Archive = flags.archive
	}
	if flags.onError != "" {
		cfg.Batch.OnError = flags.onError
	}
	if flags.order != "" {
		cfg.Batch.Order = flags.order
	}
	if flags.prefixSet {
		cfg.Currency.Prefix = flags.currencyPrefix
	}
	mergeFontFlags(flags.fonts, cfg)
}

// mergeFontFlags replaces the configured font lists with the ones given on
// the command line.
func mergeFontFlags(f fontFlags, cfg *config.Config) {
	if len(f.dirs) > 0 {
		cfg.Fonts.Dirs = f.dirs
	}
	if len(f.regular) > 0 {
		cfg.Fonts.Regular = f.regular
	}
	if len(f.bold) > 0 {
		cfg.Fonts.Bold = f.bold
	}
}

// buildOptions turns the merged config into Service options.
func buildOptions(cfg *config.Config, flags *generateFlags, logger *slog.Logger) ([]cartazes.Option, error) {
	onError, err := cartazes.ParseOnError(cfg.Batch.OnError)
	if err != nil {
		return nil, err
	}
	order, err := cartazes.ParsePageOrder(cfg.Batch.Order)
	if err != nil {
		return nil, err
	}

	opts := []cartazes.Option{
		cartazes.WithLogger(logger),
		cartazes.WithFontDirs(cfg.Fonts.Dirs...),
		cartazes.WithFontFiles(cfg.Fonts.Regular, cfg.Fonts.Bold),
		cartazes.WithCurrencyPrefix(cfg.Currency.Prefix),
		cartazes.WithOnError(onError),
		cartazes.WithPageOrder(order),
		cartazes.WithArchive(cfg.Output.Archive),
	}
	if flags.fonts.noSystem {
		opts = append(opts, cartazes.WithoutSystemFonts())
	}
	return opts, nil
}

// newLogger returns a text logger on w: DEBUG with --verbose, ERROR with
// --quiet, INFO otherwise.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// withHint appends an actionable hint to known batch errors.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, cartazes.ErrInvalidNumber):
		hint = hints.ForInvalidNumber()
	case errors.Is(err, cartazes.ErrMissingValue):
		hint = hints.ForMissingValue()
	case errors.Is(err, cartazes.ErrInvalidCode):
		hint = hints.ForInvalidCode()
	case errors.Is(err, cartazes.ErrDuplicateCode):
		hint = hints.ForDuplicateCode()
	case errors.Is(err, cartazes.ErrColumnCount):
		hint = hints.ForColumnCount(sheet.ColumnNames)
	case errors.Is(err, cartazes.ErrTemplateLoad):
		hint = hints.ForTemplate()
	case errors.Is(err, cartazes.ErrWriteTag):
		hint = hints.ForOutputDirectory()
	}
	if errors.Is(err, cartazes.ErrMalformedRow) {
		hint += hints.ForSkipRows()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printResult writes the batch summary. Skipped rows go to stderr and are
// shown even with --quiet.
func printResult(env *Environment, res *cartazes.JobResult, quiet bool) {
	for _, f := range res.Failures {
		fmt.Fprintf(env.Stderr, "skipped %v\n", f)
	}
	if len(res.Fallbacks) > 0 && !quiet {
		fmt.Fprintf(env.Stderr, "warning: built-in font used for %s%s\n",
			strings.Join(res.Fallbacks, ", "), hints.ForFontFallback())
	}

	if quiet {
		return
	}
	if res.Empty() {
		fmt.Fprintf(env.Stdout, "no tags generated (%d row(s) skipped)\n", len(res.Failures))
		return
	}
	fmt.Fprintf(env.Stdout, "generated %d tag(s), %d row(s) skipped\n", len(res.Tags), len(res.Failures))
	fmt.Fprintf(env.Stdout, "document: %s\n", res.Document)
	if res.Archive != "" {
		fmt.Fprintf(env.Stdout, "archive:  %s\n", res.Archive)
	}
}
