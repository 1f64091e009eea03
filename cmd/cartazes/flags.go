package main

import (
	"io"

	flag "github.com/spf13/pflag"

	cartazes "github.com/LorhanBezerra/gerador-cartazes"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// fontFlags holds font lookup flags.
type fontFlags struct {
	dirs     []string
	regular  []string
	bold     []string
	noSystem bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common         commonFlags
	fonts          fontFlags
	output         string
	archive        bool
	archiveSet     bool // --zip given explicitly, possibly as --zip=false
	onError        string
	order          string
	currencyPrefix string
	prefixSet      bool // --currency-prefix given, possibly empty
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addFontFlags adds font lookup flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringArrayVar(&f.dirs, "font-dir", nil, "directory searched for fonts (repeatable)")
	fs.StringArrayVar(&f.regular, "font-regular", nil, "regular-weight font file (repeatable)")
	fs.StringArrayVar(&f.bold, "font-bold", nil, "bold font file (repeatable)")
	fs.BoolVar(&f.noSystem, "no-system-fonts", false, "do not search the system font folders")
}

// newGenerateFlagSet registers every generate flag into f. Completion
// scripts are built from the same FlagSet.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVar(&f.archive, "zip", false, "also write "+cartazes.ArchiveName)
	fs.StringVar(&f.onError, "on-error", "", "malformed rows: abort or skip")
	fs.StringVar(&f.order, "order", "", "page order: filename or rows")
	fs.StringVar(&f.currencyPrefix, "currency-prefix", "", "text before every price, e.g. \"R$ \"")

	addCommonFlags(fs, &f.common)
	addFontFlags(fs, &f.fonts)
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, usage io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printGenerateUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.archiveSet = fs.Changed("zip")
	f.prefixSet = fs.Changed("currency-prefix")

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
	fonts  fontFlags
}

// newDoctorFlagSet registers every doctor flag into f.
func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	addFontFlags(fs, &f.fonts)
	return fs
}
