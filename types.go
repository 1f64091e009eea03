package cartazes

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fonts"
	"github.com/LorhanBezerra/gerador-cartazes/internal/layout"
)

// Output file names.
const (
	TagPrefix    = "cartaz_"
	TagExt       = ".png"
	DocumentName = "cartazes_unificados.pdf"
	ArchiveName  = "cartazes_individuais.zip"
)

// OnError selects what a batch does with malformed rows.
type OnError int

const (
	// Abort fails the whole batch on the first malformed row before any tag
	// is drawn.
	Abort OnError = iota
	// Skip renders the valid rows and reports the malformed ones.
	Skip
)

func (p OnError) String() string {
	if p == Skip {
		return "skip"
	}
	return "abort"
}

// ParseOnError accepts "abort", "skip" or "" (abort), case-insensitively.
func ParseOnError(s string) (OnError, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abort":
		return Abort, nil
	case "skip":
		return Skip, nil
	}
	return Abort, fmt.Errorf("%w: on-error %q (must be abort or skip)", ErrInvalidJob, s)
}

// PageOrder selects the page order of the combined document.
type PageOrder int

const (
	// OrderFilename sorts pages by tag file name, byte-wise. Codes of
	// different lengths do not sort numerically: cartaz_10 precedes cartaz_2.
	OrderFilename PageOrder = iota
	// OrderRows keeps spreadsheet row order.
	OrderRows
)

func (o PageOrder) String() string {
	if o == OrderRows {
		return "rows"
	}
	return "filename"
}

// ParsePageOrder accepts "filename", "rows" or "" (filename), case-insensitively.
func ParsePageOrder(s string) (PageOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "filename":
		return OrderFilename, nil
	case "rows":
		return OrderRows, nil
	}
	return OrderFilename, fmt.Errorf("%w: order %q (must be filename or rows)", ErrInvalidJob, s)
}

// Tag is one rendered tag image.
type Tag struct {
	Seq  int    // 0-based position among rendered rows
	Row  int    // 1-based spreadsheet row
	Code string // code as read from the spreadsheet
	Path string
}

// TagFileName returns the file name for a sanitized code.
func TagFileName(safeCode string) string {
	return TagPrefix + safeCode + TagExt
}

// IsTagFile reports whether name looks like a tag written by the Renderer.
func IsTagFile(name string) bool {
	name = filepath.Base(name)
	return strings.HasPrefix(name, TagPrefix) && strings.HasSuffix(name, TagExt) &&
		len(name) > len(TagPrefix)+len(TagExt)
}

// RenderResult lists the tags written by one Render call and the rows that
// were skipped.
type RenderResult struct {
	Tags     []Tag
	Failures []*RowError
}

// Paths returns the tag paths in row order.
func (r *RenderResult) Paths() []string {
	paths := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		paths[i] = t.Path
	}
	return paths
}

// Job names the inputs and output directory of one batch.
type Job struct {
	Spreadsheet string // .xlsx path
	Template    string // template image path
	OutputDir   string // created if absent
}

// Validate checks that every path is set.
func (j Job) Validate() error {
	switch {
	case j.Spreadsheet == "":
		return fmt.Errorf("%w: spreadsheet path is empty", ErrInvalidJob)
	case j.Template == "":
		return fmt.Errorf("%w: template path is empty", ErrInvalidJob)
	case j.OutputDir == "":
		return fmt.Errorf("%w: output directory is empty", ErrInvalidJob)
	}
	return nil
}

// JobResult is the outcome of Service.Run.
type JobResult struct {
	ID        string // batch identifier, also attached to log records
	Tags      []Tag
	Failures  []*RowError
	Document  string   // combined PDF, empty when no tag was rendered
	Archive   string   // zip of the tags, empty unless WithArchive
	Fallbacks []string // font roles drawn with the built-in face
}

// Empty reports whether the batch produced nothing.
func (r *JobResult) Empty() bool {
	return len(r.Tags) == 0
}

// Option configures a Service, Renderer or Collator.
type Option func(*settings)

// settings holds configuration shared by Service, Renderer and Collator.
type settings struct {
	logger   *slog.Logger
	fontOpts []fonts.Option
	fontSet  *fonts.FontSet
	layout   *layout.Layout
	prefix   string
	onError  OnError
	order    PageOrder
	archive  bool
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.layout == nil {
		s.layout = layout.Default()
	}
	return s
}

// WithLogger sets the structured logger. The default discards records.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFontDirs adds directories searched for fonts before the system folders.
func WithFontDirs(dirs ...string) Option {
	return func(s *settings) {
		s.fontOpts = append(s.fontOpts, fonts.WithDirs(dirs...))
	}
}

// WithFontFiles adds explicit regular and bold font files, searched first.
func WithFontFiles(regular, bold []string) Option {
	return func(s *settings) {
		s.fontOpts = append(s.fontOpts,
			fonts.WithFiles(fonts.Regular, regular...),
			fonts.WithFiles(fonts.Bold, bold...),
		)
	}
}

// WithoutSystemFonts stops the font search at the configured files and
// directories.
func WithoutSystemFonts() Option {
	return func(s *settings) {
		s.fontOpts = append(s.fontOpts, fonts.WithoutSystemFonts())
	}
}

// WithFontSet uses set for every run instead of resolving fonts. The caller
// keeps ownership of set.
func WithFontSet(set *fonts.FontSet) Option {
	return func(s *settings) {
		s.fontSet = set
	}
}

// WithLayout replaces the built-in layout.
// Panics if l is nil or invalid (programmer error).
func WithLayout(l *layout.Layout) Option {
	if l == nil {
		panic("cartazes: WithLayout layout must not be nil")
	}
	if err := l.Validate(); err != nil {
		panic("cartazes: WithLayout: " + err.Error())
	}
	return func(s *settings) {
		s.layout = l.Clone()
	}
}

// WithCurrencyPrefix prepends p (e.g. "R$ ") to every price.
func WithCurrencyPrefix(p string) Option {
	return func(s *settings) {
		s.prefix = p
	}
}

// WithOnError sets the malformed-row policy (default Abort).
func WithOnError(p OnError) Option {
	return func(s *settings) {
		s.onError = p
	}
}

// WithPageOrder sets the page order of the combined document (default
// OrderFilename).
func WithPageOrder(o PageOrder) Option {
	return func(s *settings) {
		s.order = o
	}
}

// WithArchive also writes ArchiveName with every tag of the run.
func WithArchive(enabled bool) Option {
	return func(s *settings) {
		s.archive = enabled
	}
}
