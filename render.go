package cartazes

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fileutil"
	"github.com/LorhanBezerra/gerador-cartazes/internal/fonts"
	"github.com/LorhanBezerra/gerador-cartazes/internal/layout"
	"github.com/LorhanBezerra/gerador-cartazes/internal/raster"
	"github.com/LorhanBezerra/gerador-cartazes/internal/sheet"
)

// Renderer draws one tag image per spreadsheet row.
type Renderer struct {
	cfg settings
}

// NewRenderer creates a Renderer. Options that only concern collation are
// ignored.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{cfg: newSettings(opts)}
}

// Render reads spreadsheetPath, draws every row onto a copy of the image at
// templatePath and writes cartaz_<code>.png files into outputDir. Fonts are
// resolved once for the call unless WithFontSet was given.
//
// The template is loaded first: when it is unreadable no row is processed.
// All rows are validated before the first tag is drawn, so under Abort a
// malformed row leaves outputDir untouched.
//
// Codes are compared by their file name without regard to case on every
// platform: "ab1" and "AB1", or "A/1" and "A:1", name the same tag and the
// later row fails with ErrDuplicateCode.
func (r *Renderer) Render(ctx context.Context, spreadsheetPath, templatePath, outputDir string) (*RenderResult, error) {
	set, owned := r.fontSet()
	if owned {
		defer func() { _ = set.Close() }()
	}
	return r.render(ctx, spreadsheetPath, templatePath, outputDir, set, r.cfg.logger)
}

// fontSet returns the injected FontSet, or resolves a new one that the
// caller must close.
func (r *Renderer) fontSet() (*fonts.FontSet, bool) {
	if r.cfg.fontSet != nil {
		return r.cfg.fontSet, false
	}
	return fonts.NewResolver(r.cfg.fontOpts...).FontSet(), true
}

// plannedTag is a validated row waiting to be drawn.
type plannedTag struct {
	rec  sheet.Record
	path string
}

func (r *Renderer) render(ctx context.Context, spreadsheetPath, templatePath, outputDir string,
	set *fonts.FontSet, log *slog.Logger) (*RenderResult, error) {
	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	sh, err := sheet.Read(spreadsheetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpreadsheetLoad, err)
	}
	log.Debug("spreadsheet read", "sheet", sh.Name, "rows", sh.DataRows())

	plan, failures := planTags(sh, outputDir)
	result := &RenderResult{Failures: failures}

	if len(failures) > 0 {
		if r.cfg.onError == Abort {
			return nil, abortError(failures)
		}
		for _, f := range failures {
			log.Warn("row skipped", "row", f.Row, "code", f.Code, "error", f.Err)
		}
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteTag, err)
	}
	if len(plan) == 0 {
		return result, nil
	}

	for seq, p := range plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		img := imaging.Clone(tmpl)
		r.draw(img, p.rec, set)

		err := fileutil.WriteFileAtomic(p.path, func(w io.Writer) error {
			return imaging.Encode(w, img, imaging.PNG)
		})
		if err != nil {
			return result, fmt.Errorf("%w: row %d: %w", ErrWriteTag, p.rec.Row, err)
		}

		result.Tags = append(result.Tags, Tag{Seq: seq, Row: p.rec.Row, Code: p.rec.Code, Path: p.path})
		log.Debug("tag written", "row", p.rec.Row, "code", p.rec.Code, "path", p.path)
	}
	return result, nil
}

// loadTemplate decodes the template and drops its alpha channel.
func loadTemplate(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrTemplateLoad, path)
	}
	return raster.Opaque(img), nil
}

// planTags turns records into output paths and collects every malformed row
// in row order. Two codes that map to the same file name (compared without
// case, for case-insensitive file systems) keep the first row.
func planTags(sh *sheet.Sheet, outputDir string) ([]plannedTag, []*RowError) {
	failures := slices.Clone(sh.Invalid)
	plan := make([]plannedTag, 0, len(sh.Records))
	seen := make(map[string]int, len(sh.Records))

	for _, rec := range sh.Records {
		name, err := fileutil.SafeName(rec.Code)
		if err != nil {
			failures = append(failures, &RowError{Row: rec.Row, Code: rec.Code,
				Err: fmt.Errorf("%w: %w", ErrInvalidCode, err)})
			continue
		}
		key := strings.ToLower(name)
		if first, dup := seen[key]; dup {
			failures = append(failures, &RowError{Row: rec.Row, Code: rec.Code,
				Err: fmt.Errorf("%w: same file name as row %d", ErrDuplicateCode, first)})
			continue
		}
		seen[key] = rec.Row
		plan = append(plan, plannedTag{rec: rec, path: filepath.Join(outputDir, TagFileName(name))})
	}

	slices.SortStableFunc(failures, func(a, b *RowError) int { return cmp.Compare(a.Row, b.Row) })
	return plan, failures
}

func abortError(failures []*RowError) error {
	err := fmt.Errorf("%w: %w", ErrMalformedRow, failures[0])
	if n := len(failures) - 1; n > 0 {
		err = fmt.Errorf("%w (and %d more)", err, n)
	}
	return err
}

// draw paints every layout item onto img.
func (r *Renderer) draw(img *image.NRGBA, rec sheet.Record, set *fonts.FontSet) {
	for _, it := range r.cfg.layout.Items {
		at := image.Pt(it.At.X, it.At.Y)
		if it.IsLine() {
			raster.Line(img, at, image.Pt(it.Line.To.X, it.Line.To.Y), it.Line.Width, it.RGBA())
			continue
		}

		text := it.Text
		if it.Field != "" {
			text = it.Prefix + layout.Truncate(r.fieldText(rec, it.Field), it.MaxRunes)
		}
		raster.Text(img, set.Face(it.Font), at, text, it.RGBA())
	}
}

// fieldText returns the display text of a record field. Prices carry the
// configured currency prefix.
func (r *Renderer) fieldText(rec sheet.Record, field string) string {
	switch field {
	case layout.FieldCode:
		return rec.Code
	case layout.FieldDescription:
		return rec.Description
	case layout.FieldPriceFrom:
		return r.cfg.prefix + FormatCurrency(rec.PriceFrom)
	case layout.FieldPriceTo:
		return r.cfg.prefix + FormatCurrency(rec.PriceTo)
	case layout.FieldInstallmentPrice:
		return r.cfg.prefix + FormatCurrency(rec.InstallmentPrice)
	case layout.FieldBranch:
		return rec.Branch
	case layout.FieldDefectNote:
		return rec.DefectNote
	case layout.FieldTreatmentNote:
		return rec.TreatmentNote
	case layout.FieldWarehouse:
		return rec.Warehouse
	}
	return ""
}

// IsMalformedRow reports whether err is a row-level input problem.
func IsMalformedRow(err error) bool {
	return errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrColumnCount) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrDuplicateCode)
}
