package cartazes

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/LorhanBezerra/gerador-cartazes/internal/bundle"
)

// Service runs a whole batch: render, collate, and optionally archive.
type Service struct {
	cfg      settings
	renderer *Renderer
	collator *Collator
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOnError).
func New(opts ...Option) *Service {
	cfg := newSettings(opts)
	return &Service{
		cfg:      cfg,
		renderer: &Renderer{cfg: cfg},
		collator: &Collator{cfg: cfg, decode: openImage},
	}
}

// Run renders every row of job.Spreadsheet and merges the tags into
// DocumentName. A batch with no renderable row is not an error: the result
// is Empty and no document is written.
func (s *Service) Run(ctx context.Context, job Job) (*JobResult, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	res := &JobResult{ID: uuid.NewString()}
	log := s.cfg.logger.With("batch", res.ID)

	set, owned := s.renderer.fontSet()
	if owned {
		defer func() { _ = set.Close() }()
	}
	for _, role := range set.Fallbacks() {
		res.Fallbacks = append(res.Fallbacks, string(role))
	}
	if len(res.Fallbacks) > 0 {
		log.Warn("fonts not found, using built-in face", "roles", res.Fallbacks)
	}

	log.Info("rendering", "spreadsheet", job.Spreadsheet, "template", job.Template, "output", job.OutputDir)
	rendered, err := s.renderer.render(ctx, job.Spreadsheet, job.Template, job.OutputDir, set, log)
	if rendered != nil {
		res.Tags = rendered.Tags
		res.Failures = rendered.Failures
	}
	if err != nil {
		return res, err
	}
	if res.Empty() {
		log.Info("nothing to do", "failures", len(res.Failures))
		return res, nil
	}

	paths := s.pagePaths(res.Tags)
	doc, _, err := s.collator.CollateFiles(ctx, paths, job.OutputDir)
	if err != nil {
		return res, err
	}
	res.Document = doc

	if s.cfg.archive {
		dest := filepath.Join(job.OutputDir, ArchiveName)
		if err := bundle.Zip(dest, paths); err != nil {
			return res, fmt.Errorf("%w: %w", ErrArchive, err)
		}
		res.Archive = dest
	}

	log.Info("batch done", "tags", len(res.Tags), "failures", len(res.Failures), "document", res.Document)
	return res, nil
}

// pagePaths orders the tags of this run for the combined document. Tags left
// in the output directory by earlier runs are not included.
func (s *Service) pagePaths(tags []Tag) []string {
	ordered := slices.Clone(tags)
	if s.cfg.order == OrderFilename {
		slices.SortFunc(ordered, func(a, b Tag) int {
			return cmp.Compare(filepath.Base(a.Path), filepath.Base(b.Path))
		})
	}
	paths := make([]string, len(ordered))
	for i, t := range ordered {
		paths[i] = t.Path
	}
	return paths
}
