package cartazes

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fileutil"
	"github.com/LorhanBezerra/gerador-cartazes/internal/pdf"
	"github.com/LorhanBezerra/gerador-cartazes/internal/raster"
)

// Collator merges tag images into one multi-page PDF.
type Collator struct {
	cfg    settings
	decode func(path string) (image.Image, error)
}

// NewCollator creates a Collator.
func NewCollator(opts ...Option) *Collator {
	return &Collator{cfg: newSettings(opts), decode: openImage}
}

func openImage(path string) (image.Image, error) {
	return imaging.Open(path)
}

// ListTags returns the tag files in dir sorted by file name.
func ListTags(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && IsTagFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// Collate writes DocumentName in dir with one page per tag file, in file
// name order. With no tag files it returns ok == false and writes nothing.
func (c *Collator) Collate(ctx context.Context, dir string) (path string, ok bool, err error) {
	paths, err := ListTags(dir)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	return c.CollateFiles(ctx, paths, dir)
}

// CollateFiles writes DocumentName in dir with one page per image in paths,
// in the given order. Each page is the size of its image, 1px = 1pt.
func (c *Collator) CollateFiles(ctx context.Context, paths []string, dir string) (path string, ok bool, err error) {
	if len(paths) == 0 {
		return "", false, nil
	}

	doc := pdf.New()
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		img, err := c.decode(p)
		if err != nil {
			return "", false, fmt.Errorf("%w: reading %s: %w", ErrPDFGeneration, p, err)
		}
		if err := doc.AddImage(raster.Opaque(img)); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
		}
	}

	dest := filepath.Join(dir, DocumentName)
	err = fileutil.WriteFileAtomic(dest, func(w io.Writer) error {
		_, err := doc.WriteTo(w)
		return err
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	c.cfg.logger.Debug("document written", "path", dest, "pages", doc.Pages())
	return dest, true, nil
}
