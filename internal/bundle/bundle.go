// Package bundle packs rendered tags into a zip archive for download.
package bundle

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fileutil"
)

// ErrDuplicateEntry is returned when two files share a base name.
var ErrDuplicateEntry = errors.New("bundle: duplicate entry name")

// Zip writes files into a new archive at dest. Entries are stored by base
// name in the given order. The archive is written atomically.
func Zip(dest string, files []string) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		name := filepath.Base(f)
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, name)
		}
		seen[name] = true
	}

	return fileutil.WriteFileAtomic(dest, func(w io.Writer) error {
		zw := zip.NewWriter(w)
		for _, f := range files {
			if err := addFile(zw, f); err != nil {
				_ = zw.Close()
				return err
			}
		}
		return zw.Close()
	})
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path) // #nosec G304 -- paths produced by the renderer
	if err != nil {
		return fmt.Errorf("bundle: %w", err)
	}
	defer func() { _ = src.Close() }()

	// Fixed header without timestamps so identical inputs give identical archives.
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   filepath.Base(path),
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("bundle: adding %s: %w", path, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("bundle: writing %s: %w", path, err)
	}
	return nil
}
