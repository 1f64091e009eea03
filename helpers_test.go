package cartazes

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/xuri/excelize/v2"
)

// Template size used by the fixtures; large enough for the built-in layout.
const (
	templateWidth  = 600
	templateHeight = 760
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	black = color.NRGBA{A: 255}
)

var sheetHeader = []any{
	"Código", "Descrição", "Preço De", "Preço Por", "Parcela",
	"Filial", "Defeito", "Tratativa", "Armazém",
}

// product returns a well-formed data row for code.
func product(code any) []any {
	return []any{code, "CALÇA JEANS SKINNY", 199.9, 149.9, 14.99, "07", "Zíper com defeito", "OUTLET", "A-03"}
}

// writeTemplate saves a white template PNG and returns its path.
func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, templateWidth, templateHeight))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
	}
	path := filepath.Join(dir, "modelo.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return path
}

// writeSheet saves the header followed by rows and returns the path.
func writeSheet(t *testing.T, dir string, rows ...[]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	all := append([][]any{sheetHeader}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(dir, "planilha.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

// readNRGBA decodes an image file into NRGBA.
func readNRGBA(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return imaging.Clone(img)
}

// hasColorIn reports whether any pixel of r in img equals c.
func hasColorIn(img *image.NRGBA, r image.Rectangle, c color.NRGBA) bool {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func fileNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
