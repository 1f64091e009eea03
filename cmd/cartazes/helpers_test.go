package main

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/xuri/excelize/v2"
)

// testEnv returns an Environment backed by vars instead of the process
// environment, with captured output.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	environ := func() []string {
		out := make([]string, 0, len(vars))
		for k, v := range vars {
			out = append(out, k+"="+v)
		}
		return out
	}
	return newEnvironment(&stdout, &stderr, lookup, environ, nil), &stdout, &stderr
}

// writeInputs creates a template and a workbook with the given data rows.
func writeInputs(t *testing.T, dir string, rows ...[]any) (xlsx, tmpl string) {
	t.Helper()

	tmpl = filepath.Join(dir, "modelo.png")
	if err := imaging.Save(imaging.New(600, 760, image.White.C), tmpl); err != nil {
		t.Fatal(err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	header := []any{"Código", "Descrição", "De", "Por", "Parcela", "Filial", "Defeito", "Tratativa", "Armazém"}
	all := append([][]any{header}, rows...)
	for i, row := range all {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	xlsx = filepath.Join(dir, "planilha.xlsx")
	if err := f.SaveAs(xlsx); err != nil {
		t.Fatal(err)
	}
	return xlsx, tmpl
}

func row(code any) []any {
	return []any{code, "TENIS CASUAL", 299.9, 199.9, 19.99, "12", "", "", "B-01"}
}
