// Package sheet reads product records from the first worksheet of an xlsx
// workbook. Row 1 is a header and is only kept for reporting; every other
// non-blank row must hold the nine product columns in order.
package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// Columns is the number of product columns per row.
const Columns = 9

// ColumnNames are the expected columns, in order.
var ColumnNames = []string{
	"code", "description", "price_from", "price_to", "installment_price",
	"branch", "defect_note", "treatment_note", "warehouse",
}

// Sentinel errors for spreadsheet reading.
var (
	ErrOpen          = errors.New("cannot open spreadsheet")
	ErrNoSheet       = errors.New("spreadsheet has no worksheet")
	ErrColumnCount   = errors.New("wrong number of columns")
	ErrMissingValue  = errors.New("missing value")
	ErrInvalidNumber = errors.New("invalid number")
)

// Accepted price range. Exponents are bounded before any arithmetic:
// decimal rescales to the smaller exponent, so 1e200000000 would build a
// 200-million-digit integer.
const (
	minPriceExp = -20
	maxPriceExp = 15
)

// maxPrice is the first price that is rejected.
var maxPrice = decimal.New(1, maxPriceExp)

// Record is one product row.
type Record struct {
	Row int // 1-based spreadsheet row
	Seq int // 0-based position among the data rows

	Code             string
	Description      string
	PriceFrom        decimal.Decimal
	PriceTo          decimal.Decimal
	InstallmentPrice decimal.Decimal
	Branch           string
	DefectNote       string
	TreatmentNote    string
	Warehouse        string
}

// RowError reports why a data row could not become a Record.
type RowError struct {
	Row  int
	Code string
	Err  error
}

func (e *RowError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("row %d (code %s): %v", e.Row, e.Code, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Sheet is the decoded content of a workbook.
type Sheet struct {
	Name    string
	Header  []string
	Records []Record
	Invalid []*RowError // in row order, interleaved with Records by Row
}

// DataRows returns the number of non-blank data rows, valid or not.
func (s *Sheet) DataRows() int {
	return len(s.Records) + len(s.Invalid)
}

// Read opens path and decodes its first worksheet. Problems with individual
// rows are collected in Sheet.Invalid; only workbook-level problems are
// returned as errors.
func Read(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSheet, path)
	}
	name := sheets[0]

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading rows of %q: %w", ErrOpen, name, err)
	}

	s := &Sheet{Name: name}
	if len(rows) == 0 {
		return s, nil
	}
	s.Header = normalizeAll(rows[0])

	seq := 0
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		rowNum := i + 2
		rec, err := parseRow(cells)
		if err != nil {
			s.Invalid = append(s.Invalid, &RowError{Row: rowNum, Code: rec.Code, Err: err})
			continue
		}
		rec.Row = rowNum
		rec.Seq = seq
		seq++
		s.Records = append(s.Records, rec)
	}
	return s, nil
}

// parseRow decodes one data row. The returned Record carries the code even
// on error so the caller can name the row.
func parseRow(cells []string) (Record, error) {
	for i := Columns; i < len(cells); i++ {
		if strings.TrimSpace(cells[i]) != "" {
			return Record{Code: strings.TrimSpace(cellText(cells, 0))}, fmt.Errorf("%w: value in column %d, expected %d columns",
				ErrColumnCount, i+1, Columns)
		}
	}

	rec := Record{
		Code:          strings.TrimSpace(cellText(cells, 0)),
		Description:   cellText(cells, 1),
		Branch:        cellText(cells, 5),
		DefectNote:    cellText(cells, 6),
		TreatmentNote: cellText(cells, 7),
		Warehouse:     cellText(cells, 8),
	}

	prices := []struct {
		col int
		dst *decimal.Decimal
	}{
		{2, &rec.PriceFrom},
		{3, &rec.PriceTo},
		{4, &rec.InstallmentPrice},
	}
	for _, p := range prices {
		d, err := parsePrice(cells, p.col)
		if err != nil {
			return rec, err
		}
		*p.dst = d
	}
	return rec, nil
}

func parsePrice(cells []string, col int) (decimal.Decimal, error) {
	raw := ""
	if col < len(cells) {
		raw = strings.TrimSpace(cells[col])
	}
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrMissingValue, ColumnNames[col])
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s = %q", ErrInvalidNumber, ColumnNames[col], raw)
	}
	if exp := d.Exponent(); exp < minPriceExp || exp > maxPriceExp || d.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s = %q is out of range", ErrInvalidNumber, ColumnNames[col], raw)
	}
	return d, nil
}

// cellText returns the NFC form of cell col, or "" past the end of a short row.
func cellText(cells []string, col int) string {
	if col >= len(cells) {
		return ""
	}
	return norm.NFC.String(cells[col])
}

func normalizeAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = norm.NFC.String(strings.TrimSpace(c))
	}
	return out
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
