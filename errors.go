package cartazes

import (
	"errors"

	"github.com/LorhanBezerra/gerador-cartazes/internal/sheet"
)

// Sentinel errors for library operations.
var (
	ErrInvalidJob      = errors.New("invalid job")
	ErrTemplateLoad    = errors.New("cannot load template image")
	ErrSpreadsheetLoad = errors.New("cannot load spreadsheet")
	ErrWriteTag        = errors.New("cannot write tag image")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrArchive         = errors.New("cannot write archive")

	// ErrMalformedRow wraps the first row error when the batch aborts.
	ErrMalformedRow = errors.New("malformed row")

	// Row errors. A RowError unwraps to exactly one of these.
	ErrColumnCount   = sheet.ErrColumnCount
	ErrMissingValue  = sheet.ErrMissingValue
	ErrInvalidNumber = sheet.ErrInvalidNumber
	ErrInvalidCode   = errors.New("code cannot be used in a file name")
	ErrDuplicateCode = errors.New("duplicate code")
)

// RowError reports a data row that was not rendered. Row is the 1-based
// spreadsheet row.
type RowError = sheet.RowError
