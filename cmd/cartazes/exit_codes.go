package main

import (
	"errors"
	"os"

	cartazes "github.com/LorhanBezerra/gerador-cartazes"
	"github.com/LorhanBezerra/gerador-cartazes/internal/config"
)

// Exit codes for the cartazes CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Batch completed (possibly empty)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or arguments
	ExitIO      = 3 // Unreadable inputs, unwritable outputs
	ExitInput   = 4 // Malformed spreadsheet rows
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Malformed input rows (exit 4)
	if cartazes.IsMalformedRow(err) {
		return ExitInput
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cartazes.ErrTemplateLoad) ||
		errors.Is(err, cartazes.ErrSpreadsheetLoad) ||
		errors.Is(err, cartazes.ErrWriteTag) ||
		errors.Is(err, cartazes.ErrPDFGeneration) ||
		errors.Is(err, cartazes.ErrArchive) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, cartazes.ErrInvalidJob) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
