// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"runtime"
	"strings"
)

// GOOS is the platform used to pick font installation advice. Tests override it.
var GOOS = runtime.GOOS

// ForFontFallback returns a hint for when one or more roles fell back to the
// built-in bitmap font.
func ForFontFallback() string {
	switch GOOS {
	case "windows":
		return format("install Arial or pass --font-dir with a folder containing arial.ttf and arialbd.ttf")
	case "darwin":
		return format("install Arial or pass --font-dir with a folder containing Arial.ttf and Arial Bold.ttf")
	default:
		return format("install fonts-liberation (Liberation Sans) or pass --font-dir")
	}
}

// ForColumnCount returns a hint listing the expected spreadsheet columns.
func ForColumnCount(columns []string) string {
	if len(columns) == 0 {
		return ""
	}
	return format("expected columns: " + strings.Join(columns, ", "))
}

// ForInvalidNumber returns a hint about price cells stored as text.
func ForInvalidNumber() string {
	return format("price cells must be numbers below 1e15; remove currency symbols and thousands separators")
}

// ForMissingValue returns a hint for empty required cells.
func ForMissingValue() string {
	return format("fill the three price columns on every row; text columns may be empty")
}

// ForInvalidCode returns a hint for codes that cannot become a tag file name.
func ForInvalidCode() string {
	return format("codes name the tag files: use letters and digits, not only dots or names like CON or NUL")
}

// ForDuplicateCode returns a hint for two rows whose codes map to the same
// tag file.
func ForDuplicateCode() string {
	return format("codes must be unique; letter case and characters such as / or : are not told apart")
}

// ForTemplate returns a hint for unreadable template images.
func ForTemplate() string {
	return format("supported formats: PNG, JPEG, GIF, BMP, TIFF")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "gerador-cartazes/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForSkipRows returns the hint shown when a batch aborted on a malformed row.
func ForSkipRows() string {
	return format("use --on-error skip to render the valid rows and report the rest")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
