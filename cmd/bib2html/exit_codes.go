package main

import (
	"errors"
	"os"

	"github.com/alnah/go-bib2html"
	"github.com/alnah/go-bib2html/internal/config"
)

// Exit codes for the bib2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, entries or templates
	ExitIO      = 3 // Input unreadable, output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, bib2html.ErrFile) ||
		errors.Is(err, bib2html.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, bib2html.ErrNoInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, bib2html.ErrInvalidDate) ||
		errors.Is(err, bib2html.ErrParse) ||
		errors.Is(err, bib2html.ErrInvalidYear) ||
		errors.Is(err, bib2html.ErrUnsupportedEntryType) ||
		errors.Is(err, bib2html.ErrMissingField) ||
		errors.Is(err, bib2html.ErrInvalidSortField) ||
		errors.Is(err, bib2html.ErrTemplateNotFound) ||
		errors.Is(err, bib2html.ErrTemplateRender) ||
		errors.Is(err, bib2html.ErrInvalidTemplateDir) {
		return ExitUsage
	}

	return ExitGeneral
}
