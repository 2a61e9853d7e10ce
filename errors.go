package bib2html

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrFile  = errors.New("cannot read bibliography file")
	ErrParse = errors.New("malformed bibliography")

	// Entry errors. Each one aborts the whole run.
	ErrInvalidYear          = errors.New("invalid year")
	ErrUnsupportedEntryType = errors.New("unsupported entry type")
	ErrMissingField         = errors.New("missing field")

	// Arrangement errors.
	ErrInvalidSortField = errors.New("invalid sort field")

	// Rendering errors.
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTemplateRender     = errors.New("template rendering failed")
	ErrInvalidTemplateDir = errors.New("invalid template directory")
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidDate        = errors.New("invalid date")

	// Output errors.
	ErrWriteOutput = errors.New("cannot write output")
)
