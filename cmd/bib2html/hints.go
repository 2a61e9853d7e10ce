package main

import (
	"errors"
	"strings"

	"github.com/alnah/go-bib2html"
	"github.com/alnah/go-bib2html/internal/config"
	"github.com/alnah/go-bib2html/internal/hints"
)

// templateLister reports the templates a converter can use.
type templateLister interface {
	Templates() ([]string, error)
}

// hintedError appends an actionable hint to an error message.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches the hint matching err, if any. lister may be nil.
func withHint(err error, lister templateLister) error {
	hint := hintFor(err, lister)
	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

func hintFor(err error, lister templateLister) string {
	var typeErr *bib2html.UnsupportedTypeError
	var fieldErr *bib2html.MissingFieldError

	switch {
	case errors.As(err, &typeErr):
		return hints.ForUnsupportedEntryType(typeErr.Type, bib2html.SupportedTypes)
	case errors.As(err, &fieldErr):
		return hints.ForMissingField(fieldErr.Field)
	case errors.Is(err, bib2html.ErrInvalidYear):
		return hints.ForInvalidYear()
	case errors.Is(err, bib2html.ErrNoInput):
		return hints.ForMissingInput()
	case errors.Is(err, bib2html.ErrTemplateNotFound):
		var available []string
		if lister != nil {
			available, _ = lister.Templates()
		}
		return hints.ForTemplateNotFound(available)
	case errors.Is(err, bib2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err.Error()))
	default:
		return ""
	}
}

// triedPaths extracts the searched locations from a config-not-found message.
func triedPaths(msg string) []string {
	_, list, found := strings.Cut(msg, "tried ")
	if !found {
		return nil
	}
	return strings.Split(list, ", ")
}
