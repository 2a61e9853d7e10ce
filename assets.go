package bib2html

import (
	"errors"

	"github.com/alnah/go-bib2html/internal/assets"
)

// DefaultTemplate is the name of the built-in list template.
const DefaultTemplate = assets.DefaultTemplateName

// TemplateLoader defines the contract for loading list templates.
// Implementations may load from a directory, embedded files, a database, etc.
//
// The library provides NewTemplateLoader() for directory-based loading with
// fallback to the built-in templates. Implement this interface for other backends.
type TemplateLoader interface {
	// LoadTemplate loads a template by file name (e.g. "listtemplate.html").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// ListTemplates returns the template names this loader can serve.
	ListTemplates() ([]string, error)
}

// NewTemplateLoader creates a TemplateLoader for the given directory.
// If templateDir is empty, only the built-in templates are used.
// If templateDir is set, its templates take precedence over the built-in ones.
//
// Returns ErrInvalidTemplateDir if templateDir is set but not a readable directory.
func NewTemplateLoader(templateDir string) (TemplateLoader, error) {
	resolver, err := assets.NewResolver(templateDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &templateLoaderAdapter{resolver: resolver}, nil
}

// templateLoaderAdapter wraps the internal resolver to return public errors.
type templateLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *templateLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *templateLoaderAdapter) ListTemplates() ([]string, error) {
	names, err := a.resolver.ListTemplates()
	if err != nil {
		return nil, convertAssetError(err)
	}
	return names, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidTemplateName):
		return wrapError(ErrTemplateNotFound, err) // an invalid name cannot exist
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidTemplateDir, err)
	case errors.Is(err, assets.ErrTemplateRead):
		return wrapError(ErrFile, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel; internal errors stay unexported.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
