package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads the templates compiled into the binary.
// Implements TemplateLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a template from embedded assets by file name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// ListTemplates returns the names of all embedded templates.
func (e *EmbeddedLoader) ListTemplates() ([]string, error) {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
