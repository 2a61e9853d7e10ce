package assets

import (
	"errors"
	"sort"
)

// Resolver combines a custom directory loader with the embedded templates.
// When a custom loader is configured it is tried first, and the embedded
// templates are used only when the custom directory lacks the template.
type Resolver struct {
	custom   TemplateLoader // nil if no template directory configured
	embedded TemplateLoader
}

// NewResolver creates a Resolver.
// If templateDir is empty, only embedded templates are used.
// Returns error if templateDir is set but invalid.
func NewResolver(templateDir string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if templateDir != "" {
		fsLoader, err := NewFilesystemLoader(templateDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom directory first if available.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// ListTemplates returns the union of custom and embedded template names.
func (r *Resolver) ListTemplates() ([]string, error) {
	names, err := r.embedded.ListTemplates()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.ListTemplates()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names)+len(custom))
	merged := make([]string, 0, len(names)+len(custom))
	for _, name := range append(custom, names...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	sort.Strings(merged)
	return merged, nil
}

// HasCustomLoader returns true if a template directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
