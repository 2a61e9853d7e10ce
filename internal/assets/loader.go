package assets

// TemplateLoader defines the contract for loading list templates.
// Implementations may load from embedded files, a directory on disk, etc.
type TemplateLoader interface {
	// LoadTemplate loads a template by file name (e.g. "listtemplate.html").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidTemplateName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// ListTemplates returns the names of the templates this loader can serve, sorted.
	ListTemplates() ([]string, error)
}

// DefaultTemplateName is the name of the built-in list template.
const DefaultTemplateName = "listtemplate.html"
