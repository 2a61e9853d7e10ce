package bib2html

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options resolved in NewConverter.
type converterConfig struct {
	templateDir string
	labels      map[string]string
}

// WithParser replaces the BibTeX parser.
func WithParser(p EntryParser) Option {
	return func(c *Converter) {
		c.parser = p
	}
}

// WithTemplateDir loads templates from dir first, falling back to the
// built-in templates for names dir does not contain.
func WithTemplateDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.templateDir = dir
	}
}

// WithTemplateLoader sets a custom template loader.
// Takes precedence over WithTemplateDir.
func WithTemplateLoader(loader TemplateLoader) Option {
	return func(c *Converter) {
		c.loader = loader
	}
}

// WithLabels overrides label classes per entry type. Types not listed keep
// their built-in class; unknown types still get DefaultLabel.
func WithLabels(overrides map[string]string) Option {
	return func(c *Converter) {
		c.cfg.labels = overrides
	}
}
