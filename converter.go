package bib2html

import (
	"bytes"
	"context"

	"github.com/apex/log"
)

// Converter runs the bibliography pipeline: parse, transform, arrange, render.
// Create with NewConverter and call Convert once per bibliography. A
// Converter holds no state between calls.
type Converter struct {
	cfg      converterConfig
	parser   EntryParser
	loader   TemplateLoader
	labels   LabelLookup
	renderer *Renderer
}

// NewConverter creates a Converter with the BibTeX parser and the built-in
// templates unless options say otherwise.
// Returns ErrInvalidTemplateDir if WithTemplateDir names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		parser: NewBibTeXParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		loader, err := NewTemplateLoader(c.cfg.templateDir)
		if err != nil {
			return nil, err
		}
		c.loader = loader
	}

	c.labels = NewLabelLookup(c.cfg.labels)
	c.renderer = NewRenderer(c.loader, c.labels)

	return c, nil
}

// Convert renders one bibliography. Any malformed entry, unsupported type or
// template problem fails the whole conversion; nothing is partially rendered.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	entries, err := c.parse(ctx, input)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"entries": len(entries), "file": input.Path}).Debug("parsed bibliography")

	records, err := TransformAll(entries)
	if err != nil {
		return nil, err
	}

	arranged, err := Arrange(records, input.Arrangement)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"kept":    len(arranged),
		"skipped": len(records) - len(arranged),
		"sort":    sortFieldOrDefault(input.Arrangement.SortField),
		"reverse": input.Arrangement.Reverse,
	}).Debug("arranged records")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.renderer.Render(&buf, input.Template, arranged, input.Updated); err != nil {
		return nil, err
	}

	return &Result{
		HTML:    buf.Bytes(),
		Records: arranged,
		Entries: len(entries),
	}, nil
}

// Templates lists the template names available to Convert.
func (c *Converter) Templates() ([]string, error) {
	return c.loader.ListTemplates()
}

// Labels returns the label lookup used for rendering.
func (c *Converter) Labels() LabelLookup {
	return c.labels
}

func (c *Converter) parse(ctx context.Context, input Input) ([]RawEntry, error) {
	if input.Reader != nil {
		return c.parser.Parse(ctx, input.Reader)
	}
	return ParseFile(ctx, c.parser, input.Path)
}

func sortFieldOrDefault(field string) string {
	if field == "" {
		return DefaultSortField
	}
	return field
}
