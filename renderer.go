package bib2html

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/alnah/go-bib2html/internal/markup"
)

// Renderer executes a list template over arranged records.
//
// Templates see three bindings:
//
//	.items       []Record in display order
//	.labelColor  func(entryType string) string, use as {{call $.labelColor .Type}}
//	.updated     "last updated" text, possibly empty
//
// and two functions: labelColor (same lookup) and markdown (note to HTML).
type Renderer struct {
	loader TemplateLoader
	labels LabelLookup
	notes  markup.NoteConverter
}

// NewRenderer creates a Renderer loading templates through loader.
func NewRenderer(loader TemplateLoader, labels LabelLookup) *Renderer {
	return &Renderer{
		loader: loader,
		labels: labels,
		notes:  markup.NewGoldmarkConverter(),
	}
}

// Render loads the named template, executes it and writes the result to w.
// Nothing is written when loading, parsing or execution fails.
func (r *Renderer) Render(w io.Writer, name string, records []Record, updated string) error {
	if name == "" {
		name = DefaultTemplate
	}

	content, err := r.loader.LoadTemplate(name)
	if err != nil {
		return err
	}

	tmpl, err := template.New(name).
		Funcs(r.funcs()).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, name, err)
	}

	bindings := map[string]any{
		"items":      records,
		"labelColor": r.labels.Class,
		"updated":    updated,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, bindings); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"labelColor": r.labels.Class,
		"markdown": func(note string) (template.HTML, error) {
			html, err := r.notes.ToHTML(note)
			if err != nil {
				return "", err
			}
			return template.HTML(html), nil // #nosec G203 -- goldmark output with raw HTML disabled
		},
	}
}
