// Package markup renders free-form entry notes (BibTeX annote fields) as HTML.
package markup

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrNoteConversion indicates a note could not be converted to HTML.
var ErrNoteConversion = errors.New("note conversion failed")

// NoteConverter abstracts note to HTML conversion.
type NoteConverter interface {
	ToHTML(note string) (string, error)
}

// GoldmarkConverter converts Markdown notes to HTML fragments using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting for fenced code.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // site stylesheet controls colors
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			// WithUnsafe() is not set: raw HTML in notes is dropped.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts a note to an HTML fragment. Blank notes yield "".
func (c *GoldmarkConverter) ToHTML(note string) (string, error) {
	if strings.TrimSpace(note) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(note), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoteConversion, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// Compile-time interface check.
var _ NoteConverter = (*GoldmarkConverter)(nil)
