package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-bib2html"
	"github.com/alnah/go-bib2html/internal/config"
)

type staticLister []string

func (s staticLister) Templates() ([]string, error) { return s, nil }

func TestWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		lister   templateLister
		contains string
	}{
		{"unsupported type", &bib2html.UnsupportedTypeError{Key: "k", Type: "book"}, nil, "--skip book"},
		{"missing field", &bib2html.MissingFieldError{Key: "k", Field: "journal"}, nil, "add a journal field"},
		{"invalid year", fmt.Errorf("%w: k", bib2html.ErrInvalidYear), nil, "numeric year"},
		{"no input", bib2html.ErrNoInput, nil, "-f/--file"},
		{"template not found", bib2html.ErrTemplateNotFound, staticLister{"compact.html", "listtemplate.html"}, "compact.html, listtemplate.html"},
		{"write output", bib2html.ErrWriteOutput, nil, "writable"},
		{"config not found", fmt.Errorf("%w: tried site.yaml, /home/u/.config/go-bib2html/site.yaml", config.ErrConfigNotFound), nil, "create /home/u/.config/go-bib2html/site.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := withHint(tt.err, tt.lister)
			if !errors.Is(err, tt.err) {
				t.Errorf("withHint() lost the original error: %v", err)
			}
			if !strings.Contains(err.Error(), "hint: ") || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("withHint() = %q, want hint containing %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestWithHint_NoHint(t *testing.T) {
	t.Parallel()

	err := errors.New("plain")
	if got := withHint(err, nil); got != err {
		t.Errorf("withHint() = %v, want the error unchanged", got)
	}
}
