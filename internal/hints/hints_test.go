package hints

import (
	"strings"
	"testing"
)

func TestForUnsupportedEntryType(t *testing.T) {
	t.Parallel()

	hint := ForUnsupportedEntryType("phdthesis", []string{"article", "inproceedings"})

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint %q should start with hint prefix", hint)
	}
	if !strings.Contains(hint, "--skip phdthesis") {
		t.Errorf("hint %q should suggest --skip with the type", hint)
	}
	if !strings.Contains(hint, "article, inproceedings") {
		t.Errorf("hint %q should list supported types", hint)
	}
}

func TestForUnsupportedEntryType_NoSupportedList(t *testing.T) {
	t.Parallel()

	hint := ForUnsupportedEntryType("book", nil)
	if strings.Contains(hint, "supported types") {
		t.Errorf("hint %q should not list supported types", hint)
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		want      string
	}{
		{"lists available", []string{"compact.html", "listtemplate.html"}, "available: compact.html, listtemplate.html"},
		{"suggests template dir", nil, "--template-dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForTemplateNotFound(tt.available)
			if !strings.Contains(hint, tt.want) {
				t.Errorf("ForTemplateNotFound(%v) = %q, want to contain %q", tt.available, hint, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	paths := []string{"bib2html.yaml", "/home/u/.config/go-bib2html/bib2html.yaml"}
	hint := ForConfigNotFound(paths)

	if !strings.Contains(hint, "--config") {
		t.Errorf("hint %q should mention --config", hint)
	}
	if !strings.Contains(hint, "create /home/u/.config/go-bib2html/bib2html.yaml") {
		t.Errorf("hint %q should suggest the user config path", hint)
	}
}

func TestForMissingField(t *testing.T) {
	t.Parallel()

	if got := ForMissingField(""); got != "" {
		t.Errorf("ForMissingField(\"\") = %q, want empty", got)
	}
	if got := ForMissingField("booktitle"); !strings.Contains(got, "add a booktitle field") {
		t.Errorf("ForMissingField(booktitle) = %q", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"invalid year":     ForInvalidYear(),
		"missing input":    ForMissingInput(),
		"output directory": ForOutputDirectory(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint %q should start with hint prefix", name, hint)
		}
	}
}
