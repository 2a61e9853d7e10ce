package bib2html

import "testing"

func TestLabelLookup_Class(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides map[string]string
		entryType string
		want      string
	}{
		{"inproceedings", nil, "inproceedings", "label-success"},
		{"article", nil, "article", "label-primary"},
		{"techreport", nil, "techreport", "label-default"},
		{"misc falls back", nil, "misc", DefaultLabel},
		{"unknown falls back", nil, "book", DefaultLabel},
		{"exact match only", nil, "Article", DefaultLabel},
		{"override replaces built-in", map[string]string{"article": "label-info"}, "article", "label-info"},
		{"override adds type", map[string]string{"misc": "label-warning"}, "misc", "label-warning"},
		{"override keeps other built-ins", map[string]string{"misc": "label-warning"}, "inproceedings", "label-success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewLabelLookup(tt.overrides).Class(tt.entryType); got != tt.want {
				t.Errorf("Class(%q) = %q, want %q", tt.entryType, got, tt.want)
			}
		})
	}
}

func TestLabelLookup_ZeroValue(t *testing.T) {
	t.Parallel()

	var l LabelLookup
	if got := l.Class("article"); got != "label-primary" {
		t.Errorf("zero LabelLookup Class(article) = %q, want label-primary", got)
	}
	if got := l.Class("misc"); got != DefaultLabel {
		t.Errorf("zero LabelLookup Class(misc) = %q, want %q", got, DefaultLabel)
	}
}
