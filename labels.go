package bib2html

// DefaultLabel is the class returned for entry types without a mapping.
const DefaultLabel = "label-default"

// defaultLabelClasses maps entry types to Bootstrap label classes.
var defaultLabelClasses = map[string]string{
	TypeConferencePaper: "label-success",
	TypeJournalArticle:  "label-primary",
	TypeTechReport:      "label-default",
}

// LabelLookup maps an entry type to a CSS class name. It is total: unknown
// types get DefaultLabel. The zero value uses the built-in mapping.
type LabelLookup struct {
	classes map[string]string
}

// NewLabelLookup returns the built-in mapping with overrides applied on top.
func NewLabelLookup(overrides map[string]string) LabelLookup {
	classes := make(map[string]string, len(defaultLabelClasses)+len(overrides))
	for entryType, class := range defaultLabelClasses {
		classes[entryType] = class
	}
	for entryType, class := range overrides {
		classes[entryType] = class
	}
	return LabelLookup{classes: classes}
}

// Class returns the class for entryType (exact match).
func (l LabelLookup) Class(entryType string) string {
	classes := l.classes
	if classes == nil {
		classes = defaultLabelClasses
	}
	if class, ok := classes[entryType]; ok {
		return class
	}
	return DefaultLabel
}
