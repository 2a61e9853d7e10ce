// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForUnsupportedEntryType suggests excluding an entry type the renderer
// cannot describe.
func ForUnsupportedEntryType(entryType string, supported []string) string {
	hint := "exclude it with --skip " + entryType
	if len(supported) > 0 {
		hint += "; supported types: " + strings.Join(supported, ", ")
	}
	return format(hint)
}

// ForInvalidYear returns a hint for entries without a numeric year.
func ForInvalidYear() string {
	return format("every entry needs a numeric year field, e.g. year = {2024}")
}

// ForMissingField returns a hint naming the field an entry must provide.
func ForMissingField(field string) string {
	if field == "" {
		return ""
	}
	return format("add a " + field + " field to the entry")
}

// ForMissingInput returns a hint for runs without an input file.
func ForMissingInput() string {
	return format("pass -f/--file or set input in the config file")
}

// ForTemplateNotFound lists the templates that can be used instead.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("use --template-dir to point at your template directory")
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/bib2html.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-bib2html") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
