package bib2html

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// authorSeparator matches the BibTeX name separator: "and" as a whole
// token between whitespace. Case-sensitive, so "AND" and "Anderson" stay put.
var authorSeparator = regexp.MustCompile(`\s+and\s+`)

// CleanTitle removes every brace from a title. Nothing else is normalized.
func CleanTitle(title string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(title)
}

// FormatAuthors turns a BibTeX author list into "First Last, First Last".
// Names written as "Last, First" are reordered; other names are kept as is.
func FormatAuthors(authors string) string {
	names := authorSeparator.Split(authors, -1)
	formatted := make([]string, 0, len(names))
	for _, name := range names {
		formatted = append(formatted, formatName(strings.TrimSpace(name)))
	}
	return strings.Join(formatted, ", ")
}

// formatName reverses the comma-separated parts of a name and joins them
// with spaces: "Smith, John" -> "John Smith".
func formatName(name string) string {
	if !strings.Contains(name, ",") {
		return name
	}
	parts := strings.Split(name, ",")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Venue describes where an entry appeared. The type is matched
// case-insensitively; types outside the supported set return
// ErrUnsupportedEntryType.
func Venue(e RawEntry) (string, error) {
	switch strings.ToLower(e.Type) {
	case TypeConferencePaper:
		booktitle, err := requireField(e, FieldBookTitle)
		if err != nil {
			return "", err
		}
		return "In " + booktitle, nil
	case TypeJournalArticle:
		return requireField(e, FieldJournal)
	case TypeMisc:
		return requireField(e, FieldHowPublished)
	case TypeTechReport:
		institution, err := requireField(e, FieldInstitution)
		if err != nil {
			return "", err
		}
		return "Technical Report. " + institution, nil
	default:
		return "", &UnsupportedTypeError{Key: e.Key, Type: strings.ToLower(e.Type)}
	}
}

// Badge returns the human-readable category of an entry type, or "" for
// types without one (misc included). Case-insensitive.
func Badge(entryType string) string {
	switch strings.ToLower(entryType) {
	case TypeConferencePaper:
		return "Conference paper"
	case TypeJournalArticle:
		return "Journal paper"
	case TypeTechReport:
		return "Technical Report"
	default:
		return ""
	}
}

// Year parses the year field of an entry.
func Year(e RawEntry) (int, error) {
	raw, ok := e.Field(FieldYear)
	if !ok {
		return 0, fmt.Errorf("%w: entry %s has no year", ErrInvalidYear, e.Key)
	}
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: entry %s: %q is not a number", ErrInvalidYear, e.Key, raw)
	}
	return year, nil
}

// Transform converts one raw entry into a display record.
func Transform(e RawEntry) (Record, error) {
	title, err := requireField(e, FieldTitle)
	if err != nil {
		return Record{}, err
	}
	authors, err := requireField(e, FieldAuthor)
	if err != nil {
		return Record{}, err
	}
	venue, err := Venue(e)
	if err != nil {
		return Record{}, err
	}
	year, err := Year(e)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Key:         e.Key,
		Title:       CleanTitle(title),
		Author:      FormatAuthors(authors),
		Venue:       venue,
		Year:        year,
		Note:        optionalField(e, FieldAnnote),
		URL:         optionalField(e, FieldLink),
		VenueSeries: optionalField(e, FieldSeries),
		Type:        e.Type,
		Badge:       Badge(e.Type),
	}, nil
}

// TransformAll converts every entry, stopping at the first failure.
func TransformAll(entries []RawEntry) ([]Record, error) {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		r, err := Transform(e)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func requireField(e RawEntry, name string) (string, error) {
	v, ok := e.Field(name)
	if !ok {
		return "", &MissingFieldError{Key: e.Key, Field: name}
	}
	return v, nil
}

func optionalField(e RawEntry, name string) string {
	v, _ := e.Field(name)
	return v
}

// MissingFieldError reports an entry lacking a field it needs to be rendered.
// It matches ErrMissingField with errors.Is.
type MissingFieldError struct {
	Key   string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: entry %s has no %s", ErrMissingField, e.Key, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnsupportedTypeError reports an entry whose type has no venue layout.
// It matches ErrUnsupportedEntryType with errors.Is.
type UnsupportedTypeError struct {
	Key  string
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%v: %q (entry %s)", ErrUnsupportedEntryType, e.Type, e.Key)
}

// Is reports whether target is ErrUnsupportedEntryType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedEntryType
}
