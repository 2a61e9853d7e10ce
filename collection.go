package bib2html

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// DefaultSortField is used when an Arrangement names no sort field.
const DefaultSortField = "year"

// sortKeys registers the record fields usable for sorting.
var sortKeys = map[string]func(a, b Record) int{
	"year":   func(a, b Record) int { return cmp.Compare(a.Year, b.Year) },
	"author": func(a, b Record) int { return strings.Compare(a.Author, b.Author) },
	"title":  func(a, b Record) int { return strings.Compare(a.Title, b.Title) },
}

// SortFields returns the registered sort field names, sorted.
func SortFields() []string {
	names := make([]string, 0, len(sortKeys))
	for name := range sortKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateSortField returns ErrInvalidSortField for unregistered names.
// The empty name is valid and means DefaultSortField.
func ValidateSortField(field string) error {
	if field == "" {
		return nil
	}
	if _, ok := sortKeys[field]; !ok {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(SortFields(), ", "))
	}
	return nil
}

// Filter returns the records whose Type is not listed in skip.
// Matching is exact and case-sensitive. The input slice is not modified.
func Filter(records []Record, skip []string) []Record {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if !slices.Contains(skip, r.Type) {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortBy sorts records in place by field, ascending unless reverse is set.
// The sort is stable in both directions: records with equal keys keep their
// relative input order.
func SortBy(records []Record, field string, reverse bool) error {
	if field == "" {
		field = DefaultSortField
	}
	if err := ValidateSortField(field); err != nil {
		return err
	}

	compare := sortKeys[field]
	slices.SortStableFunc(records, func(a, b Record) int {
		if reverse {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return nil
}

// Arrange filters then sorts, returning a new slice.
// Applying it again to its own output with the same Arrangement is a no-op.
func Arrange(records []Record, a Arrangement) ([]Record, error) {
	arranged := Filter(records, a.Skip)
	if err := SortBy(arranged, a.SortField, a.Reverse); err != nil {
		return nil, err
	}
	return arranged, nil
}
