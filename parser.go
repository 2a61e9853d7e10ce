package bib2html

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/nickng/bibtex"
)

// EntryParser turns bibliography source into raw entries.
// Implementations wrap a concrete format library.
type EntryParser interface {
	Parse(ctx context.Context, r io.Reader) ([]RawEntry, error)
}

// bibtexMu serializes bibtex.Parse, which keeps its parse state in
// package-level variables.
var bibtexMu sync.Mutex

// BibTeXParser parses BibTeX using github.com/nickng/bibtex.
//
// String macros (@string) are expanded. Values joined with # are rejected
// with ErrParse: the library keeps only the first part of a concatenation.
type BibTeXParser struct{}

// NewBibTeXParser creates a BibTeXParser.
func NewBibTeXParser() *BibTeXParser {
	return &BibTeXParser{}
}

// Parse reads the whole source and returns its entries in file order.
// Entry types and field names are lower-cased. When a citation key repeats,
// the entry keeps the position of the first occurrence and the fields of
// the last one.
func (p *BibTeXParser) Parse(ctx context.Context, r io.Reader) (entries []RawEntry, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			entries, err = nil, fmt.Errorf("%w: %v", ErrParse, rec)
		}
	}()

	bibtexMu.Lock()
	defer bibtexMu.Unlock()

	bib, err := bibtex.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	entries = make([]RawEntry, 0, len(bib.Entries))
	for _, be := range bib.Entries {
		fields := make(map[string]string, len(be.Fields))
		for name, value := range be.Fields {
			if value == nil {
				continue
			}
			if isConcatenated(value) {
				return nil, fmt.Errorf("%w: entry %s: field %s uses # concatenation, which is not supported",
					ErrParse, be.CiteName, strings.ToLower(name))
			}
			fields[strings.ToLower(name)] = value.String()
		}
		entries = append(entries, RawEntry{
			Key:    be.CiteName,
			Type:   strings.ToLower(be.Type),
			Fields: fields,
		})
	}

	return dedupeByKey(entries), nil
}

// isConcatenated reports whether v came from a # expression, directly or
// through a string macro.
func isConcatenated(v bibtex.BibString) bool {
	switch s := v.(type) {
	case *bibtex.BibComposite:
		return true
	case *bibtex.BibVar:
		return s.Value != nil && isConcatenated(s.Value)
	default:
		return false
	}
}

// dedupeByKey collapses entries sharing a citation key.
func dedupeByKey(entries []RawEntry) []RawEntry {
	index := make(map[string]int, len(entries))
	unique := make([]RawEntry, 0, len(entries))
	for _, e := range entries {
		if i, seen := index[e.Key]; seen {
			unique[i] = e
			continue
		}
		index[e.Key] = len(unique)
		unique = append(unique, e)
	}
	return unique
}

// ParseFile opens path, parses it with p and closes it on every path.
func ParseFile(ctx context.Context, p EntryParser, path string) ([]RawEntry, error) {
	if path == "" {
		return nil, ErrNoInput
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(ctx, f)
}

// Compile-time interface check.
var _ EntryParser = (*BibTeXParser)(nil)
