package bib2html

import (
	"io"
	"strings"
)

// Entry types with a known venue layout.
const (
	TypeConferencePaper = "inproceedings"
	TypeJournalArticle  = "article"
	TypeTechReport      = "techreport"
	TypeMisc            = "misc"
)

// SupportedTypes lists the entry types the transformer can describe.
var SupportedTypes = []string{TypeJournalArticle, TypeConferencePaper, TypeMisc, TypeTechReport}

// Raw field names read by the transformer.
const (
	FieldTitle        = "title"
	FieldAuthor       = "author"
	FieldYear         = "year"
	FieldBookTitle    = "booktitle"
	FieldJournal      = "journal"
	FieldHowPublished = "howpublished"
	FieldInstitution  = "institution"
	FieldAnnote       = "annote"
	FieldLink         = "link"
	FieldSeries       = "series"
)

// RawEntry is one bibliography entry as produced by an EntryParser.
// Field names are lower-case; values may contain brace markup.
type RawEntry struct {
	Key    string            // citation key
	Type   string            // entry type, e.g. "article"
	Fields map[string]string // field name -> raw value
}

// Field returns the raw value of a field and whether it is present.
func (e RawEntry) Field(name string) (string, bool) {
	v, ok := e.Fields[strings.ToLower(name)]
	return v, ok
}

// Record is the normalized, display-ready form of an entry.
// Templates reference the exported field names ({{.Title}}, {{.Year}}, ...).
type Record struct {
	Key         string `json:"key" yaml:"key"`
	Title       string `json:"title" yaml:"title"`
	Author      string `json:"author" yaml:"author"`
	Venue       string `json:"venue" yaml:"venue"`
	Year        int    `json:"year" yaml:"year"`
	Note        string `json:"note" yaml:"note"`
	URL         string `json:"url" yaml:"url"`
	VenueSeries string `json:"venueseries" yaml:"venueseries"`
	Type        string `json:"type" yaml:"type"`
	Badge       string `json:"badge" yaml:"badge"`
}

// Arrangement selects and orders records before rendering.
type Arrangement struct {
	Skip      []string // entry types to exclude (exact match)
	SortField string   // "year" (default), "author", "title"
	Reverse   bool     // descending order
}

// Input describes one conversion. Either Path or Reader must be set;
// Reader wins when both are.
type Input struct {
	Path        string
	Reader      io.Reader
	Arrangement Arrangement
	Template    string // template file name (default "listtemplate.html")
	Updated     string // "last updated" text exposed to templates as .updated
}

// Result holds the rendered output of a conversion.
type Result struct {
	HTML    []byte
	Records []Record // records in rendered order
	Entries int      // entries parsed before filtering
}
