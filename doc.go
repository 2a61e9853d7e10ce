// Package bib2html renders BibTeX bibliographies as HTML publication lists.
//
// # Quick Start
//
// Create a converter and convert a bibliography file:
//
//	conv, err := bib2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, bib2html.Input{
//	    Path: "publications.bib",
//	    Arrangement: bib2html.Arrangement{
//	        SortField: "year",
//	        Reverse:   true,
//	        Skip:      []string{"techreport"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.HTML)
//
// # Conversion Pipeline
//
//  1. Parsing: BibTeX into RawEntry values, types and field names lower-cased
//  2. Transformation: each entry into a Record (title braces removed, authors
//     reordered to "First Last", venue and badge derived from the entry type)
//  3. Arrangement: records of skipped types dropped, then a stable sort by
//     year, author or title
//  4. Rendering: an html/template executed with the records, the label lookup
//     and the "last updated" text
//
// Any entry that cannot be transformed aborts the whole conversion. Supported
// entry types are inproceedings, article, techreport and misc.
//
// # Templates
//
// Templates are looked up in the directory set with WithTemplateDir first,
// then among the built-in templates (listtemplate.html, compact.html). They
// receive:
//
//	.items       records in display order
//	.labelColor  label class lookup, called as {{call $.labelColor .Type}}
//	.updated     "last updated" text
//
// and the functions labelColor and markdown. Referencing a field a Record
// does not have fails with ErrTemplateRender.
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	if errors.Is(err, bib2html.ErrUnsupportedEntryType) {
//	    // entry type has no venue layout
//	}
//
// MissingFieldError and UnsupportedTypeError carry the citation key of the
// offending entry.
package bib2html
