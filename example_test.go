package bib2html_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/alnah/go-bib2html"
)

func ExampleFormatAuthors() {
	fmt.Println(bib2html.FormatAuthors("Smith, John and Jane Doe"))
	// Output: John Smith, Jane Doe
}

func ExampleTransform() {
	record, err := bib2html.Transform(bib2html.RawEntry{
		Key:  "smith20",
		Type: "inproceedings",
		Fields: map[string]string{
			"title":     "{Deep} Learning",
			"author":    "Smith, John",
			"booktitle": "ICML",
			"year":      "2020",
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(record.Title)
	fmt.Println(record.Venue)
	fmt.Println(record.Badge)
	// Output:
	// Deep Learning
	// In ICML
	// Conference paper
}

func ExampleConverter_Convert() {
	conv, err := bib2html.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), bib2html.Input{
		Path: "publications.bib",
		Arrangement: bib2html.Arrangement{
			SortField: "year",
			Reverse:   true,
			Skip:      []string{"techreport"},
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	_, _ = os.Stdout.Write(result.HTML)
}
