// Package docsv provides a fluent API for extracting tables from DOCX
// documents and exporting them as per-operator CSV bundles.
//
// Basic usage:
//
//	tables, err := docsv.Open("document.docx").Tables()
//	if err != nil {
//	    // handle error
//	}
//
// Exporting for two operators into a single ZIP:
//
//	operators := []export.Operator{
//	    {Key: "A", Basename: "operator_a_table"},
//	    {Key: "B", Basename: "operator_b_table"},
//	}
//	archive, err := export.ToArchive(tables, operators, "results.zip")
//
// For advanced use cases, the lower-level docx package is also available.
package docsv

import (
	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/model"
)

// Extractor extracts tables from a single document. Each terminal call opens
// and releases its own container handle; nothing is cached between calls.
type Extractor struct {
	filename string
}

// Open prepares an Extractor for the DOCX file at filename. The file itself
// is not touched until a terminal operation like Tables() runs.
//
// Example:
//
//	tables, err := docsv.Open("document.docx").Tables()
func Open(filename string) *Extractor {
	return &Extractor{filename: filename}
}

// Tables extracts the document's meaningful tables in document order.
// Tables whose cells are all empty after normalization are dropped.
func (e *Extractor) Tables() ([]model.Table, error) {
	return docx.ExtractTables(e.filename)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tables := docsv.Must(docsv.Open("document.docx").Tables())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
