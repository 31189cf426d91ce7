// Package docx extracts tables from DOCX (Office Open XML) documents.
//
// A DOCX file is a ZIP archive whose main content lives in word/document.xml.
// The package walks the w:tbl elements of that part in document order,
// normalizes every cell, and drops tables with no content at all.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/docsv/model"
)

// Reader-related errors.
var (
	ErrNotFound      = errors.New("docx: file not found")
	ErrInvalidFormat = errors.New("docx: invalid or corrupted document")
)

// Reader provides access to the tables of a DOCX document.
type Reader struct {
	zipReader *zip.ReadCloser
	document  *documentXML
	tables    []model.Table
}

// Open opens a DOCX file for reading. The returned Reader must be closed
// when done.
func Open(filename string) (*Reader, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, err
	}

	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %v", ErrInvalidFormat, err)
	}

	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Tables returns the document's meaningful tables in document order. Tables
// whose cells are all empty after normalization are not included.
func (r *Reader) Tables() []model.Table {
	return r.tables
}

// ExtractTables opens the DOCX file at path, extracts its meaningful tables,
// and releases the underlying archive before returning.
func ExtractTables(path string) ([]model.Table, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	tables := make([]model.Table, len(r.tables))
	copy(tables, r.tables)
	return tables, nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("%w: missing required file: %s", ErrInvalidFormat, name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses the main document content and collects its tables.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("%w: unmarshaling document.xml: %v", ErrInvalidFormat, err)
	}

	r.collectTables()
	return nil
}

// collectTables converts the body's w:tbl elements, keeping only tables
// with content.
func (r *Reader) collectTables() {
	if r.document == nil || r.document.Body == nil {
		return
	}

	for _, tbl := range r.document.Body.Tables {
		table := buildTable(tbl)
		if table.HasContent() {
			r.tables = append(r.tables, table)
		}
	}
}
