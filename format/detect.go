// Package format provides document container detection.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized document container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".docx" {
		return DOCX
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format. This is more
// reliable than extension-based detection: it checks for the ZIP magic and
// then for WordprocessingML parts inside the archive, so a renamed XLSX or
// a plain ZIP is not mistaken for a document.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if n < 4 {
		return Unknown, nil
	}

	// ZIP magic: PK\x03\x04
	if magic[0] != 0x50 || magic[1] != 0x4B || magic[2] != 0x03 || magic[3] != 0x04 {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}
	return Unknown, nil
}
