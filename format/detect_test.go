package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.docx", DOCX},
		{"REPORT.DOCX", DOCX},
		{"archive.zip", Unknown},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

// zipWith builds an in-memory ZIP containing the given file names.
func zipWith(t *testing.T, names ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", name, err)
		}
		w.Write([]byte("content"))
	}
	zw.Close()
	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"docx", zipWith(t, "[Content_Types].xml", "word/document.xml"), DOCX},
		{"xlsx is not docx", zipWith(t, "[Content_Types].xml", "xl/workbook.xml"), Unknown},
		{"plain zip", zipWith(t, "readme.txt"), Unknown},
		{"not a zip", []byte("just some text content"), Unknown},
		{"too short", []byte("PK"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader(tt.data), int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	if DOCX.String() != "DOCX" {
		t.Errorf("DOCX.String() = %q", DOCX.String())
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("Unknown.String() = %q", Unknown.String())
	}
	if DOCX.Extension() != ".docx" {
		t.Errorf("DOCX.Extension() = %q", DOCX.Extension())
	}
}
