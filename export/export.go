// Package export writes extracted tables as per-operator CSV file sets,
// either into a directory tree or bundled into a single ZIP archive.
//
// An operator is a named export consumer. For each operator the same tables
// are written under Operator_<key>/<basename>_<n>.csv, numbered from 1 in
// table order. The two output modes are mutually exclusive per call and
// produce the same relative layout.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/docsv/model"
)

// Operator is a named export consumer identified by a short key and the
// basename used for its CSV files.
type Operator struct {
	Key      string
	Basename string
}

// operatorDir returns the subdirectory name for an operator.
func operatorDir(op Operator) string {
	return "Operator_" + op.Key
}

// ToDirectory writes one CSV file set per operator under root and returns
// the written file paths. Existing files are silently replaced; files
// written before a failure are not rolled back.
//
// Fails with ErrNoTables before any file is touched when tables is empty,
// with ErrNoOperators when the registry is empty, and with ErrInvalidTarget
// when root exists and is not a directory.
func ToDirectory(tables []model.Table, operators []Operator, root string) ([]string, error) {
	if err := checkInput(tables, operators); err != nil {
		return nil, err
	}

	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTarget, root)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating directory %s: %v", ErrWrite, root, err)
	}

	var written []string
	for _, op := range operators {
		dir := filepath.Join(root, operatorDir(op))
		for i, table := range tables {
			destination := filepath.Join(dir, fmt.Sprintf("%s_%d.csv", op.Basename, i+1))
			path, err := WriteTableCSV(table, destination)
			if err != nil {
				return nil, err
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// ToArchive performs a directory-mode export into a scratch directory, packs
// every produced CSV into a single deflate-compressed ZIP archive using the
// Operator_<key>/<basename>_<n>.csv relative path as the entry name, and
// returns the archive's final path. The scratch directory is removed on
// every exit path. A ".zip" suffix is appended when archivePath lacks one.
func ToArchive(tables []model.Table, operators []Operator, archivePath string) (string, error) {
	if err := checkInput(tables, operators); err != nil {
		return "", err
	}

	if !strings.HasSuffix(archivePath, ".zip") {
		archivePath += ".zip"
	}

	scratch, err := os.MkdirTemp("", "docsv-export-")
	if err != nil {
		return "", fmt.Errorf("%w: creating scratch directory: %v", ErrWrite, err)
	}
	defer os.RemoveAll(scratch)

	if _, err := ToDirectory(tables, operators, scratch); err != nil {
		return "", err
	}

	if err := writeArchive(scratch, archivePath); err != nil {
		return "", err
	}
	return archivePath, nil
}

// checkInput validates the export preconditions shared by both modes.
func checkInput(tables []model.Table, operators []Operator) error {
	if len(tables) == 0 {
		return ErrNoTables
	}
	if len(operators) == 0 {
		return ErrNoOperators
	}
	return nil
}

// writeArchive packs every CSV under scratchRoot into a ZIP at archivePath.
// Entry names are slash-separated paths relative to scratchRoot; WalkDir
// visits lexically, so the entry order is deterministic.
func writeArchive(scratchRoot, archivePath string) error {
	f, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, archivePath, err)
	}

	zw := zip.NewWriter(f)
	walkErr := filepath.WalkDir(scratchRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".csv" {
			return nil
		}

		rel, err := filepath.Rel(scratchRoot, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(w, src)
		src.Close()
		return err
	})
	if walkErr != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("%w: archiving %s: %v", ErrWrite, archivePath, walkErr)
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%w: finalizing %s: %v", ErrWrite, archivePath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWrite, archivePath, err)
	}
	return nil
}
