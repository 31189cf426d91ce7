package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/docsv/model"
)

// WriteTableCSV serializes one table to a CSV file at destination, creating
// any missing parent directories. An existing file at destination is
// silently replaced. Fields containing the delimiter, a quote, or a line
// break are quoted and embedded quotes doubled; output is UTF-8 with no BOM.
// Returns the destination path.
func WriteTableCSV(table model.Table, destination string) (string, error) {
	if dir := filepath.Dir(destination); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: creating directory %s: %v", ErrWrite, dir, err)
		}
	}

	f, err := os.Create(destination)
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrWrite, destination, err)
	}

	w := csv.NewWriter(f)
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return "", fmt.Errorf("%w: writing %s: %v", ErrWrite, destination, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: writing %s: %v", ErrWrite, destination, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: closing %s: %v", ErrWrite, destination, err)
	}
	return destination, nil
}
