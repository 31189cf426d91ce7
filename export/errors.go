package export

import "errors"

// Export-related errors.
var (
	ErrNoTables      = errors.New("export: no tables to export")
	ErrNoOperators   = errors.New("export: no operators configured")
	ErrInvalidTarget = errors.New("export: destination exists and is not a directory")
	ErrWrite         = errors.New("export: write failed")
)
