package model

import "strings"

// NormalizeCell returns raw with Windows line endings rewritten to "\n" and
// leading/trailing whitespace stripped. Internal whitespace and letter case
// are left untouched.
func NormalizeCell(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
}
