package helper

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey folds a display name into the key used for case-insensitive
// uniqueness: trimmed, NFC-normalized, Unicode case-folded.
// SQLite's lower() only folds ASCII, so the key is computed here and stored.
func NameKey(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	// a Caser keeps state, one per call
	return cases.Fold().String(s)
}
