package schema

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label converts an attribute name to the human-readable form used in
// diagnostics: underscores become spaces and the first word is capitalized,
// so "created_at" renders as "Created at".
func Label(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	first, rest, found := strings.Cut(label, " ")
	// A Caser is stateful; build one per call so concurrent validation
	// needs no synchronization.
	first = cases.Title(language.English).String(first)
	if found {
		return first + " " + rest
	}
	return first
}
