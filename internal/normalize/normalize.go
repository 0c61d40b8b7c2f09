// Package normalize transliterates German umlauts and the sharp-s into
// their ASCII digraphs for payee names and output filenames.
package normalize

import "strings"

var transliterator = strings.NewReplacer(
	"ä", "ae", "Ä", "Ae",
	"ö", "oe", "Ö", "Oe",
	"ü", "ue", "Ü", "Ue",
	"ß", "ss",
)

// Transliterate replaces every umlaut and sharp-s with its ASCII digraph,
// preserving case per pair. Idempotent: the output contains no characters
// from the replacement domain.
func Transliterate(s string) string {
	return transliterator.Replace(s)
}

var filenameCleaner = strings.NewReplacer(
	" ", "_",
	".", "",
	":", "",
)

// Filename builds a filesystem-safe name component: transliterated, spaces
// replaced by underscores, periods and colons stripped.
func Filename(s string) string {
	return filenameCleaner.Replace(Transliterate(s))
}
