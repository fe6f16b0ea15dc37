package keyword

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Strips every rune which is not a letter, digit, or whitespace. The small
// allow-list of punctuation ($ + # ') is kept because those characters are
// common leetspeak stand-ins and need to survive until ReverseLeetspeak runs.
var nonTokenChars = regexp.MustCompile(`[^\pL\pN\s$+#']+`)

// Splits free-form message text in to canonical tokens: lower-case, unicode
// normalization with diacritic folding, punctuation stripped, split on
// whitespace runs. Empty tokens are dropped.
//
// Pure and total: never fails, any input produces a (possibly empty) slice.
func Tokenize(text string) []string {
	// the transform chain is stateful and not safe for reuse across calls
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	bare := strings.ToLower(nonTokenChars.ReplaceAllString(text, ""))
	folded, _, err := transform.String(normFunc, bare)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		folded = bare
	}
	return strings.Fields(folded)
}
