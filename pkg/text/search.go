package text

import (
	"strings"
	"unicode"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases text for case-insensitive substring matching. A new Caser
// is built per call because cases.Caser is stateful and not safe for
// concurrent use.
func Fold(in string) string {
	return cases.Lower(language.Und).String(in)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Normalize text to aid in the fuzzy suggestion process. In particular, we
// remove diacritics, "ö" becomes "o". Note that Mn is the unicode key for
// nonspacing marks.
func Normalize(in string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, in)
	if err != nil {
		return in
	}
	return out
}

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}

// Preview collapses body text into a single line preview truncated to
// width cells, like a two line clamp on a card.
func Preview(body string, width int) string {
	if width <= 0 {
		return ""
	}
	flat := strings.Join(strings.Fields(body), " ")
	return TruncateWithTail(flat, uint(width), Ellipsis)
}

// Wrap word-wraps text to width cells. A non-positive width disables wrapping.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
