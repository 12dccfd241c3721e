package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugFallback is returned when slugification leaves nothing usable, so a
// post always gets a routable identifier.
const SlugFallback = "post"

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// foldDiacritics decomposes to NFD, drops combining marks, and recomposes,
// so "Café" folds to "Cafe" before the ASCII-only pass.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug converts arbitrary text into a lower-hyphen slug matching
// [a-z0-9]+(-[a-z0-9]+)*. The function is total and idempotent:
// Slug(Slug(x)) == Slug(x), and the result is never empty.
func Slug(value string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	if folded, _, err := transform.String(foldDiacritics, lowered); err == nil {
		lowered = folded
	}
	out := nonAlnumRun.ReplaceAllString(lowered, "-")
	out = strings.Trim(out, "-")
	if out == "" {
		return SlugFallback
	}
	return out
}
