package domain

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugInvalid = regexp.MustCompile(`[^a-z0-9_\-]+`)
)

// Slugify derives a URL slug from a title: diacritics are folded to ASCII,
// the result is lower-cased, whitespace runs become "-" and any remaining
// non-word characters are dropped. "Guía de Inicio!" becomes "guia-de-inicio".
func Slugify(title string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, title)
	if err != nil {
		folded = title
	}
	s := strings.ToLower(strings.TrimSpace(folded))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugInvalid.ReplaceAllString(s, "")
}

// SlugCandidate returns the n-th candidate for base: base itself for n == 0,
// then base-1, base-2 and so on.
func SlugCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
