package speakers

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	honorificPattern     = regexp.MustCompile(`^(elder|president|sister|bishop)\s+`)
	middleInitialPattern = regexp.MustCompile(`\s+\p{L}\.\s+`)
	nonWordPattern       = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// Slug derives the identity key for a raw speaker name. Names that differ
// only by a leading honorific, a middle initial, punctuation, case or
// diacritics produce the same slug. An empty result means the name carries
// no identity.
func Slug(name string) string {
	s := foldDiacritics(strings.ToLower(strings.TrimSpace(asciiSpaces(name))))

	for {
		stripped := honorificPattern.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	for {
		collapsed := middleInitialPattern.ReplaceAllString(s, " ")
		if collapsed == s {
			break
		}
		s = collapsed
	}

	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(strings.TrimSpace(s), "-")
	return s
}

// asciiSpaces maps every Unicode space rune (NBSP, em space) to ' '; the \s
// classes above match ASCII whitespace only
func asciiSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
