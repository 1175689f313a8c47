package rank

import (
	"regexp"
	"strings"
	"unicode"
)

// headerWindow bounds how far into a resume the contact/name heuristics look.
// Resumes put identity info at the top; scanning further mostly finds noise.
const headerWindow = 1000

// tokenRe splits text into word tokens. Single-character tokens are kept so
// vocabulary entries like "c" or "r" remain matchable.
var tokenRe = regexp.MustCompile(`\w+`)

// TokenSet tokenizes text into a set of lowercase word tokens.
func TokenSet(text string) map[string]bool {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// header returns the first headerWindow runes of text.
func header(text string) string {
	runes := []rune(text)
	if len(runes) <= headerWindow {
		return text
	}
	return string(runes[:headerWindow])
}

// TitleCase uppercases the first letter of every word and lowercases the
// rest, where a word starts after any non-letter.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// isUpperCased reports whether s has at least one cased rune and no
// lowercase runes.
func isUpperCased(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// isTitleCased reports whether every cased run in s starts with an uppercase
// rune followed only by lowercase runes.
func isTitleCased(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
		default:
			prevCased = false
		}
	}
	return cased
}

// containsDigit reports whether s contains any decimal digit.
func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// digitCount counts decimal digits in s.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
