package rank

import (
	"regexp"
	"strings"
)

// Contact holds extracted contact fields. Zero fields mean "not found with
// sufficient confidence" — the regexes below never produce an empty match,
// so an empty string is unambiguous.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// HasEmail reports whether an email address was extracted.
func (c Contact) HasEmail() bool { return c.Email != "" }

// HasPhone reports whether a phone number was extracted.
func (c Contact) HasPhone() bool { return c.Phone != "" }

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phoneRe matches phone-shaped substrings: optional 1–3 digit country code,
// a 3-digit group (optionally parenthesized), a 3-digit group, then a 4–5
// digit group, with -, . or space separators.
var phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4,5}`)

// phoneKeywords are tried in order; the first keyword whose trailing window
// yields a valid candidate wins and the whole search stops.
var phoneKeywords = []string{"Phone:", "Tel:", "Contact:", "Mobile:", "Cell:", "phone", "mobile"}

// keywordScan is how many characters after a keyword are scanned for a phone.
const keywordScan = 50

// ExtractContact extracts email and phone from resume text. The email search
// covers the full text; the phone search is restricted to the header window,
// preferring keyword-labelled numbers over a bare pattern scan.
func ExtractContact(text string) Contact {
	c := Contact{Email: emailRe.FindString(text)}

	area := header(text)

	for _, keyword := range phoneKeywords {
		idx := strings.Index(area, keyword)
		if idx < 0 {
			continue
		}
		start := idx + len(keyword)
		end := start + keywordScan
		if end > len(area) {
			end = len(area)
		}
		if phone := firstValidPhone(area[start:end]); phone != "" {
			c.Phone = phone
			return c
		}
	}

	c.Phone = firstValidPhone(area)
	return c
}

// firstValidPhone returns the first phone-shaped match whose digit count is
// plausible (10–15 after stripping separators), or "".
func firstValidPhone(s string) string {
	for _, m := range phoneRe.FindAllString(s, -1) {
		m = strings.TrimSpace(m)
		if n := digitCount(m); n >= 10 && n <= 15 {
			return m
		}
	}
	return ""
}
