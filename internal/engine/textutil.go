package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// NormalizeJD prepares a pasted job description for tokenization. JDs copied
// from job boards often arrive as HTML fragments; tags are stripped and
// whitespace collapsed. Plain text passes through untouched apart from
// trimming.
func NormalizeJD(s string) string {
	if strings.Contains(s, "<") && strings.Contains(s, ">") {
		if text, ok := stripHTML(s); ok {
			s = text
		}
	}
	return strings.TrimSpace(s)
}

// stripHTML extracts the text content of an HTML fragment. Returns ok=false
// when parsing fails so the caller keeps the original string.
func stripHTML(s string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", false
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}
				sb.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String(), true
}
