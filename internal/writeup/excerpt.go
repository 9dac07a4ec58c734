package writeup

import (
	"strings"

	"golang.org/x/net/html"
)

// Excerpt strips markup from rendered HTML and returns the first max runes
// of the remaining text, cut at a word boundary. Used for SEO descriptions.
func Excerpt(rendered string, max int) string {
	tok := html.NewTokenizer(strings.NewReader(rendered))
	var b strings.Builder
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			text := strings.TrimSpace(string(tok.Text()))
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text)
			if b.Len() >= max*4 { // enough bytes collected
				break
			}
		}
	}
	text := b.String()
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
