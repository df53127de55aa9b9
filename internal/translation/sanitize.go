package translation

import (
	"strings"

	"golang.org/x/net/html"
)

// Sanitize turns provider output into display text: tags, comments, and
// doctype declarations are dropped, entities are decoded once, <br> becomes a
// newline, and surrounding whitespace is trimmed. Script and style contents
// are discarded.
func Sanitize(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.TrimSpace(raw)
	}

	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				skipDepth++
			case "br":
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}
