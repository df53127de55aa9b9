package language

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchAcceptLanguage picks the supported code that best serves an
// Accept-Language header. The returned value is the caller's own spelling
// from supported. It reports false when the header is empty or malformed,
// or when nothing in supported is a reasonable match.
func MatchAcceptLanguage(header string, supported []string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || len(supported) == 0 {
		return "", false
	}

	preferred, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(preferred) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(strings.TrimSpace(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No || index < 0 || index >= len(codes) {
		return "", false
	}
	return codes[index], true
}
