package session

import (
	"regexp"
	"strings"
)

// questionMarker matches planning markers like "Q1:" or "q3." that the
// model sometimes narrates instead of speaking naturally.
var questionMarker = regexp.MustCompile(`(?i)\bq\d+[:.]`)

// metadataFilter drops model text that is planning or meta-commentary
// rather than speech: markdown emphasis, stage directions in parentheses,
// and phrases announcing upcoming questions. Matched text is never
// forwarded as a transcript.
type metadataFilter struct {
	prefixes []string
	phrases  []string
}

func newMetadataFilter(t Tuning) *metadataFilter {
	phrases := make([]string, len(t.MetadataPhrases))
	for i, p := range t.MetadataPhrases {
		phrases[i] = strings.ToLower(p)
	}
	return &metadataFilter{prefixes: t.MetadataPrefixes, phrases: phrases}
}

// Allow reports whether the text chunk should be forwarded to the client.
func (f *metadataFilter) Allow(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return false
		}
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range f.phrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if questionMarker.MatchString(trimmed) {
		return false
	}
	return true
}
