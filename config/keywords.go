package config

import "strings"

// defaultNegativeKeywords flag summaries that hint at schedule or quality
// trouble. The slice order is significant: keyword-frequency ties in the
// risk ranking resolve by position in this list, so it must stay a list
// rather than a set.
var defaultNegativeKeywords = []string{
	"bug", "delay", "risk", "difficulty", "blocker", "error",
	"failure", "challenge", "problem", "poor", "crash", "tricky",
}

// DefaultNegativeKeywords returns a copy of the baked-in keyword list.
func DefaultNegativeKeywords() []string {
	return append([]string(nil), defaultNegativeKeywords...)
}

// NegativeKeywords merges a config-file override onto the defaults. A
// non-empty override replaces the whole list; entries are trimmed,
// lowercased, and deduplicated while keeping their original order.
func NegativeKeywords(override []string) []string {
	source := override
	if len(source) == 0 {
		source = defaultNegativeKeywords
	}
	seen := make(map[string]struct{}, len(source))
	out := make([]string, 0, len(source))
	for _, kw := range source {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	if len(out) == 0 {
		return DefaultNegativeKeywords()
	}
	return out
}
