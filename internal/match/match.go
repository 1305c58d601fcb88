// Package match provides the pure text matchers the classifier, scorer, and
// lead builder are built from. Every function is total: empty or garbage
// input yields empty output, never an error.
package match

import (
	"regexp"
	"sort"
	"strings"
)

var emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Emails returns every email-shaped substring of text, deduplicated and
// sorted, with the original casing preserved.
func Emails(text string) []string {
	found := emailRE.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, e := range found {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Keywords returns the subset of terms contained in text, case-insensitive,
// in the order the terms were given.
func Keywords(text string, terms []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			out = append(out, term)
		}
	}
	return out
}

// Triggers returns the distinct triggers appearing in text. Containment is
// raw case-insensitive substring, not word-boundary; the company blacklist
// in the aggregator is the only whole-word matcher.
func Triggers(text string, triggers []string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, trigger := range triggers {
		if strings.Contains(lower, strings.ToLower(trigger)) {
			hits = append(hits, trigger)
		}
	}
	return hits
}

// Collapse squeezes all whitespace runs in text down to single spaces and
// trims the ends.
func Collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// TruncateRunes cuts s to at most n runes. Cutting by runes rather than
// bytes keeps multi-byte content intact.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
