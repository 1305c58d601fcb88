// Package score computes the per-post numeric scores: buying intent and
// urgency on 1-5, composite signal strength on 1-10. Scoring is pure keyword
// and digit arithmetic over the post text and engagement string; identical
// inputs always produce identical scores.
package score

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/genesis-labs/signal-radar/internal/match"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

var digitsRE = regexp.MustCompile(`\d+`)

// Engine scores posts using the injected term lists.
type Engine struct {
	rules rules.Set
}

// NewEngine creates an Engine over the given rule set.
func NewEngine(rs rules.Set) *Engine {
	return &Engine{rules: rs}
}

// BuyingIntent estimates how ready the author is to seek a solution, 1-5.
// Base 1, plus one point per high-intent term hit plus one for a question
// mark, capped at +4.
func (e *Engine) BuyingIntent(text string) int {
	hits := len(match.Triggers(text, e.rules.HighIntentTerms))
	if strings.Contains(text, "?") {
		hits++
	}
	return clamp(1+minInt(4, hits), 1, 5)
}

// Urgency estimates time pressure in the text, 1-5. Base 1 plus one point
// per urgency term hit, clamped.
func (e *Engine) Urgency(text string) int {
	hits := len(match.Triggers(text, e.rules.UrgencyTerms))
	return clamp(1+hits, 1, 5)
}

// SignalStrength combines buying intent, urgency, the engagement tier, and
// the classifier's rule-hit count (capped at 2) into the 1-10 composite.
func (e *Engine) SignalStrength(buyingIntent, urgency int, engagement string, ruleHits int) int {
	raw := buyingIntent + urgency + engagementTier(engagement) + minInt(2, ruleHits)
	return clamp(raw, 1, 10)
}

// engagementTier maps the sum of all integer substrings in the engagement
// string to a 0-3 tier. A string with no digits is tier 0, never an error.
func engagementTier(engagement string) int {
	runs := digitsRE.FindAllString(engagement, -1)
	if len(runs) == 0 {
		return 0
	}

	total := 0
	for _, run := range runs {
		n, err := strconv.Atoi(run)
		if err != nil {
			// Digit run too long for an int: engagement is certainly top tier.
			return 3
		}
		total += n
		if total >= 100 {
			return 3
		}
	}

	switch {
	case total >= 25:
		return 2
	case total >= 5:
		return 1
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
