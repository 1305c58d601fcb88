// Package classify assigns signal categories and intent tiers to posts using
// injected ordered keyword rule tables. All classification is deterministic
// keyword matching; there is no model inference anywhere.
package classify

import (
	"strings"

	"github.com/genesis-labs/signal-radar/internal/match"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

// CategoryOther is returned when no rule in a table hits the text.
const CategoryOther = "Other"

// Classifier evaluates the signal-type, ICP, and tier rule tables.
type Classifier struct {
	rules rules.Set
}

// New creates a Classifier over the given rule set. The set must not be
// mutated afterwards.
func New(rs rules.Set) *Classifier {
	return &Classifier{rules: rs}
}

// SignalType returns the category whose triggers hit the text most, with the
// triggers that hit. Only a strictly greater hit count replaces the current
// best, so the earlier category wins ties. No hits at all means "Other" with
// no triggers.
func (c *Classifier) SignalType(text string) (string, []string) {
	best := CategoryOther
	var bestHits []string
	for _, rule := range c.rules.SignalRules {
		hits := match.Triggers(text, rule.Triggers)
		if len(hits) > len(bestHits) {
			best = rule.Category
			bestHits = hits
		}
	}
	return best, bestHits
}

// ICP returns the ideal-customer-profile category for the text, selected the
// same strictly-greatest way as SignalType. Defaults to "Other".
func (c *Classifier) ICP(text string) string {
	best := CategoryOther
	bestHits := 0
	for _, rule := range c.rules.ICPRules {
		hits := len(match.Triggers(text, rule.Triggers))
		if hits > bestHits {
			best = rule.Category
			bestHits = hits
		}
	}
	return best
}

// Tier buckets text into the coarse weight-model tiers. The high keyword
// list is checked before the medium list and the first keyword found
// decides; empty text is "other".
func (c *Classifier) Tier(text string) (model.Tier, int) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return model.TierOther, c.rules.Weights.Other
	}

	for _, kw := range c.rules.TierHighKeywords {
		if strings.Contains(lower, strings.ToLower(strings.TrimSpace(kw))) {
			return model.TierHigh, c.rules.Weights.High
		}
	}
	for _, kw := range c.rules.TierMediumKeywords {
		if strings.Contains(lower, strings.ToLower(strings.TrimSpace(kw))) {
			return model.TierMedium, c.rules.Weights.Medium
		}
	}
	return model.TierOther, c.rules.Weights.Other
}

// ClassifyAll annotates each post with its tier and weight, preserving
// order. The input slice is not modified.
func (c *Classifier) ClassifyAll(posts []model.Post) []model.ClassifiedPost {
	out := make([]model.ClassifiedPost, 0, len(posts))
	for _, post := range posts {
		tier, weight := c.Tier(post.Content)
		out = append(out, model.ClassifiedPost{
			Post:   post,
			Tier:   tier,
			Weight: weight,
		})
	}
	return out
}

// FilterActionable keeps only high and medium tier posts, dropping "other"
// so downstream output stays actionable.
func FilterActionable(rows []model.ClassifiedPost) []model.ClassifiedPost {
	out := make([]model.ClassifiedPost, 0, len(rows))
	for _, row := range rows {
		if row.Tier == model.TierHigh || row.Tier == model.TierMedium {
			out = append(out, row)
		}
	}
	return out
}
