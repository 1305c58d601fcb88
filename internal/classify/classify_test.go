package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

func TestSignalType(t *testing.T) {
	t.Parallel()

	c := New(rules.Default())

	t.Run("empty text is Other with no hits", func(t *testing.T) {
		t.Parallel()
		cat, hits := c.SignalType("")
		assert.Equal(t, CategoryOther, cat)
		assert.Empty(t, hits)
	})

	t.Run("no rule hit is Other", func(t *testing.T) {
		t.Parallel()
		cat, hits := c.SignalType("the weather is nice")
		assert.Equal(t, CategoryOther, cat)
		assert.Empty(t, hits)
	})

	t.Run("single category", func(t *testing.T) {
		t.Parallel()
		cat, hits := c.SignalType("so frustrated and stuck with this")
		assert.Equal(t, "Pain complaint", cat)
		assert.Equal(t, []string{"frustrated", "stuck"}, hits)
	})

	t.Run("strictly greater count wins", func(t *testing.T) {
		t.Parallel()
		// One pain hit vs two buying-search hits.
		cat, hits := c.SignalType("frustrated, looking for a tool, can you recommend one")
		assert.Equal(t, "Active buying search", cat)
		assert.Len(t, hits, 2)
	})

	t.Run("earlier category wins ties", func(t *testing.T) {
		t.Parallel()
		// "problem" (Pain complaint) and "hate" (Tool dissatisfaction), one hit each.
		cat, _ := c.SignalType("i hate this problem")
		assert.Equal(t, "Pain complaint", cat)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		text := "struggling with manual spreadsheet work, any tool to recommend?"
		cat1, hits1 := c.SignalType(text)
		for range 10 {
			cat2, hits2 := c.SignalType(text)
			assert.Equal(t, cat1, cat2)
			assert.Equal(t, hits1, hits2)
		}
	})
}

func TestICP(t *testing.T) {
	t.Parallel()

	c := New(rules.Default())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", CategoryOther},
		{"no match", "hello world", CategoryOther},
		{"founder", "I'm a bootstrapped founder working on an mvp", "Founder"},
		{"saas", "our saas is fighting churn", "SaaS company"},
		{"agency", "we run an agency with retainer clients", "Agency"},
		{"tie goes to earlier category", "founder of a saas", "Founder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.ICP(tt.text))
		})
	}
}

func TestTier(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	c := New(rs)

	tests := []struct {
		name       string
		text       string
		wantTier   model.Tier
		wantWeight int
	}{
		{"empty is other", "", model.TierOther, 20},
		{"whitespace is other", "   \n ", model.TierOther, 20},
		{"high keyword", "We are pre-launch and validating an idea.", model.TierHigh, 100},
		{"medium keyword", "Exploring new markets this quarter.", model.TierMedium, 50},
		{"high beats medium", "pre-launch while exploring new markets", model.TierHigh, 100},
		{"unrelated is other", "what a lovely sunset", model.TierOther, 20},
		{"case insensitive", "MVP LAUNCH next month", model.TierHigh, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tier, weight := c.Tier(tt.text)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantWeight, weight)
		})
	}
}

func TestClassifyAllAndFilter(t *testing.T) {
	t.Parallel()

	c := New(rules.Default())
	posts := []model.Post{
		{Content: "launching soon: FitTrack", URL: "u1"},
		{Content: "random chatter", URL: "u2"},
		{Content: "analyzing competitors in our niche", URL: "u3"},
	}

	classified := c.ClassifyAll(posts)
	assert.Len(t, classified, 3)
	assert.Equal(t, model.TierHigh, classified[0].Tier)
	assert.Equal(t, model.TierOther, classified[1].Tier)
	assert.Equal(t, model.TierMedium, classified[2].Tier)

	actionable := FilterActionable(classified)
	assert.Len(t, actionable, 2)
	assert.Equal(t, "u1", actionable[0].URL)
	assert.Equal(t, "u3", actionable[1].URL)

	assert.Empty(t, FilterActionable(nil))
}
