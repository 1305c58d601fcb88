package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

func TestEnrich(t *testing.T) {
	t.Parallel()

	p := New(rules.Default())

	t.Run("dedupes before building", func(t *testing.T) {
		t.Parallel()
		posts := []model.Post{
			{URL: "u1", Platform: model.PlatformReddit, Content: "need a tool asap?"},
			{URL: "u1", Platform: model.PlatformReddit, Content: "duplicate"},
			{URL: "u2", Platform: model.PlatformX, Content: "hello"},
		}

		unique, signals := p.Enrich(posts, nil, 0)
		assert.Len(t, unique, 2)
		require.Len(t, signals, 2)
		assert.Equal(t, "u1", signals[0].SourceURL)
		assert.Equal(t, "u2", signals[1].SourceURL)
	})

	t.Run("min intent filter", func(t *testing.T) {
		t.Parallel()
		posts := []model.Post{
			{URL: "u1", Content: "need help asap, recommend a tool, anyone know?"}, // high intent
			{URL: "u2", Content: "nothing interesting"},                            // intent 1
		}

		_, signals := p.Enrich(posts, nil, 3)
		require.Len(t, signals, 1)
		assert.Equal(t, "u1", signals[0].SourceURL)
	})

	t.Run("filter excluding everything is valid", func(t *testing.T) {
		t.Parallel()
		posts := []model.Post{{URL: "u1", Content: "quiet post"}}
		_, signals := p.Enrich(posts, nil, 5)
		assert.Empty(t, signals)
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		unique, signals := p.Enrich(nil, []string{"crm"}, 3)
		assert.Empty(t, unique)
		assert.Empty(t, signals)
	})
}

func TestHotLeads(t *testing.T) {
	t.Parallel()

	p := New(rules.Default())

	t.Run("classifies, filters, aggregates", func(t *testing.T) {
		t.Parallel()
		posts := []model.Post{
			{Author: "jane", Content: "We at BuildRight are pre-launch and validating an idea in construction tech. Looking for beta testers!"},
			{Author: "", Content: "Launching soon: FitTrack. Testing product-market fit in health wearables."},
			{Author: "alex", Content: "Exploring new markets and analyzing competitors. Our team at DataFlow is doing market research for launch."},
			{Author: "lurker", Content: "completely unrelated chatter"},
		}

		leads := p.HotLeads(posts)
		require.Len(t, leads, 3, "the other-tier post is dropped")

		companies := []string{leads[0].Company, leads[1].Company, leads[2].Company}
		assert.Equal(t, []string{"BuildRight", "FitTrack", "DataFlow"}, companies)

		for _, l := range leads {
			assert.NotZero(t, l.SPI)
			assert.Contains(t, []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}, l.Priority)
		}
	})

	t.Run("empty input yields zero groups", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, p.HotLeads(nil))
	})
}
