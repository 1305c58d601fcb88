package lead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

func TestBuild_Enrichment(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())

	post := model.Post{
		Platform:         model.PlatformReddit,
		Author:           "jane_doe",
		AuthorProfileURL: "https://reddit.com/user/jane_doe",
		Content:          "We are prelaunch and validating an idea. Looking for beta users! Need feedback asap?",
		Engagement:       "score=30,comments=5",
		URL:              "https://reddit.com/r/startups/abc",
		CreatedAt:        "2025-02-16T12:00:00Z",
		Subreddit:        "startups",
	}

	signal := b.Build(post, []string{"lead gen"})

	assert.Equal(t, model.PlatformReddit, signal.Platform)
	assert.Equal(t, "jane_doe", signal.Author)
	assert.Equal(t, post.URL, signal.SourceURL)
	assert.Equal(t, post.CreatedAt, signal.CreatedAt)

	assert.GreaterOrEqual(t, signal.BuyingIntent, 1)
	assert.LessOrEqual(t, signal.BuyingIntent, 5)
	assert.GreaterOrEqual(t, signal.Urgency, 1)
	assert.LessOrEqual(t, signal.Urgency, 5)
	assert.GreaterOrEqual(t, signal.SignalStrength, 1)
	assert.LessOrEqual(t, signal.SignalStrength, 10)

	assert.Equal(t, "Founder", signal.ICP)
	assert.Equal(t, model.ChannelDMReddit, signal.OutreachChannel)
	assert.Contains(t, signal.MatchedTerms, "prelaunch")
	assert.Contains(t, signal.MatchedTerms, "validating")
}

func TestBuild_EmailBeatsPlatformChannel(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())

	for _, platform := range []model.Platform{model.PlatformReddit, model.PlatformX, "Mastodon"} {
		post := model.Post{
			Platform: platform,
			Content:  "ping me at founder@acme.io",
		}
		signal := b.Build(post, nil)
		assert.Equal(t, model.ChannelEmail, signal.OutreachChannel, "platform %s", platform)
		assert.Equal(t, []string{"founder@acme.io"}, signal.EmailsFound)
	}
}

func TestBuild_ChannelDefaults(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())

	tests := []struct {
		platform model.Platform
		want     model.OutreachChannel
	}{
		{model.PlatformX, model.ChannelDMX},
		{model.PlatformReddit, model.ChannelDMReddit},
		{"LinkedIn", model.ChannelUnknown},
		{"", model.ChannelUnknown},
	}

	for _, tt := range tests {
		signal := b.Build(model.Post{Platform: tt.platform, Content: "no email here"}, nil)
		assert.Equal(t, tt.want, signal.OutreachChannel)
	}
}

func TestBuild_HookAndExcerpt(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())

	longContent := "We   are   struggling\n\nwith " + strings.Repeat("lead follow-up ", 40)
	signal := b.Build(model.Post{Platform: model.PlatformX, Content: longContent}, nil)

	// Hook embeds the lowercased signal type, the ICP, and a collapsed snippet.
	assert.True(t, strings.HasPrefix(signal.OutreachHook, "Saw your post about pain complaint (Other)."))
	assert.NotContains(t, signal.OutreachHook, "  ", "hook snippet must be whitespace-collapsed")
	assert.True(t, strings.HasSuffix(signal.OutreachHook, "...'"))

	assert.LessOrEqual(t, len([]rune(signal.ContentExcerpt)), 220)
	assert.True(t, strings.HasPrefix(signal.ContentExcerpt, "We are struggling with"))

	// Reproducible.
	again := b.Build(model.Post{Platform: model.PlatformX, Content: longContent}, nil)
	assert.Equal(t, signal.OutreachHook, again.OutreachHook)
	assert.Equal(t, signal.ContentExcerpt, again.ContentExcerpt)
}

func TestBuild_EmptyContent(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())
	signal := b.Build(model.Post{Platform: model.PlatformReddit}, []string{"crm"})

	assert.Equal(t, "Other", signal.SignalType)
	assert.Equal(t, "Other", signal.ICP)
	assert.Equal(t, 1, signal.BuyingIntent)
	assert.Equal(t, 1, signal.Urgency)
	assert.Empty(t, signal.EmailsFound)
	assert.Empty(t, signal.MatchedTerms)
	assert.Equal(t, "", signal.ContentExcerpt)
}

func TestBuildAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder(rules.Default())
	posts := []model.Post{
		{URL: "u1", Content: "first"},
		{URL: "u2", Content: "second"},
	}

	signals := b.BuildAll(posts, nil)
	require.Len(t, signals, 2)
	assert.Equal(t, "u1", signals[0].SourceURL)
	assert.Equal(t, "u2", signals[1].SourceURL)
}
