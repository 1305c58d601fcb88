// Package lead assembles classified, scored posts into outreach-ready lead
// signals.
package lead

import (
	"fmt"
	"strings"

	"github.com/genesis-labs/signal-radar/internal/classify"
	"github.com/genesis-labs/signal-radar/internal/match"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
	"github.com/genesis-labs/signal-radar/internal/score"
)

const (
	hookSnippetLen = 120
	excerptLen     = 220
)

// Builder turns raw posts into enriched LeadSignal records. It owns a
// classifier and score engine built from the same rule set, so trigger hit
// counts feed signal strength consistently.
type Builder struct {
	classifier *classify.Classifier
	engine     *score.Engine
	rules      rules.Set
}

// NewBuilder creates a Builder over the given rule set.
func NewBuilder(rs rules.Set) *Builder {
	return &Builder{
		classifier: classify.New(rs),
		engine:     score.NewEngine(rs),
		rules:      rs,
	}
}

// Build assembles one post into a LeadSignal. Pure: no I/O, no mutation of
// the post, deterministic for identical input.
func (b *Builder) Build(post model.Post, marketTerms []string) model.LeadSignal {
	signalType, ruleHits := b.classifier.SignalType(post.Content)
	buyingIntent := b.engine.BuyingIntent(post.Content)
	urgency := b.engine.Urgency(post.Content)
	strength := b.engine.SignalStrength(buyingIntent, urgency, post.Engagement, len(ruleHits))
	icp := b.classifier.ICP(post.Content)
	emails := match.Emails(post.Content)

	terms := make([]string, 0, len(marketTerms)+len(b.rules.ValidationKeywords))
	terms = append(terms, marketTerms...)
	terms = append(terms, b.rules.ValidationKeywords...)

	return model.LeadSignal{
		Platform:         post.Platform,
		Author:           post.Author,
		AuthorProfileURL: post.AuthorProfileURL,
		SourceURL:        post.URL,
		CreatedAt:        post.CreatedAt,
		SignalType:       signalType,
		BuyingIntent:     buyingIntent,
		Urgency:          urgency,
		SignalStrength:   strength,
		ICP:              icp,
		OutreachChannel:  channelFor(post.Platform, emails),
		EmailsFound:      emails,
		OutreachHook:     b.hook(signalType, icp, post.Content),
		MatchedTerms:     match.Keywords(post.Content, terms),
		ContentExcerpt:   match.TruncateRunes(match.Collapse(post.Content), excerptLen),
	}
}

// BuildAll builds one signal per post, preserving order.
func (b *Builder) BuildAll(posts []model.Post, marketTerms []string) []model.LeadSignal {
	out := make([]model.LeadSignal, 0, len(posts))
	for _, post := range posts {
		out = append(out, b.Build(post, marketTerms))
	}
	return out
}

// channelFor picks the outreach channel. A found email always beats the
// platform DM default.
func channelFor(platform model.Platform, emails []string) model.OutreachChannel {
	if len(emails) > 0 {
		return model.ChannelEmail
	}
	switch platform {
	case model.PlatformX:
		return model.ChannelDMX
	case model.PlatformReddit:
		return model.ChannelDMReddit
	default:
		return model.ChannelUnknown
	}
}

// hook renders the templated outreach opener from the lowercased signal
// type, the ICP, the configured pitch line, and a collapsed content snippet.
func (b *Builder) hook(signalType, icp, content string) string {
	snippet := match.TruncateRunes(match.Collapse(content), hookSnippetLen)
	return fmt.Sprintf("Saw your post about %s (%s). %s Context: '%s...'",
		strings.ToLower(signalType), icp, b.rules.OutreachPitch, snippet)
}
