package model

import "sort"

// OutreachChannel is the preferred contact route for a lead.
type OutreachChannel string

const (
	ChannelEmail    OutreachChannel = "email"
	ChannelDMX      OutreachChannel = "dm_x"
	ChannelDMReddit OutreachChannel = "dm_reddit"
	ChannelUnknown  OutreachChannel = "unknown"
)

// LeadSignal is one post enriched with classification, scores, and outreach
// metadata. Immutable once built. Scores are always within their documented
// ranges: buying intent and urgency 1-5, signal strength 1-10.
type LeadSignal struct {
	Platform         Platform        `json:"platform"`
	Author           string          `json:"author"`
	AuthorProfileURL string          `json:"author_profile_url"`
	SourceURL        string          `json:"source_url"`
	CreatedAt        string          `json:"created_at"`
	SignalType       string          `json:"signal_type"`
	BuyingIntent     int             `json:"buying_intent"`
	Urgency          int             `json:"urgency"`
	SignalStrength   int             `json:"signal_strength"`
	ICP              string          `json:"icp"`
	OutreachChannel  OutreachChannel `json:"outreach_channel"`
	EmailsFound      []string        `json:"emails_found,omitempty"`
	OutreachHook     string          `json:"outreach_hook"`
	MatchedTerms     []string        `json:"matched_terms,omitempty"`
	ContentExcerpt   string          `json:"content_excerpt"`
}

// SortBySignalDesc orders signals strongest first: signal strength, then
// buying intent, then urgency. Stable, so equally scored signals keep their
// input order.
func SortBySignalDesc(signals []LeadSignal) {
	sort.SliceStable(signals, func(i, j int) bool {
		a, b := signals[i], signals[j]
		if a.SignalStrength != b.SignalStrength {
			return a.SignalStrength > b.SignalStrength
		}
		if a.BuyingIntent != b.BuyingIntent {
			return a.BuyingIntent > b.BuyingIntent
		}
		return a.Urgency > b.Urgency
	})
}
