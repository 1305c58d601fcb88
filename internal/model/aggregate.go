package model

import "sort"

// Tier is the coarse intent tier assigned by the weight-model classifier.
type Tier string

const (
	TierHigh   Tier = "prelaunch_high"
	TierMedium Tier = "prelaunch_medium"
	TierOther  Tier = "other"
)

// Priority buckets an aggregated lead by its sales pressure index.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ClassifiedPost is a post annotated with its intent tier and weight.
// Company, when set by the caller, overrides extraction from content.
type ClassifiedPost struct {
	Post
	Company string `json:"company,omitempty"`
	Tier    Tier   `json:"signal_type"`
	Weight  int    `json:"weight"`
}

// AggregatedLead is one company-or-author rollup. SPI is the sum of the
// member weights; representative fields come from the first member seen.
type AggregatedLead struct {
	Company     string   `json:"company"`
	Author      string   `json:"author"`
	SignalType  Tier     `json:"signal_type"`
	Weight      int      `json:"weight"`
	SPI         int      `json:"spi"`
	Priority    Priority `json:"priority"`
	Content     string   `json:"content"`
	SignalCount int      `json:"signal_count"`
}

// SortBySPIDesc orders aggregated leads hottest first. Stable, so equal SPI
// groups keep their aggregation order.
func SortBySPIDesc(leads []AggregatedLead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].SPI > leads[j].SPI
	})
}
