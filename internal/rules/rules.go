// Package rules holds the keyword tables and scoring knobs that drive
// classification, scoring, and aggregation. Tables are plain data so callers
// can swap them for a different market; order is significant everywhere.
package rules

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// CategoryRule maps one category to its trigger substrings. Rules are
// evaluated in slice order; earlier categories win hit-count ties.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Triggers []string `yaml:"triggers"`
}

// Weights holds the points each intent tier contributes to a group's SPI.
type Weights struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
	Other  int `yaml:"other"`
}

// Thresholds holds the SPI cut-offs for priority tiers. SPI >= High is
// "High", >= Medium is "Medium", anything below is "Low".
type Thresholds struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
}

// Set is the full injectable rule configuration. A zero Set is not useful;
// start from Default and override.
type Set struct {
	SignalRules        []CategoryRule `yaml:"signal_rules"`
	ICPRules           []CategoryRule `yaml:"icp_rules"`
	HighIntentTerms    []string       `yaml:"high_intent_terms"`
	UrgencyTerms       []string       `yaml:"urgency_terms"`
	ValidationKeywords []string       `yaml:"validation_keywords"`
	TierHighKeywords   []string       `yaml:"tier_high_keywords"`
	TierMediumKeywords []string       `yaml:"tier_medium_keywords"`
	CompanyBlacklist   []string       `yaml:"company_blacklist"`
	Weights            Weights        `yaml:"weights"`
	Thresholds         Thresholds     `yaml:"thresholds"`
	OutreachPitch      string         `yaml:"outreach_pitch"`
}

// Load reads a YAML rules file over the default set. Sections absent from
// the file keep their defaults; sections present replace theirs wholesale.
func Load(path string) (Set, error) {
	set := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return set, eris.Wrapf(err, "rules: read %s", path)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, eris.Wrapf(err, "rules: parse %s", path)
	}
	return set, nil
}
