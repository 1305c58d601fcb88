// Package pipeline wires the per-batch transforms: dedupe, enrich, filter,
// and aggregate. A Pipeline is stateless across invocations; every call owns
// its own working data, so batches may be processed concurrently as long as
// the rule set is treated as read-only.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/aggregate"
	"github.com/genesis-labs/signal-radar/internal/classify"
	"github.com/genesis-labs/signal-radar/internal/dedupe"
	"github.com/genesis-labs/signal-radar/internal/lead"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

// Pipeline holds the classifier, builder, and aggregator built from one rule
// set.
type Pipeline struct {
	builder    *lead.Builder
	classifier *classify.Classifier
	aggregator *aggregate.Aggregator
}

// New builds a Pipeline over the given rule set. The set must not be mutated
// for the lifetime of the Pipeline.
func New(rs rules.Set) *Pipeline {
	return &Pipeline{
		builder:    lead.NewBuilder(rs),
		classifier: classify.New(rs),
		aggregator: aggregate.New(rs),
	}
}

// Enrich dedupes a batch by URL and builds one lead signal per surviving
// post. minIntent > 0 drops signals whose buying intent is below it; a
// filter that excludes everything yields an empty slice, not an error.
// Returns the deduped posts alongside the signals.
func (p *Pipeline) Enrich(posts []model.Post, marketTerms []string, minIntent int) ([]model.Post, []model.LeadSignal) {
	unique := dedupe.ByURL(posts)
	signals := p.builder.BuildAll(unique, marketTerms)

	if minIntent > 0 {
		kept := make([]model.LeadSignal, 0, len(signals))
		for _, s := range signals {
			if s.BuyingIntent >= minIntent {
				kept = append(kept, s)
			}
		}
		signals = kept
	}

	zap.L().Info("pipeline: enriched batch",
		zap.Int("posts", len(posts)),
		zap.Int("unique", len(unique)),
		zap.Int("leads", len(signals)),
	)

	return unique, signals
}

// HotLeads classifies a batch into intent tiers, keeps the actionable high
// and medium tiers, and aggregates them per company/author. Empty input
// yields zero groups.
func (p *Pipeline) HotLeads(posts []model.Post) []model.AggregatedLead {
	classified := p.classifier.ClassifyAll(posts)
	actionable := classify.FilterActionable(classified)
	leads := p.aggregator.Aggregate(actionable)

	zap.L().Info("pipeline: aggregated hot leads",
		zap.Int("posts", len(posts)),
		zap.Int("actionable", len(actionable)),
		zap.Int("groups", len(leads)),
	)

	return leads
}
