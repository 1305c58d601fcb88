// Package aggregate rolls classified posts up into one record per company or
// author, summing per-post weights into a sales pressure index (SPI) and
// assigning a priority tier.
package aggregate

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/genesis-labs/signal-radar/internal/match"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/rules"
)

const (
	memberContentLen = 500
	maxContentParts  = 3
)

// Key identifies one rollup group: the company when one is known, otherwise
// the author.
type Key struct {
	Kind string // "company" or "author"
	Name string // case-folded
}

var keyFolder = cases.Fold()

// Aggregator groups classified posts per company/author and scores each
// group. Stateless across calls: every Aggregate invocation owns its own
// grouping map.
type Aggregator struct {
	extractor  *Extractor
	weights    rules.Weights
	thresholds rules.Thresholds
}

// New creates an Aggregator from the rule set's blacklist, weights, and
// thresholds.
func New(rs rules.Set) *Aggregator {
	return &Aggregator{
		extractor:  NewExtractor(rs.CompanyBlacklist),
		weights:    rs.Weights,
		thresholds: rs.Thresholds,
	}
}

type member struct {
	company string
	author  string
	tier    model.Tier
	weight  int
	content string
}

// Aggregate rolls rows into one AggregatedLead per group. Group order is
// first-encounter order; representative fields come from the first member.
// Empty input yields zero groups.
func (a *Aggregator) Aggregate(rows []model.ClassifiedPost) []model.AggregatedLead {
	groups := make(map[Key][]member)
	var order []Key

	for _, row := range rows {
		company := strings.TrimSpace(row.Company)
		if company == "" {
			company = a.extractor.Company(row.Content)
		}
		if company == "" {
			company = model.AuthorUnknown
		}
		author := a.extractor.NormalizeAuthor(row.Author, row.Content)

		weight := row.Weight
		if weight == 0 {
			weight = a.weights.Other
		}

		key := a.keyFor(company, author)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], member{
			company: company,
			author:  author,
			tier:    row.Tier,
			weight:  weight,
			content: match.TruncateRunes(row.Content, memberContentLen),
		})
	}

	out := make([]model.AggregatedLead, 0, len(order))
	for _, key := range order {
		members := groups[key]

		spi := 0
		for _, m := range members {
			spi += m.weight
		}

		parts := make([]string, 0, maxContentParts)
		for i, m := range members {
			if i == maxContentParts {
				break
			}
			parts = append(parts, m.content)
		}

		first := members[0]
		out = append(out, model.AggregatedLead{
			Company:     first.company,
			Author:      first.author,
			SignalType:  first.tier,
			Weight:      first.weight,
			SPI:         spi,
			Priority:    a.priority(spi),
			Content:     strings.Join(parts, " | "),
			SignalCount: len(members),
		})
	}

	if len(out) > 0 {
		zap.L().Debug("aggregate: grouped classified posts",
			zap.Int("posts", len(rows)),
			zap.Int("groups", len(out)),
		)
	}

	return out
}

// keyFor picks the grouping key: company when known and not the TBD
// sentinel, otherwise author (or "unknown"). Names are Unicode case-folded
// so differently cased mentions land in one group.
func (a *Aggregator) keyFor(company, author string) Key {
	c := strings.TrimSpace(company)
	if c != "" && !strings.EqualFold(c, model.AuthorUnknown) {
		return Key{Kind: "company", Name: keyFolder.String(c)}
	}
	name := keyFolder.String(strings.TrimSpace(author))
	if name == "" {
		name = "unknown"
	}
	return Key{Kind: "author", Name: name}
}

// priority maps an SPI to its tier. Monotonic in SPI by construction.
func (a *Aggregator) priority(spi int) model.Priority {
	switch {
	case spi >= a.thresholds.High:
		return model.PriorityHigh
	case spi >= a.thresholds.Medium:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
