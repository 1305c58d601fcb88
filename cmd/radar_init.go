package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/pipeline"
	"github.com/genesis-labs/signal-radar/internal/rules"
	"github.com/genesis-labs/signal-radar/internal/source"
	"github.com/genesis-labs/signal-radar/internal/store"
)

// radarEnv holds the rule set, pipeline, store, and post source shared by
// the scan/watch/hot/serve commands.
type radarEnv struct {
	Rules    rules.Set
	Pipeline *pipeline.Pipeline
	Store    store.Store
	Source   source.Source
}

// Close releases resources held by the environment.
func (re *radarEnv) Close() {
	if re.Store != nil {
		_ = re.Store.Close()
	}
}

// sourceSelection names which post source a command wants.
type sourceSelection struct {
	Demo      bool
	UseCached bool
}

// initRadar loads the rule set, opens and migrates the store, builds the
// pipeline, and picks the post source. Callers should defer env.Close().
func initRadar(ctx context.Context, sel sourceSelection) (*radarEnv, error) {
	rs, err := loadRules()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	var src source.Source
	switch {
	case sel.Demo:
		src = source.NewDemo()
	case sel.UseCached:
		src = source.NewJSONL(cfg.Export.RawPath)
	default:
		src = source.NewReddit(source.RedditOptions{
			Subreddits:     cfg.Radar.Subreddits,
			Terms:          marketTerms(rs),
			Validation:     rs.ValidationKeywords,
			Limit:          cfg.Radar.Limit,
			UserAgent:      cfg.Radar.UserAgent,
			RequestsPerSec: cfg.Radar.RequestsPerSec,
		})
	}

	zap.L().Info("radar initialized",
		zap.String("source", src.Name()),
		zap.String("store", cfg.Store.Driver),
	)

	return &radarEnv{
		Rules:    rs,
		Pipeline: pipeline.New(rs),
		Store:    st,
		Source:   src,
	}, nil
}

// loadRules returns the configured rule-set override, or the built-in
// defaults when no path is set.
func loadRules() (rules.Set, error) {
	if cfg.Rules.Path == "" {
		return rules.Default(), nil
	}
	return rules.Load(cfg.Rules.Path)
}

// marketTerms returns the configured search terms, falling back to the
// rule set's high-intent terms when the config names none.
func marketTerms(rs rules.Set) []string {
	if len(cfg.Radar.Terms) > 0 {
		return cfg.Radar.Terms
	}
	return rs.HighIntentTerms
}
