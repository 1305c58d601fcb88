package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-labs/signal-radar/internal/config"
	"github.com/genesis-labs/signal-radar/internal/pipeline"
	"github.com/genesis-labs/signal-radar/internal/rules"
	"github.com/genesis-labs/signal-radar/internal/source"
	"github.com/genesis-labs/signal-radar/internal/store"
)

// newScanTestEnv wires a demo-source environment against an in-memory store
// and points the exports at a temp directory via the cfg global.
func newScanTestEnv(t *testing.T) *radarEnv {
	t.Helper()

	dir := t.TempDir()
	old := cfg
	cfg = &config.Config{
		Radar: config.RadarConfig{MinIntent: 1},
		Export: config.ExportConfig{
			RawPath:   filepath.Join(dir, "raw_posts.jsonl"),
			LeadsPath: filepath.Join(dir, "lead_signals.jsonl"),
			LeadsCSV:  filepath.Join(dir, "lead_signals.csv"),
			HotCSV:    filepath.Join(dir, "hot_companies.csv"),
		},
	}
	t.Cleanup(func() { cfg = old })

	st, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	rs := rules.Default()
	return &radarEnv{
		Rules:    rs,
		Pipeline: pipeline.New(rs),
		Store:    st,
		Source:   source.NewDemo(),
	}
}

func TestRunScan_Demo(t *testing.T) {
	env := newScanTestEnv(t)

	require.NoError(t, runScan(context.Background(), env))

	for _, path := range []string{
		cfg.Export.RawPath,
		cfg.Export.LeadsPath,
		cfg.Export.LeadsCSV,
		cfg.Export.HotCSV,
	} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}

	signals, err := env.Store.ListLeadSignals(context.Background(), store.LeadFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, signals, "demo posts produce stored signals")

	hot, err := env.Store.ListHotLeads(context.Background(), 10)
	require.NoError(t, err)
	assert.NotEmpty(t, hot, "demo posts produce hot leads")
}

func TestMarketTerms_FallbackToRules(t *testing.T) {
	old := cfg
	cfg = &config.Config{}
	t.Cleanup(func() { cfg = old })

	rs := rules.Default()
	assert.Equal(t, rs.HighIntentTerms, marketTerms(rs))

	cfg.Radar.Terms = []string{"construction tech"}
	assert.Equal(t, []string{"construction tech"}, marketTerms(rs))
}
