package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/export"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/store"
)

var (
	scanDemo      bool
	scanUseCached bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one scan: fetch posts, build lead signals, aggregate hot leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initRadar(cmd.Context(), sourceSelection{Demo: scanDemo, UseCached: scanUseCached})
		if err != nil {
			return err
		}
		defer env.Close()

		return runScan(cmd.Context(), env)
	},
}

func runScan(ctx context.Context, env *radarEnv) error {
	scan, err := env.Store.CreateScan(ctx, env.Source.Name())
	if err != nil {
		return err
	}

	posts, err := env.Source.Fetch(ctx)
	if err != nil {
		_ = env.Store.FinishScan(ctx, scan.ID, store.ScanStatusFailed, store.ScanTotals{})
		return err
	}

	unique, signals := env.Pipeline.Enrich(posts, marketTerms(env.Rules), cfg.Radar.MinIntent)
	hot := env.Pipeline.HotLeads(unique)

	if err := env.Store.RecordPosts(ctx, scan.ID, unique); err != nil {
		return err
	}
	if err := env.Store.RecordLeadSignals(ctx, scan.ID, signals); err != nil {
		return err
	}
	if err := env.Store.RecordHotLeads(ctx, scan.ID, hot); err != nil {
		return err
	}

	if err := export.AppendJSONL(cfg.Export.RawPath, unique); err != nil {
		return err
	}
	if err := export.AppendJSONL(cfg.Export.LeadsPath, signals); err != nil {
		return err
	}
	if err := export.WriteLeadSignalsCSV(cfg.Export.LeadsCSV, signals); err != nil {
		return err
	}
	if err := export.WriteHotLeadsCSV(cfg.Export.HotCSV, hot); err != nil {
		return err
	}

	totals := store.ScanTotals{Posts: len(unique), Signals: len(signals), HotLeads: len(hot)}
	if err := env.Store.FinishScan(ctx, scan.ID, store.ScanStatusComplete, totals); err != nil {
		return err
	}

	logTopSignals(signals)

	zap.L().Info("scan complete",
		zap.String("scan_id", scan.ID),
		zap.Int("posts", totals.Posts),
		zap.Int("signals", totals.Signals),
		zap.Int("hot_leads", totals.HotLeads),
	)
	return nil
}

// logTopSignals logs the ten strongest signals of the batch for a quick
// terminal read without opening the export files.
func logTopSignals(signals []model.LeadSignal) {
	top := make([]model.LeadSignal, len(signals))
	copy(top, signals)
	model.SortBySignalDesc(top)
	if len(top) > 10 {
		top = top[:10]
	}

	for i, sig := range top {
		zap.L().Info("top signal",
			zap.Int("rank", i+1),
			zap.String("author", sig.Author),
			zap.String("signal_type", sig.SignalType),
			zap.Int("strength", sig.SignalStrength),
			zap.Int("intent", sig.BuyingIntent),
			zap.String("channel", string(sig.OutreachChannel)),
		)
	}
}

func init() {
	scanCmd.Flags().BoolVar(&scanDemo, "demo", false, "use seeded demo posts instead of fetching")
	scanCmd.Flags().BoolVar(&scanUseCached, "use-cached", false, "replay posts from the raw export file")
	rootCmd.AddCommand(scanCmd)
}
