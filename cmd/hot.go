package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/export"
	"github.com/genesis-labs/signal-radar/internal/model"
	"github.com/genesis-labs/signal-radar/internal/pipeline"
	"github.com/genesis-labs/signal-radar/internal/source"
)

var hotInput string

var hotCmd = &cobra.Command{
	Use:   "hot",
	Short: "Rebuild the hot-lead report from previously scanned posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRules()
		if err != nil {
			return err
		}

		path := hotInput
		if path == "" {
			path = cfg.Export.RawPath
		}

		posts, err := source.NewJSONL(path).Fetch(cmd.Context())
		if err != nil {
			return err
		}

		hot := pipeline.New(rs).HotLeads(posts)
		if err := export.WriteHotLeadsCSV(cfg.Export.HotCSV, hot); err != nil {
			return err
		}

		sorted := make([]model.AggregatedLead, len(hot))
		copy(sorted, hot)
		model.SortBySPIDesc(sorted)
		for i, lead := range sorted {
			if i >= 10 {
				break
			}
			zap.L().Info("hot lead",
				zap.Int("rank", i+1),
				zap.String("company", lead.Company),
				zap.String("author", lead.Author),
				zap.Int("spi", lead.SPI),
				zap.String("priority", string(lead.Priority)),
				zap.Int("signals", lead.SignalCount),
			)
		}

		zap.L().Info("hot report written",
			zap.String("path", cfg.Export.HotCSV),
			zap.Int("groups", len(hot)),
		)
		return nil
	},
}

func init() {
	hotCmd.Flags().StringVar(&hotInput, "input", "", "posts JSONL file (default from config)")
	rootCmd.AddCommand(hotCmd)
}
