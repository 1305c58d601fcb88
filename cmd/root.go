package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "signal-radar",
	Short: "Pre-launch buying-signal radar",
	Long:  "Scans social platforms for market-validation chatter, classifies and scores buying signals, and aggregates them into an outreach-ready hot-lead report.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
