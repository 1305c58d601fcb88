package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchInterval float64

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Scan on an interval until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initRadar(ctx, sourceSelection{})
		if err != nil {
			return err
		}
		defer env.Close()

		hours := watchInterval
		if hours <= 0 {
			hours = cfg.Radar.IntervalHours
		}
		interval := time.Duration(hours * float64(time.Hour))

		zap.L().Info("watch started", zap.Duration("interval", interval))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// First scan immediately, then one per tick.
		for {
			if err := runScan(ctx, env); err != nil {
				zap.L().Error("scan failed", zap.Error(err))
			}

			select {
			case <-ctx.Done():
				zap.L().Info("watch stopped")
				return nil
			case <-ticker.C:
			}
		}
	},
}

func init() {
	watchCmd.Flags().Float64Var(&watchInterval, "interval-hours", 0, "hours between scans (default from config)")
	rootCmd.AddCommand(watchCmd)
}
