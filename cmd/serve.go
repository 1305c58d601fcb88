package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genesis-labs/signal-radar/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored lead signals and hot leads over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initRadar(ctx, sourceSelection{})
		if err != nil {
			return err
		}
		defer env.Close()

		mux := newServeMux(env.Store)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func newServeMux(st store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /leads", func(w http.ResponseWriter, r *http.Request) {
		filter := store.LeadFilter{
			SignalType: r.URL.Query().Get("signal_type"),
		}
		if v := r.URL.Query().Get("min_intent"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, `{"error":"min_intent must be an integer"}`, http.StatusBadRequest)
				return
			}
			filter.MinIntent = n
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, `{"error":"limit must be an integer"}`, http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		signals, err := st.ListLeadSignals(r.Context(), filter)
		if err != nil {
			zap.L().Error("list lead signals failed", zap.Error(err))
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":        len(signals),
			"lead_signals": signals,
		})
	})

	mux.HandleFunc("GET /hot", func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, `{"error":"limit must be an integer"}`, http.StatusBadRequest)
				return
			}
			limit = n
		}

		leads, err := st.ListHotLeads(r.Context(), limit)
		if err != nil {
			zap.L().Error("list hot leads failed", zap.Error(err))
			http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":     len(leads),
			"hot_leads": leads,
		})
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
