// Package store persists scan history and pipeline output. Two backends:
// SQLite for single-operator use, Postgres for shared deployments.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/genesis-labs/signal-radar/internal/config"
	"github.com/genesis-labs/signal-radar/internal/model"
)

// ScanStatus tracks the lifecycle of one scan run.
type ScanStatus string

const (
	ScanStatusRunning  ScanStatus = "running"
	ScanStatusComplete ScanStatus = "complete"
	ScanStatusFailed   ScanStatus = "failed"
)

// Scan is one recorded pipeline run.
type Scan struct {
	ID         string     `json:"id"`
	Source     string     `json:"source"`
	Status     ScanStatus `json:"status"`
	Posts      int        `json:"posts"`
	Signals    int        `json:"signals"`
	HotLeads   int        `json:"hot_leads"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// ScanTotals summarizes one finished scan.
type ScanTotals struct {
	Posts    int
	Signals  int
	HotLeads int
}

// LeadFilter specifies criteria for listing stored lead signals.
type LeadFilter struct {
	SignalType string `json:"signal_type,omitempty"`
	MinIntent  int    `json:"min_intent,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for the radar pipeline.
type Store interface {
	// Scans
	CreateScan(ctx context.Context, source string) (*Scan, error)
	FinishScan(ctx context.Context, scanID string, status ScanStatus, totals ScanTotals) error

	// Pipeline output
	RecordPosts(ctx context.Context, scanID string, posts []model.Post) error
	RecordLeadSignals(ctx context.Context, scanID string, signals []model.LeadSignal) error
	RecordHotLeads(ctx context.Context, scanID string, leads []model.AggregatedLead) error

	// Queries
	ListLeadSignals(ctx context.Context, filter LeadFilter) ([]model.LeadSignal, error)
	ListHotLeads(ctx context.Context, limit int) ([]model.AggregatedLead, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates the store the config names and runs migrations.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case "sqlite", "":
		s, err = NewSQLite(cfg.DatabaseURL)
	case "postgres":
		s, err = NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
