package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/genesis-labs/signal-radar/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode. Parent directories are created so a fresh checkout works without
// setup.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dsn); dir != "." && !strings.HasPrefix(dsn, ":memory:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, eris.Wrapf(err, "sqlite: mkdir %s", dir)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS scans (
	id          TEXT PRIMARY KEY,
	source      TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'running',
	posts       INTEGER NOT NULL DEFAULT 0,
	signals     INTEGER NOT NULL DEFAULT 0,
	hot_leads   INTEGER NOT NULL DEFAULT 0,
	started_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	finished_at DATETIME
);

CREATE TABLE IF NOT EXISTS posts (
	id         TEXT PRIMARY KEY,
	scan_id    TEXT NOT NULL REFERENCES scans(id),
	url        TEXT NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS lead_signals (
	id              TEXT PRIMARY KEY,
	scan_id         TEXT NOT NULL REFERENCES scans(id),
	signal_type     TEXT NOT NULL,
	buying_intent   INTEGER NOT NULL,
	signal_strength INTEGER NOT NULL,
	data            TEXT NOT NULL,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS hot_leads (
	id         TEXT PRIMARY KEY,
	scan_id    TEXT NOT NULL REFERENCES scans(id),
	spi        INTEGER NOT NULL,
	data       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_scans_status ON scans(status);
CREATE INDEX IF NOT EXISTS idx_posts_scan_id ON posts(scan_id);
CREATE INDEX IF NOT EXISTS idx_posts_url ON posts(url);
CREATE INDEX IF NOT EXISTS idx_lead_signals_scan_id ON lead_signals(scan_id);
CREATE INDEX IF NOT EXISTS idx_lead_signals_type ON lead_signals(signal_type);
CREATE INDEX IF NOT EXISTS idx_lead_signals_strength ON lead_signals(signal_strength);
CREATE INDEX IF NOT EXISTS idx_hot_leads_scan_id ON hot_leads(scan_id);
CREATE INDEX IF NOT EXISTS idx_hot_leads_spi ON hot_leads(spi);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateScan(ctx context.Context, source string) (*Scan, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (id, source, status, started_at) VALUES (?, ?, ?, ?)`,
		id, source, string(ScanStatusRunning), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert scan")
	}

	return &Scan{
		ID:        id,
		Source:    source,
		Status:    ScanStatusRunning,
		StartedAt: now,
	}, nil
}

func (s *SQLiteStore) FinishScan(ctx context.Context, scanID string, status ScanStatus, totals ScanTotals) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE scans SET status = ?, posts = ?, signals = ?, hot_leads = ?, finished_at = ? WHERE id = ?`,
		string(status), totals.Posts, totals.Signals, totals.HotLeads, time.Now().UTC(), scanID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: finish scan %s", scanID)
	}
	return checkRowsAffected(res, "scan", scanID)
}

func (s *SQLiteStore) RecordPosts(ctx context.Context, scanID string, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO posts (id, scan_id, url, data, created_at) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert post")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, post := range posts {
		data, err := json.Marshal(post)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal post")
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), scanID, post.URL, string(data), now); err != nil {
			return eris.Wrap(err, "sqlite: insert post")
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit posts")
}

func (s *SQLiteStore) RecordLeadSignals(ctx context.Context, scanID string, signals []model.LeadSignal) error {
	if len(signals) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lead_signals (id, scan_id, signal_type, buying_intent, signal_strength, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert signal")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, sig := range signals {
		data, err := json.Marshal(sig)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal signal")
		}
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), scanID, sig.SignalType, sig.BuyingIntent, sig.SignalStrength,
			string(data), now,
		); err != nil {
			return eris.Wrap(err, "sqlite: insert signal")
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit signals")
}

func (s *SQLiteStore) RecordHotLeads(ctx context.Context, scanID string, leads []model.AggregatedLead) error {
	if len(leads) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hot_leads (id, scan_id, spi, data, created_at) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert hot lead")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, lead := range leads {
		data, err := json.Marshal(lead)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal hot lead")
		}
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), scanID, lead.SPI, string(data), now); err != nil {
			return eris.Wrap(err, "sqlite: insert hot lead")
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit hot leads")
}

func (s *SQLiteStore) ListLeadSignals(ctx context.Context, filter LeadFilter) ([]model.LeadSignal, error) {
	query := `SELECT data FROM lead_signals WHERE 1=1`
	var args []any

	if filter.SignalType != "" {
		query += ` AND signal_type = ?`
		args = append(args, filter.SignalType)
	}
	if filter.MinIntent > 0 {
		query += ` AND buying_intent >= ?`
		args = append(args, filter.MinIntent)
	}
	query += ` ORDER BY signal_strength DESC, created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list signals")
	}
	defer rows.Close()

	var signals []model.LeadSignal
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan signal")
		}
		var sig model.LeadSignal
		if err := json.Unmarshal([]byte(data), &sig); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal signal")
		}
		signals = append(signals, sig)
	}
	return signals, eris.Wrap(rows.Err(), "sqlite: list signals iterate")
}

func (s *SQLiteStore) ListHotLeads(ctx context.Context, limit int) ([]model.AggregatedLead, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM hot_leads ORDER BY spi DESC, created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list hot leads")
	}
	defer rows.Close()

	var leads []model.AggregatedLead
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan hot lead")
		}
		var lead model.AggregatedLead
		if err := json.Unmarshal([]byte(data), &lead); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal hot lead")
		}
		leads = append(leads, lead)
	}
	return leads, eris.Wrap(rows.Err(), "sqlite: list hot leads iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
