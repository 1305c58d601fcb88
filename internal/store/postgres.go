package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/genesis-labs/signal-radar/internal/db"
	"github.com/genesis-labs/signal-radar/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_scan":    `INSERT INTO scans (id, source, status, started_at) VALUES ($1, $2, $3, $4)`,
	"finish_scan":    `UPDATE scans SET status = $1, posts = $2, signals = $3, hot_leads = $4, finished_at = $5 WHERE id = $6`,
	"list_hot_leads": `SELECT data FROM hot_leads ORDER BY spi DESC, created_at DESC LIMIT $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// Pool returns the underlying database pool for subsystems that need
// direct query access.
func (s *PostgresStore) Pool() db.Pool {
	return s.pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS scans (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	source      TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'running',
	posts       INTEGER NOT NULL DEFAULT 0,
	signals     INTEGER NOT NULL DEFAULT 0,
	hot_leads   INTEGER NOT NULL DEFAULT 0,
	started_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	finished_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS posts (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	scan_id    TEXT NOT NULL REFERENCES scans(id),
	url        TEXT NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS lead_signals (
	id              TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	scan_id         TEXT NOT NULL REFERENCES scans(id),
	signal_type     TEXT NOT NULL,
	buying_intent   INTEGER NOT NULL,
	signal_strength INTEGER NOT NULL,
	data            JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS hot_leads (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	scan_id    TEXT NOT NULL REFERENCES scans(id),
	spi        INTEGER NOT NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_scans_status ON scans(status);
CREATE INDEX IF NOT EXISTS idx_posts_scan_id ON posts(scan_id);
CREATE INDEX IF NOT EXISTS idx_posts_url ON posts(url);
CREATE INDEX IF NOT EXISTS idx_lead_signals_scan_id ON lead_signals(scan_id);
CREATE INDEX IF NOT EXISTS idx_lead_signals_type ON lead_signals(signal_type);
CREATE INDEX IF NOT EXISTS idx_lead_signals_strength ON lead_signals(signal_strength DESC);
CREATE INDEX IF NOT EXISTS idx_hot_leads_scan_id ON hot_leads(scan_id);
CREATE INDEX IF NOT EXISTS idx_hot_leads_spi ON hot_leads(spi DESC);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateScan(ctx context.Context, source string) (*Scan, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO scans (id, source, status, started_at) VALUES ($1, $2, $3, $4)`,
		id, source, string(ScanStatusRunning), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert scan")
	}

	return &Scan{
		ID:        id,
		Source:    source,
		Status:    ScanStatusRunning,
		StartedAt: now,
	}, nil
}

func (s *PostgresStore) FinishScan(ctx context.Context, scanID string, status ScanStatus, totals ScanTotals) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE scans SET status = $1, posts = $2, signals = $3, hot_leads = $4, finished_at = $5 WHERE id = $6`,
		string(status), totals.Posts, totals.Signals, totals.HotLeads, time.Now().UTC(), scanID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: finish scan %s", scanID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("scan not found: %s", scanID)
	}
	return nil
}

func (s *PostgresStore) RecordPosts(ctx context.Context, scanID string, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(posts))
	for _, post := range posts {
		data, err := json.Marshal(post)
		if err != nil {
			return eris.Wrap(err, "postgres: marshal post")
		}
		rows = append(rows, []any{uuid.New().String(), scanID, post.URL, data, now})
	}

	_, err := db.CopyFrom(ctx, s.pool, "posts",
		[]string{"id", "scan_id", "url", "data", "created_at"}, rows)
	return err
}

func (s *PostgresStore) RecordLeadSignals(ctx context.Context, scanID string, signals []model.LeadSignal) error {
	if len(signals) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(signals))
	for _, sig := range signals {
		data, err := json.Marshal(sig)
		if err != nil {
			return eris.Wrap(err, "postgres: marshal signal")
		}
		rows = append(rows, []any{
			uuid.New().String(), scanID, sig.SignalType, sig.BuyingIntent, sig.SignalStrength,
			data, now,
		})
	}

	_, err := db.CopyFrom(ctx, s.pool, "lead_signals",
		[]string{"id", "scan_id", "signal_type", "buying_intent", "signal_strength", "data", "created_at"}, rows)
	return err
}

func (s *PostgresStore) RecordHotLeads(ctx context.Context, scanID string, leads []model.AggregatedLead) error {
	if len(leads) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(leads))
	for _, lead := range leads {
		data, err := json.Marshal(lead)
		if err != nil {
			return eris.Wrap(err, "postgres: marshal hot lead")
		}
		rows = append(rows, []any{uuid.New().String(), scanID, lead.SPI, data, now})
	}

	_, err := db.CopyFrom(ctx, s.pool, "hot_leads",
		[]string{"id", "scan_id", "spi", "data", "created_at"}, rows)
	return err
}

func (s *PostgresStore) ListLeadSignals(ctx context.Context, filter LeadFilter) ([]model.LeadSignal, error) {
	query := `SELECT data FROM lead_signals WHERE true`
	args := []any{}
	argIdx := 1

	if filter.SignalType != "" {
		query += fmt.Sprintf(` AND signal_type = $%d`, argIdx)
		args = append(args, filter.SignalType)
		argIdx++
	}
	if filter.MinIntent > 0 {
		query += fmt.Sprintf(` AND buying_intent >= $%d`, argIdx)
		args = append(args, filter.MinIntent)
		argIdx++
	}
	query += ` ORDER BY signal_strength DESC, created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
		argIdx++
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list signals")
	}
	defer rows.Close()

	var signals []model.LeadSignal
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan signal")
		}
		var sig model.LeadSignal
		if err := json.Unmarshal(data, &sig); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal signal")
		}
		signals = append(signals, sig)
	}
	return signals, eris.Wrap(rows.Err(), "postgres: list signals iterate")
}

func (s *PostgresStore) ListHotLeads(ctx context.Context, limit int) ([]model.AggregatedLead, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx,
		`SELECT data FROM hot_leads ORDER BY spi DESC, created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list hot leads")
	}
	defer rows.Close()

	var leads []model.AggregatedLead
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, eris.Wrap(err, "postgres: scan hot lead")
		}
		var lead model.AggregatedLead
		if err := json.Unmarshal(data, &lead); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal hot lead")
		}
		leads = append(leads, lead)
	}
	return leads, eris.Wrap(rows.Err(), "postgres: list hot leads iterate")
}
