package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-club-recruit/internal/resume"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps offline snapshots of reviewed resumes so decisions survive
// past the recruitment cycle. It lives entirely on the admin side.
type Store struct {
	db *pgxpool.Pool
}

func Connect(ctx context.Context, connString string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// The DSN may point at a transaction-mode pooler, which breaks prepared
	// statements, so the statement cache stays off.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Store{db: pool}, nil
}

func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS resume_snapshots (
			resume_id    BIGINT PRIMARY KEY,
			cycle_id     INT NOT NULL,
			status       INT NOT NULL,
			submitted_at TIMESTAMPTZ,
			name         TEXT NOT NULL DEFAULT '',
			major        TEXT NOT NULL DEFAULT '',
			fields       JSONB NOT NULL DEFAULT '[]',
			archived_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}
	return nil
}

// Snapshot is one archived resume row.
type Snapshot struct {
	ResumeID    int64
	CycleID     int
	Status      resume.Status
	SubmittedAt *time.Time
	Name        string
	Major       string
	ArchivedAt  time.Time
}

// SaveSnapshot inserts or refreshes one resume's archived state.
func (s *Store) SaveSnapshot(ctx context.Context, r *resume.Resume) error {
	fields, err := json.Marshal(r.SimpleFields)
	if err != nil {
		return fmt.Errorf("failed to encode resume fields: %w", err)
	}

	query := `
		INSERT INTO resume_snapshots (resume_id, cycle_id, status, submitted_at, name, major, fields, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (resume_id)
		DO UPDATE SET status = EXCLUDED.status, submitted_at = EXCLUDED.submitted_at,
			name = EXCLUDED.name, major = EXCLUDED.major, fields = EXCLUDED.fields,
			archived_at = now()`

	if _, err := s.db.Exec(ctx, query, r.ResumeID, r.CycleID, int(r.Status), r.SubmittedAt, r.Name(), r.Major(), fields); err != nil {
		return fmt.Errorf("failed to save snapshot %d: %w", r.ResumeID, err)
	}
	return nil
}

// SavePage archives every resume of one loaded page, stopping at the first
// failure so the caller knows how far it got.
func (s *Store) SavePage(ctx context.Context, page []resume.Resume) (int, error) {
	for i := range page {
		if err := s.SaveSnapshot(ctx, &page[i]); err != nil {
			return i, err
		}
	}
	return len(page), nil
}

// ListSnapshots returns archived rows for one cycle, newest decisions first.
func (s *Store) ListSnapshots(ctx context.Context, cycleID int) ([]Snapshot, error) {
	query := `
		SELECT resume_id, cycle_id, status, submitted_at, name, major, archived_at
		FROM resume_snapshots
		WHERE cycle_id = $1
		ORDER BY archived_at DESC`

	rows, err := s.db.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var status int
		if err := rows.Scan(&snap.ResumeID, &snap.CycleID, &status, &snap.SubmittedAt, &snap.Name, &snap.Major, &snap.ArchivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.Status = resume.Status(status)
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}
	return out, nil
}
