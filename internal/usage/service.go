// Package usage records one append-only row per generation request:
// routing facts, search flags, and timings. Message content is never
// stored; the backend stays stateless with respect to conversations.
package usage

import (
	"context"
	"database/sql"
	"time"

	"github.com/matiasleandrokruk/a2ui/pkg/uuid"
)

// Outcomes of a generation request.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
)

// Record is one usage row. ID and CreatedAt are filled by Log when empty.
type Record struct {
	ID         string
	Route      string // "llm" | "mock"
	Provider   string
	Model      string
	Searched   bool
	SearchOK   *bool // nil when no search was attempted
	Outcome    string
	DurationMs int64
	CreatedAt  time.Time
}

// Service writes usage records. Append-only: no updates, no deletes.
type Service struct {
	db *sql.DB
}

// NewService creates a usage service over an already-migrated database.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Log inserts one record. Call sites treat failures as best-effort: a
// broken usage log must never fail a request.
func (s *Service) Log(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewV7().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO usage_log
		(id, route, provider, model, searched, search_ok, outcome, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Route,
		nullString(rec.Provider),
		nullString(rec.Model),
		rec.Searched,
		nullBool(rec.SearchOK),
		rec.Outcome,
		rec.DurationMs,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns the newest records, most recent first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, route, provider, model, searched, search_ok, outcome, duration_ms, created_at
		FROM usage_log ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []Record
	for rows.Next() {
		var (
			rec       Record
			provider  sql.NullString
			model     sql.NullString
			searchOK  sql.NullBool
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Route, &provider, &model, &rec.Searched, &searchOK, &rec.Outcome, &rec.DurationMs, &createdAt); err != nil {
			return nil, err
		}
		rec.Provider = provider.String
		rec.Model = model.String
		if searchOK.Valid {
			v := searchOK.Bool
			rec.SearchOK = &v
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = ts
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
