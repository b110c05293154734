package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mithrel/lovelog/pkg/api"
)

type sqliteStore struct {
	db     *sql.DB
	closer io.Closer
}

// openSQLite connects via the modernc.org/sqlite driver and ensures
// the schema exists.
func openSQLite(ctx context.Context, dsn string) (*sqliteStore, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &sqliteStore{db: dbh, closer: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS logs (
  id TEXT PRIMARY KEY,
  timestamp INTEGER NOT NULL,
  day_key TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL DEFAULT 0,
  tags TEXT NOT NULL,
  note TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_logs_day_key ON logs(day_key);
CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(timestamp DESC);
`)
	return err
}

func (s *sqliteStore) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

const logColumns = `id, timestamp, day_key, duration_minutes, tags, note, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (api.LogEntry, error) {
	var e api.LogEntry
	var tagsJSON string
	if err := row.Scan(&e.ID, &e.Timestamp, &e.DayKey, &e.DurationMinutes, &tagsJSON, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return api.LogEntry{}, err
	}
	_ = json.Unmarshal([]byte(tagsJSON), &e.Tags)
	return e, nil
}

func (s *sqliteStore) queryEntries(ctx context.Context, q string, args ...any) ([]api.LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []api.LogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *sqliteStore) GetAll(ctx context.Context) ([]api.LogEntry, error) {
	return s.queryEntries(ctx, `SELECT `+logColumns+` FROM logs ORDER BY timestamp DESC`)
}

func (s *sqliteStore) GetByDay(ctx context.Context, dayKey string) ([]api.LogEntry, error) {
	return s.queryEntries(ctx, `SELECT `+logColumns+` FROM logs WHERE day_key=? ORDER BY timestamp DESC`, dayKey)
}

func (s *sqliteStore) Add(ctx context.Context, e api.LogEntry) error {
	tagsJSON, _ := json.Marshal(e.Tags)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO logs(`+logColumns+`) VALUES(?,?,?,?,?,?,?,?)`,
		e.ID, e.Timestamp, e.DayKey, e.DurationMinutes, string(tagsJSON), e.Note, e.CreatedAt, e.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return ErrConflict
	}
	return err
}

func (s *sqliteStore) Update(ctx context.Context, e api.LogEntry) error {
	tagsJSON, _ := json.Marshal(e.Tags)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO logs(`+logColumns+`) VALUES(?,?,?,?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET
		   timestamp=excluded.timestamp,
		   day_key=excluded.day_key,
		   duration_minutes=excluded.duration_minutes,
		   tags=excluded.tags,
		   note=excluded.note,
		   created_at=excluded.created_at,
		   updated_at=excluded.updated_at`,
		e.ID, e.Timestamp, e.DayKey, e.DurationMinutes, string(tagsJSON), e.Note, e.CreatedAt, e.UpdatedAt)
	return err
}

func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM logs WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqliteStore) BulkAdd(ctx context.Context, entries []api.LogEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO logs(`+logColumns+`) VALUES(?,?,?,?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET
		   timestamp=excluded.timestamp,
		   day_key=excluded.day_key,
		   duration_minutes=excluded.duration_minutes,
		   tags=excluded.tags,
		   note=excluded.note,
		   created_at=excluded.created_at,
		   updated_at=excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		tagsJSON, _ := json.Marshal(e.Tags)
		if _, err := stmt.ExecContext(ctx, e.ID, e.Timestamp, e.DayKey, e.DurationMinutes, string(tagsJSON), e.Note, e.CreatedAt, e.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM logs`)
	return err
}
