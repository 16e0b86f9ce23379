package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS sync_log (
	id           TEXT PRIMARY KEY,
	level        TEXT NOT NULL,
	message      TEXT NOT NULL,
	payload_dump TEXT NOT NULL DEFAULT '',
	object_id    INTEGER NOT NULL,
	created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sync_log_object ON sync_log (object_id);

CREATE TABLE IF NOT EXISTS sync_note (
	id          TEXT PRIMARY KEY,
	object_id   INTEGER NOT NULL,
	status      TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sync_note_object ON sync_note (object_id);
`

// Store is a Sink backed by a local sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the audit database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open audit database %q: %w", path, err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize audit schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists a log entry, assigning an ID and timestamp when absent.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := sq.Insert("sync_log").
		Columns("id", "level", "message", "payload_dump", "object_id", "created_at").
		Values(e.ID, e.Level.String(), e.Message, e.PayloadDump, e.ObjectID, e.CreatedAt).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// Note persists a status note, assigning an ID and timestamp when absent.
func (s *Store) Note(ctx context.Context, n Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := sq.Insert("sync_note").
		Columns("id", "object_id", "status", "title", "description", "created_at").
		Values(n.ID, n.ObjectID, n.Status, n.Title, n.Description, n.CreatedAt).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert audit note: %w", err)
	}

	return nil
}

// EntriesForObject returns the logged entries of one object, oldest first.
func (s *Store) EntriesForObject(ctx context.Context, objectID int64) ([]Entry, error) {
	rows, err := sq.Select("id", "level", "message", "payload_dump", "object_id", "created_at").
		From("sync_log").
		Where(sq.Eq{"object_id": objectID}).
		OrderBy("created_at ASC", "rowid ASC").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var level string

		if err := rows.Scan(&e.ID, &level, &e.Message, &e.PayloadDump, &e.ObjectID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}

		e.Level = parseLevel(level)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// NotesForObject returns the status notes of one object, oldest first.
func (s *Store) NotesForObject(ctx context.Context, objectID int64) ([]Note, error) {
	rows, err := sq.Select("id", "object_id", "status", "title", "description", "created_at").
		From("sync_note").
		Where(sq.Eq{"object_id": objectID}).
		OrderBy("created_at ASC", "rowid ASC").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query audit notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.ObjectID, &n.Status, &n.Title, &n.Description, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit note: %w", err)
		}

		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func parseLevel(s string) Level {
	switch s {
	case "info":
		return LevelInfo
	case "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	default:
		return LevelInfo
	}
}
