package sqlite

import (
	"context"
	"database/sql"
	"time"

	"ponto/internal/errors"
	"ponto/internal/repository/sqlite/migrations"
	"ponto/internal/store"

	_ "modernc.org/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Repository is the SQLite-backed persistence for timesheet slots
type Repository interface {
	store.KV

	// GetSlot returns a slot with its metadata
	GetSlot(ctx context.Context, name string) (*Slot, error)
	// ListSlots returns every slot ordered by name
	ListSlots(ctx context.Context) ([]*Slot, error)

	Close() error
}

// Options tunes per-operation timeouts. Zero means no extra bound.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a repository with the given timeouts
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get implements store.KV
func (r *SQLiteRepository) Get(ctx context.Context, name string) (string, bool, error) {
	slot, err := r.GetSlot(ctx, name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return slot.Value, true, nil
}

// Set implements store.KV
func (r *SQLiteRepository) Set(ctx context.Context, name string, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO kv_slots (slot, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return ExecuteWithRowsAffected(ctx, r.db, query, "slot", name, name, value, FormatTimeForDB(timeNow()))
}

// GetSlot retrieves a slot by name
func (r *SQLiteRepository) GetSlot(ctx context.Context, name string) (*Slot, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT slot, value, updated_at
	FROM kv_slots
	WHERE slot = ?`

	return QuerySingle(ctx, r.db, query, ScanSlot, "slot", name, name)
}

// ListSlots retrieves all slots
func (r *SQLiteRepository) ListSlots(ctx context.Context) ([]*Slot, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT slot, value, updated_at
	FROM kv_slots
	ORDER BY slot ASC`

	return QueryMultiple(ctx, r.db, query, ScanSlots, "slots")
}
