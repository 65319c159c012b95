package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
	"github.com/ericfisherdev/realmseed/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SeedLedger = (*LedgerRepo)(nil)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02 15:04:05.000"

// LedgerRepo is the SQLite implementation of the SeedLedger port interface.
type LedgerRepo struct {
	db *DB
}

// NewLedgerRepo creates a new LedgerRepo backed by the given DB.
func NewLedgerRepo(db *DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

// Record stores an entry. Idempotent: a second entry for the same kind and
// key is silently dropped and the first one kept.
func (r *LedgerRepo) Record(ctx context.Context, entry model.LedgerEntry) error {
	const query = `
		INSERT INTO seed_ledger (kind, key, remote_id, title, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (kind, key) DO NOTHING`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		string(entry.Kind), entry.Key, entry.RemoteID, entry.Title,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record %s %s: %w", entry.Kind, entry.Key, err)
	}
	return nil
}

// Has reports whether an entry exists for the kind and key.
func (r *LedgerRepo) Has(ctx context.Context, kind model.ItemKind, key string) (bool, error) {
	const query = `SELECT COUNT(*) FROM seed_ledger WHERE kind = ? AND key = ?`
	var count int
	if err := r.db.Reader.QueryRowContext(ctx, query, string(kind), key).Scan(&count); err != nil {
		return false, fmt.Errorf("check %s %s: %w", kind, key, err)
	}
	return count > 0, nil
}

// List returns every entry of the given kind ordered by created_at, then
// insertion order.
func (r *LedgerRepo) List(ctx context.Context, kind model.ItemKind) ([]model.LedgerEntry, error) {
	const query = `
		SELECT kind, key, remote_id, title, created_at
		FROM seed_ledger
		WHERE kind = ?
		ORDER BY created_at, rowid`

	rows, err := r.db.Reader.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", kind, err)
	}
	defer rows.Close()

	var entries []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		var k, createdAt string
		if err := rows.Scan(&k, &e.Key, &e.RemoteID, &e.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Kind = model.ItemKind(k)
		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s %s: %w", k, e.Key, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

// Forget removes the entry for the kind and key. No-op when absent.
func (r *LedgerRepo) Forget(ctx context.Context, kind model.ItemKind, key string) error {
	const query = `DELETE FROM seed_ledger WHERE kind = ? AND key = ?`
	if _, err := r.db.Writer.ExecContext(ctx, query, string(kind), key); err != nil {
		return fmt.Errorf("forget %s %s: %w", kind, key, err)
	}
	return nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		timeLayout,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
