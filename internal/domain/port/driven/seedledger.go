package driven

import (
	"context"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// SeedLedger defines the driven port for the local record of created items.
type SeedLedger interface {
	// Record stores an entry. Recording the same kind and key twice keeps
	// the first entry.
	Record(ctx context.Context, entry model.LedgerEntry) error

	// Has reports whether an entry with the given kind and key exists.
	Has(ctx context.Context, kind model.ItemKind, key string) (bool, error)

	// List returns every entry of the given kind ordered by creation time.
	List(ctx context.Context, kind model.ItemKind) ([]model.LedgerEntry, error)

	// Forget deletes the entry with the given kind and key, if present.
	Forget(ctx context.Context, kind model.ItemKind, key string) error
}
