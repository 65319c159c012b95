package model

import "time"

// ItemKind identifies what a ledger entry records.
type ItemKind string

const (
	ItemKindIssue     ItemKind = "issue"
	ItemKindLabel     ItemKind = "label"
	ItemKindMilestone ItemKind = "milestone"
)

// LedgerEntry records an item the seeder created on GitHub, so later runs
// can skip it without scanning the repository.
type LedgerEntry struct {
	Kind      ItemKind
	Key       string // Catalog number for issues, name or title otherwise.
	RemoteID  int    // GitHub issue or milestone number. Zero for labels.
	Title     string
	CreatedAt time.Time
}
