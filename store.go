package plantfill

import "context"

// RecordStore persists the master plant list between review rounds.
type RecordStore interface {
	// Upsert merges records into the master list, matching on botanical name
	// case-insensitively. Non-empty incoming values replace stored values;
	// records without a botanical name are ignored.
	// Returns the number of records inserted and updated.
	Upsert(ctx context.Context, records []*Record) (inserted, updated int, err error)

	// FindByName returns the master record for a botanical name.
	// Returns ENOTFOUND if no record matches.
	FindByName(ctx context.Context, botanicalName string) (*Record, error)

	// FindAll returns every master record ordered by botanical name.
	FindAll(ctx context.Context) ([]*Record, error)
}
