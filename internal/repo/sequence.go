package repo

import (
	"context"

	"gorm.io/gorm"
)

// SequenceAllocator mints sequential integer identifiers from the counters
// table. Used only for user IDs today, but keyed by name so more sequences
// cost nothing.
type SequenceAllocator interface {
	// Next increments the named counter and returns the post-increment
	// value. The first call for a fresh name returns 1. Once returned a
	// value is never reused, even if the caller's insert fails afterwards.
	Next(ctx context.Context, name string) (int64, error)
}

type sequenceAllocator struct {
	db *gorm.DB
}

// NewSequenceAllocator creates the counters-backed allocator.
func NewSequenceAllocator(db *gorm.DB) SequenceAllocator {
	return &sequenceAllocator{db: db}
}

func (a *sequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	// Single upsert so the increment is atomic in the store itself; the
	// service may run as several processes, so no app-level locking can
	// substitute for this. Valid on both Postgres and SQLite.
	var value int64
	err := a.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, sequence_value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET sequence_value = counters.sequence_value + 1
		 RETURNING sequence_value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
