package domain

import "context"

// Collection is the raw persistence layer behind a record set. Every store
// operation follows the same discipline: load the entire collection, mutate
// it in memory, and save the entire collection back. There is no locking or
// isolation between concurrent callers; two overlapping writes to the same
// collection can lose an update. Each implementation (flat file, SQLite,
// in-memory fake) is swappable behind this interface.
type Collection interface {
	// LoadAll returns the serialized collection, or nil if it has never
	// been written. A missing backing file is an empty collection, not an
	// error.
	LoadAll(ctx context.Context) ([]byte, error)
	// SaveAll replaces the entire serialized collection.
	SaveAll(ctx context.Context, data []byte) error
}
