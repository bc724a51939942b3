package ports

import "context"

// Keys of the two entries the catalog persists
const (
	KeyIdeas = "ideas"
	KeyIndex = "ideaTagIndex"
)

// KVStore is a key-value store holding whole JSON documents.
// Put must replace the value of a key atomically: a failed write leaves the
// previous value readable.
type KVStore interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put replaces the value for key
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources
	Close() error
}
