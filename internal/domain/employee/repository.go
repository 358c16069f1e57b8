package employee

import "context"

// Repository defines the interface for employee persistence. The store keeps
// the full collection in memory and persists it as a whole, so the contract
// is collection-granular rather than per-record.
type Repository interface {
	// LoadAll reads every persisted record in stored order. A missing
	// backing file is not an error and yields an empty slice.
	LoadAll(ctx context.Context) ([]*Employee, error)

	// SaveAll replaces the persisted collection with the given records,
	// atomically from the caller's perspective. On failure the previously
	// persisted state must remain intact.
	SaveAll(ctx context.Context, employees []*Employee) error
}
