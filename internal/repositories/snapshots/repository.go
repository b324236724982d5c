// Package snapshots is the local persistence mirror: durable key-value
// snapshots of state-container slices, used only to survive restarts before
// the remote store responds. Read once at startup, written on every
// corresponding reducer run. The stored shape is not versioned.
package snapshots

import "context"

// Keys under which slice snapshots are stored.
const (
	KeyUser  = "user"
	KeyTasks = "tasks"
)

type Repository interface {
	// Get returns the stored snapshot, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
