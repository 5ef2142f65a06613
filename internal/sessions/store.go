package sessions

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when no snapshot exists for an id,
// including snapshots that have expired.
var ErrNotFound = errors.New("session not found")

// Store persists encoded session snapshots keyed by session id. Every Save
// restarts the snapshot's time to live.
type Store interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
	Close() error
}
