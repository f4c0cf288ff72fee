package persist

import (
	"context"
	"errors"
)

// SnapshotStore persists an opaque cart snapshot blob across restarts.
type SnapshotStore interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte) error
}

var ErrNoSnapshot = errors.New("no snapshot")
