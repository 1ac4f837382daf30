package garden

import (
	"context"
	"time"
)

// Repository хранит снапшоты коллекций по пользователям
type Repository interface {
	// Get returns the raw snapshot payload and its server timestamp,
	// or ErrSnapshotNotFound.
	Get(ctx context.Context, userID int) ([]byte, time.Time, error)

	// Put replaces the user's snapshot and returns the server-assigned
	// LastUpdated timestamp.
	Put(ctx context.Context, userID int, payload []byte) (time.Time, error)
}
