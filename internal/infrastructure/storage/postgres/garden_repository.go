package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/garden"
)

type GardenRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewGardenRepository(db *Storage, log *slog.Logger) *GardenRepository {
	return &GardenRepository{
		db:  db,
		log: log.With("component", "garden_repository"),
	}
}

func (r *GardenRepository) Get(ctx context.Context, userID int) ([]byte, time.Time, error) {
	var payload []byte
	var lastUpdated time.Time

	err := r.db.Pool().QueryRow(ctx,
		`SELECT payload, last_updated FROM garden_snapshots WHERE user_id = $1`,
		userID).Scan(&payload, &lastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, time.Time{}, garden.ErrSnapshotNotFound
	}
	if err != nil {
		r.log.Error("failed to get snapshot", "user_id", userID, "error", err)
		return nil, time.Time{}, fmt.Errorf("get snapshot: %w", err)
	}

	return payload, lastUpdated, nil
}

// Put замещает снапшот пользователя; метку времени назначает база,
// чтобы все клиенты сравнивались с одними часами.
func (r *GardenRepository) Put(ctx context.Context, userID int, payload []byte) (time.Time, error) {
	var lastUpdated time.Time

	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO garden_snapshots (user_id, payload, last_updated)
         VALUES ($1, $2, NOW())
         ON CONFLICT (user_id) DO UPDATE
             SET payload = excluded.payload, last_updated = NOW()
         RETURNING last_updated`,
		userID, payload).Scan(&lastUpdated)
	if err != nil {
		r.log.Error("failed to put snapshot", "user_id", userID, "error", err)
		return time.Time{}, fmt.Errorf("put snapshot: %w", err)
	}

	return lastUpdated, nil
}
