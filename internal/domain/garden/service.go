package garden

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/plant"
)

// Servicer is the business logic around per-user garden snapshots.
type Servicer interface {
	Get(ctx context.Context, userID int) (*Snapshot, error)
	Put(ctx context.Context, userID int, records plant.Collection) (time.Time, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new garden snapshot service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "garden_service"),
	}
}

// Get returns the user's current snapshot, or ErrSnapshotNotFound when the
// user has never uploaded one.
func (s *Service) Get(ctx context.Context, userID int) (*Snapshot, error) {
	payload, lastUpdated, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var records plant.Collection
	if err := json.Unmarshal(payload, &records); err != nil {
		s.log.Error("stored snapshot is not valid JSON", "user_id", userID, "error", err)
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return &Snapshot{
		UserID:      userID,
		Records:     records,
		LastUpdated: lastUpdated,
	}, nil
}

// Put validates and stores the whole collection, replacing whatever snapshot
// the user had before. Returns the server-assigned timestamp.
func (s *Service) Put(ctx context.Context, userID int, records plant.Collection) (time.Time, error) {
	if records == nil {
		return time.Time{}, ErrEmptyPayload
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return time.Time{}, fmt.Errorf("record %q: %w", rec.ID, err)
		}
		if seen[rec.ID] {
			return time.Time{}, fmt.Errorf("record %q: duplicate id", rec.ID)
		}
		seen[rec.ID] = true
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return time.Time{}, fmt.Errorf("encode snapshot: %w", err)
	}

	lastUpdated, err := s.repo.Put(ctx, userID, payload)
	if err != nil {
		return time.Time{}, fmt.Errorf("store snapshot: %w", err)
	}

	s.log.Debug("snapshot replaced", "user_id", userID, "records", len(records))
	return lastUpdated, nil
}
