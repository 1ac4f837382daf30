package garden

import (
	"errors"
)

var (
	ErrSnapshotNotFound = errors.New("garden snapshot not found")
	ErrEmptyPayload     = errors.New("snapshot payload is empty")
)
