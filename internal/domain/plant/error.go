package plant

import (
	"errors"
)

var (
	ErrEmptyID         = errors.New("plant id is empty")
	ErrEmptyName       = errors.New("plant common name is empty")
	ErrInvalidInterval = errors.New("water interval must be a positive number of days")
	ErrInvalidSunlight = errors.New("sunlight hours must be positive")
	ErrZeroTimestamp   = errors.New("plant record has a zero timestamp")
	ErrNextBeforeLast  = errors.New("nextWaterAt precedes lastWateredAt")
	ErrNotFound        = errors.New("plant not found")
)
