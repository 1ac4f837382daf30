package schedule

import (
	"errors"
)

var (
	ErrZeroTime        = errors.New("timestamp is zero")
	ErrInvalidInterval = errors.New("interval must be a positive number of days")
	ErrInvalidFactor   = errors.New("adjustment factor must be positive")
)
