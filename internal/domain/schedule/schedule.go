// Package schedule turns raw watering state into actionable due/overdue
// signals and applies reversible environmental adjustments.
//
// All functions are pure: they take timestamps and records, return values and
// never touch storage. Malformed input is rejected with a typed error instead
// of silently producing an invalid date.
package schedule

import (
	"sort"
	"time"

	"plantkeeper/internal/domain/plant"
)

// DeadBand is the threshold below which an adjustment factor is ignored,
// so noisy weather inputs do not jitter the schedule back and forth.
const DeadBand = 0.15

const day = 24 * time.Hour

// StatusKind classifies a plant's watering urgency.
type StatusKind int

const (
	StatusOverdue StatusKind = iota
	StatusDueToday
	StatusDueIn
)

// Status is the care classification for a single record.
// Days is days late for StatusOverdue, days remaining for StatusDueIn
// and zero for StatusDueToday.
type Status struct {
	Kind StatusKind
	Days int
}

// Reminder pairs a record with its signed days-until-water
// (negative means overdue).
type Reminder struct {
	Record    plant.Record
	DaysUntil int
}

// NextWaterAt computes when a plant is due again after its last watering.
func NextWaterAt(lastWateredAt time.Time, intervalDays int) (time.Time, error) {
	if lastWateredAt.IsZero() {
		return time.Time{}, ErrZeroTime
	}
	if intervalDays <= 0 {
		return time.Time{}, ErrInvalidInterval
	}
	return lastWateredAt.Add(time.Duration(intervalDays) * day), nil
}

// CareStatus classifies nextWaterAt against now, truncating to whole days.
// A distance that truncates to zero in either direction is DueToday.
func CareStatus(nextWaterAt, now time.Time) Status {
	if now.Before(nextWaterAt) {
		days := int(nextWaterAt.Sub(now) / day)
		if days == 0 {
			return Status{Kind: StatusDueToday}
		}
		return Status{Kind: StatusDueIn, Days: days}
	}

	late := int(now.Sub(nextWaterAt) / day)
	if late == 0 {
		return Status{Kind: StatusDueToday}
	}
	return Status{Kind: StatusOverdue, Days: late}
}

// Progress reports how far the plant is through its watering interval,
// clamped to [0,1] regardless of clock skew or how long watering is overdue.
func Progress(lastWateredAt time.Time, intervalDays int, now time.Time) float64 {
	if intervalDays <= 0 {
		return 1
	}

	elapsed := now.Sub(lastWateredAt)
	if elapsed <= 0 {
		return 0
	}

	frac := float64(elapsed) / float64(time.Duration(intervalDays)*day)
	if frac > 1 {
		return 1
	}
	return frac
}

// ApplyAdjustment recomputes NextWaterAt as
// lastWateredAt + interval/factor, leaving the base interval untouched.
//
// The adjusted date is always derived from the last actual watering, never
// from a previously adjusted NextWaterAt, so repeated application with the
// same factor is idempotent and never compounds. Factors inside the dead-band
// return the record unchanged.
func ApplyAdjustment(rec plant.Record, factor float64) (plant.Record, error) {
	if factor <= 0 {
		return rec, ErrInvalidFactor
	}
	if rec.LastWateredAt.IsZero() {
		return rec, ErrZeroTime
	}
	if rec.WaterIntervalDays <= 0 {
		return rec, ErrInvalidInterval
	}

	if factor > 1-DeadBand && factor < 1+DeadBand {
		return rec, nil
	}

	base := time.Duration(rec.WaterIntervalDays) * day
	adjusted := time.Duration(float64(base) / factor)
	rec.NextWaterAt = rec.LastWateredAt.Add(adjusted)
	return rec, nil
}

// DueForReminder filters records whose days-until-water is at most
// horizonDays (overdue records included with negative days) and sorts them
// ascending, most overdue first. Ties keep the input order.
func DueForReminder(records plant.Collection, now time.Time, horizonDays int) []Reminder {
	due := make([]Reminder, 0, len(records))
	for _, rec := range records {
		days := daysUntil(rec.NextWaterAt, now)
		if days <= horizonDays {
			due = append(due, Reminder{Record: rec, DaysUntil: days})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DaysUntil < due[j].DaysUntil
	})
	return due
}

// daysUntil is the signed whole-day distance from now to next.
func daysUntil(next, now time.Time) int {
	if now.Before(next) {
		return int(next.Sub(now) / day)
	}
	return -int(now.Sub(next) / day)
}
