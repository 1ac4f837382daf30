package plant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Record{
		ID:                  "a1",
		CommonName:          "Monstera",
		WaterIntervalDays:   7,
		SunlightHoursNeeded: 6,
		AddedAt:             now,
		LastWateredAt:       now,
		NextWaterAt:         now.Add(7 * 24 * time.Hour),
	}
}

func TestRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr error
	}{
		{"valid record", func(*Record) {}, nil},
		{"empty id", func(r *Record) { r.ID = " " }, ErrEmptyID},
		{"empty name", func(r *Record) { r.CommonName = "" }, ErrEmptyName},
		{"zero interval", func(r *Record) { r.WaterIntervalDays = 0 }, ErrInvalidInterval},
		{"negative sunlight", func(r *Record) { r.SunlightHoursNeeded = -1 }, ErrInvalidSunlight},
		{"zero timestamp", func(r *Record) { r.LastWateredAt = time.Time{} }, ErrZeroTimestamp},
		{"next before last", func(r *Record) { r.NextWaterAt = r.LastWateredAt.Add(-time.Hour) }, ErrNextBeforeLast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := rec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCollection_Replace_DoesNotMutateOriginal(t *testing.T) {
	original := Collection{validRecord()}

	changed := validRecord()
	changed.CommonName = "Renamed"

	replaced, err := original.Replace(changed)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", replaced[0].CommonName)
	assert.Equal(t, "Monstera", original[0].CommonName)
}

func TestCollection_FindByID(t *testing.T) {
	c := Collection{validRecord()}

	rec, err := c.FindByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "Monstera", rec.CommonName)

	_, err = c.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Remove(t *testing.T) {
	c := Collection{validRecord()}

	out, err := c.Remove("a1")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Len(t, c, 1)

	_, err = c.Remove("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
