package plant

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// Record is a single tracked plant in the user's garden.
//
// Descriptive fields (CommonName, ScientificName, Info, Image) are set at
// creation and never auto-updated. LastWateredAt moves only through the
// "water now" action; NextWaterAt is derived from LastWateredAt and
// WaterIntervalDays and is recomputed whenever either changes or a weather
// adjustment is applied.
type Record struct {
	ID                  string    `json:"id"`
	CommonName          string    `json:"commonName"`
	ScientificName      string    `json:"scientificName"`
	Info                string    `json:"info"`
	Image               string    `json:"image,omitempty"`
	WaterIntervalDays   int       `json:"waterIntervalDays"`
	SunlightHoursNeeded float64   `json:"sunlightHoursNeeded"`
	AddedAt             time.Time `json:"addedAt"`
	LastWateredAt       time.Time `json:"lastWateredAt"`
	NextWaterAt         time.Time `json:"nextWaterAt"`
}

// NewID возвращает непрозрачный идентификатор записи, генерируется на клиенте
func NewID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand на поддерживаемых платформах не возвращает ошибку
		panic(err)
	}
	return hex.EncodeToString(b)
}

// Validate checks the record invariants before it is persisted or synced.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(r.CommonName) == "" {
		return ErrEmptyName
	}
	if r.WaterIntervalDays <= 0 {
		return ErrInvalidInterval
	}
	if r.SunlightHoursNeeded <= 0 {
		return ErrInvalidSunlight
	}
	if r.AddedAt.IsZero() || r.LastWateredAt.IsZero() || r.NextWaterAt.IsZero() {
		return ErrZeroTimestamp
	}
	if r.NextWaterAt.Before(r.LastWateredAt) {
		return ErrNextBeforeLast
	}
	return nil
}

// Collection is the full set of a user's tracked plants. Order carries no
// meaning; IDs are unique within a collection.
type Collection []Record

// FindByID returns the record with the given id, or ErrNotFound.
func (c Collection) FindByID(id string) (Record, error) {
	for _, r := range c {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}

// Replace returns a copy of the collection with the record of the same ID
// replaced. The original collection is not modified.
func (c Collection) Replace(rec Record) (Collection, error) {
	out := make(Collection, len(c))
	copy(out, c)
	for i, r := range out {
		if r.ID == rec.ID {
			out[i] = rec
			return out, nil
		}
	}
	return nil, ErrNotFound
}

// Remove returns a copy of the collection without the record of the given ID.
func (c Collection) Remove(id string) (Collection, error) {
	out := make(Collection, 0, len(c))
	found := false
	for _, r := range c {
		if r.ID == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		return nil, ErrNotFound
	}
	return out, nil
}
