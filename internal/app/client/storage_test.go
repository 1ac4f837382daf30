package client

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/plant"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCollection(t *testing.T) plant.Collection {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return plant.Collection{
		{
			ID:                  "a1",
			CommonName:          "Monstera",
			ScientificName:      "Monstera deliciosa",
			Info:                "likes bright indirect light",
			WaterIntervalDays:   7,
			SunlightHoursNeeded: 6,
			AddedAt:             now,
			LastWateredAt:       now,
			NextWaterAt:         now.Add(7 * 24 * time.Hour),
		},
		{
			ID:                  "b2",
			CommonName:          "Cactus",
			WaterIntervalDays:   21,
			SunlightHoursNeeded: 8,
			AddedAt:             now,
			LastWateredAt:       now,
			NextWaterAt:         now.Add(21 * 24 * time.Hour),
		},
	}
}

// failingStorage имитирует отказавший бэкенд.
type failingStorage struct{}

var errBackend = errors.New("backend unavailable")

func (failingStorage) SaveCollection(plant.Collection) error          { return errBackend }
func (failingStorage) LoadCollection() (plant.Collection, error)      { return nil, errBackend }
func (failingStorage) SaveSetting(string, []byte) error               { return errBackend }
func (failingStorage) LoadSetting(string) ([]byte, bool, error)       { return nil, false, errBackend }
func (failingStorage) Close() error                                   { return nil }

func TestSQLiteStorage_RoundTrip(t *testing.T) {
	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "garden.db"))
	require.NoError(t, err)
	defer storage.Close()

	want := testCollection(t)
	require.NoError(t, storage.SaveCollection(want))

	got, err := storage.LoadCollection()
	require.NoError(t, err)
	assert.ElementsMatch(t, want, got)

	// повторное сохранение заменяет коллекцию целиком
	require.NoError(t, storage.SaveCollection(want[:1]))
	got, err = storage.LoadCollection()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteStorage_Settings(t *testing.T) {
	storage, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "garden.db"))
	require.NoError(t, err)
	defer storage.Close()

	_, ok, err := storage.LoadSetting("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.SaveSetting("k", []byte(`"v1"`)))
	require.NoError(t, storage.SaveSetting("k", []byte(`"v2"`)))

	value, ok, err := storage.LoadSetting("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"v2"`, string(value))
}

func TestBoltStorage_RoundTrip(t *testing.T) {
	storage, err := NewBoltStorage(filepath.Join(t.TempDir(), "fallback.db"))
	require.NoError(t, err)
	defer storage.Close()

	want := testCollection(t)
	require.NoError(t, storage.SaveCollection(want))

	got, err := storage.LoadCollection()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_FallbackOnPrimaryFailure(t *testing.T) {
	fallback, err := NewBoltStorage(filepath.Join(t.TempDir(), "fallback.db"))
	require.NoError(t, err)

	store := NewStore(failingStorage{}, fallback, testLogger())
	defer store.Close()

	want := testCollection(t)
	require.NoError(t, store.SaveCollection(want))
	assert.Equal(t, want, store.LoadCollection())

	stamp := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSettingTime(SettingLastSynced, stamp))
	assert.True(t, stamp.Equal(store.SettingTime(SettingLastSynced)))
}

func TestStore_BothBackendsFail(t *testing.T) {
	store := NewStore(failingStorage{}, failingStorage{}, testLogger())

	err := store.SaveCollection(testCollection(t))
	assert.ErrorIs(t, err, ErrStorage)

	// чтение деградирует до пустой коллекции вместо ошибки
	assert.Empty(t, store.LoadCollection())
	assert.True(t, store.SettingTime(SettingLastSynced).IsZero())
}

func TestStore_MissingSettingReadsAsZeroTime(t *testing.T) {
	primary, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "garden.db"))
	require.NoError(t, err)
	fallback, err := NewBoltStorage(filepath.Join(t.TempDir(), "fallback.db"))
	require.NoError(t, err)

	store := NewStore(primary, fallback, testLogger())
	defer store.Close()

	assert.True(t, store.SettingTime(SettingLastLocalUpdate).IsZero())
}
