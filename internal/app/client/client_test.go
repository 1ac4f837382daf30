package client

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantkeeper/internal/app/client/config"
	"plantkeeper/internal/domain/plant"
	"plantkeeper/internal/domain/schedule"
)

func newTestApp(t *testing.T) (*App, *time.Time) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{
		Env:           "local",
		ServerAddress: "localhost:8080",
		ConfigDir:     dir,
		TokenPath:     filepath.Join(dir, "token"),
		DataPath:      filepath.Join(dir, "garden.db"),
		FallbackPath:  filepath.Join(dir, "garden-fallback.db"),
	}

	app, err := NewApp(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := &now
	app.now = func() time.Time { return *clock }
	return app, clock
}

func TestApp_CareLifecycle(t *testing.T) {
	app, clock := newTestApp(t)
	t0 := *clock

	rec, err := app.AddPlant("Monstera", "Monstera deliciosa", "", 7, 6)
	require.NoError(t, err)
	assert.True(t, rec.NextWaterAt.Equal(t0.Add(7*24*time.Hour)))

	// через шесть дней полив через день
	*clock = t0.Add(6 * 24 * time.Hour)
	view, err := app.GetPlant(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusDueIn, view.Status.Kind)
	assert.Equal(t, 1, view.Status.Days)

	// через восемь дней полив просрочен на день
	*clock = t0.Add(8 * 24 * time.Hour)
	view, err = app.GetPlant(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusOverdue, view.Status.Kind)
	assert.Equal(t, 1, view.Status.Days)
	assert.Equal(t, 1.0, view.Progress)

	// полив сдвигает отсчет от момента полива, а не от старого графика
	watered, err := app.WaterPlant(rec.ID)
	require.NoError(t, err)
	assert.True(t, watered.LastWateredAt.Equal(t0.Add(8*24*time.Hour)))
	assert.True(t, watered.NextWaterAt.Equal(t0.Add(15*24*time.Hour)))
}

func TestApp_UpdateIntervalRecomputesFromLastWatering(t *testing.T) {
	app, clock := newTestApp(t)
	t0 := *clock

	rec, err := app.AddPlant("Fern", "", "", 7, 4)
	require.NoError(t, err)

	*clock = t0.Add(2 * 24 * time.Hour)
	updated, err := app.UpdateInterval(rec.ID, 3)
	require.NoError(t, err)

	// отсчет от последнего полива (t0), а не от момента правки
	assert.True(t, updated.NextWaterAt.Equal(t0.Add(3*24*time.Hour)))
}

func TestApp_RemovePlant(t *testing.T) {
	app, _ := newTestApp(t)

	rec, err := app.AddPlant("Aloe", "", "", 14, 8)
	require.NoError(t, err)

	require.NoError(t, app.RemovePlant(rec.ID))
	assert.Empty(t, app.ListPlants())

	err = app.RemovePlant(rec.ID)
	assert.ErrorIs(t, err, plant.ErrNotFound)
}

func TestApp_WeatherAdjustmentIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t)

	rec, err := app.AddPlant("Cactus", "", "", 10, 9)
	require.NoError(t, err)

	hot := schedule.Conditions{TemperatureC: 35, Humidity: 20, Precipitation: 0}

	adjusted, err := app.ApplyWeatherAdjustment(hot)
	require.NoError(t, err)
	assert.Equal(t, 1, adjusted)

	first, err := app.GetPlant(rec.ID)
	require.NoError(t, err)
	assert.True(t, first.NextWaterAt.Before(rec.NextWaterAt))

	// повторное применение тех же условий не сдвигает график дальше
	_, err = app.ApplyWeatherAdjustment(hot)
	require.NoError(t, err)

	second, err := app.GetPlant(rec.ID)
	require.NoError(t, err)
	assert.True(t, second.NextWaterAt.Equal(first.NextWaterAt))
}

func TestApp_MutationsAdvanceLocalUpdateStamp(t *testing.T) {
	app, clock := newTestApp(t)
	t0 := *clock

	_, err := app.AddPlant("Ivy", "", "", 5, 3)
	require.NoError(t, err)
	assert.True(t, app.store.SettingTime(SettingLastLocalUpdate).Equal(t0))

	*clock = t0.Add(time.Hour)
	views := app.ListPlants()
	require.Len(t, views, 1)

	_, err = app.WaterPlant(views[0].ID)
	require.NoError(t, err)
	assert.True(t, app.store.SettingTime(SettingLastLocalUpdate).Equal(t0.Add(time.Hour)))
}

func TestApp_ExportGarden(t *testing.T) {
	app, clock := newTestApp(t)

	rec, err := app.AddPlant("Monstera", "Monstera deliciosa", "", 7, 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, app.ExportGarden(&buf))

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.True(t, doc.ExportDate.Equal(*clock))
	assert.Equal(t, config.AppVersion, doc.AppVersion)
	require.Len(t, doc.GardenData, 1)
	assert.Equal(t, rec.ID, doc.GardenData[0].ID)
}

func TestApp_SyncRequiresAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := app.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
