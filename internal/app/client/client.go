package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"plantkeeper/internal/app/client/config"
	"plantkeeper/internal/domain/plant"
	"plantkeeper/internal/domain/schedule"
)

// App — сеанс работы с локальной коллекцией. Все мутации проходят через
// него: каждая меняет коллекцию целиком, сохраняет ее и продвигает метку
// последнего локального изменения.
type App struct {
	cfg        *config.Config
	log        *slog.Logger
	store      *Store
	remote     *httpClient
	reconciler *Reconciler
	recognizer *Recognizer

	now func() time.Time
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.ConfigDir, 0700); err != nil {
		return nil, fmt.Errorf("создание каталога данных: %w", err)
	}

	primary, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	fallback, err := NewBoltStorage(cfg.FallbackPath)
	if err != nil {
		primary.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	store := NewStore(primary, fallback, log)
	remote := NewHTTPClient(cfg, log)

	app := &App{
		cfg:        cfg,
		log:        log.With("component", "app"),
		store:      store,
		remote:     remote,
		reconciler: NewReconciler(store, remote, log),
		recognizer: NewRecognizer(cfg, log),
		now:        time.Now,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		remote.SetToken(token)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// --- аутентификация ---

func (a *App) Register(ctx context.Context, login, password string) error {
	token, err := a.remote.Register(ctx, login, password)
	if err != nil {
		return err
	}
	return a.storeToken(token)
}

func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.remote.Login(ctx, login, password)
	if err != nil {
		return err
	}
	return a.storeToken(token)
}

func (a *App) IsAuthenticated() bool {
	token, err := a.loadToken()
	return err == nil && token != ""
}

func (a *App) storeToken(token string) error {
	a.remote.SetToken(token)
	if err := os.WriteFile(a.cfg.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("сохранение токена: %w", err)
	}
	return nil
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.cfg.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// --- операции с коллекцией ---

// AddPlant создает запись с вычисленной датой следующего полива
// и добавляет ее в коллекцию.
func (a *App) AddPlant(commonName, scientificName, info string, intervalDays int, sunlightHours float64) (plant.Record, error) {
	now := a.now()

	next, err := schedule.NextWaterAt(now, intervalDays)
	if err != nil {
		return plant.Record{}, err
	}

	rec := plant.Record{
		ID:                  plant.NewID(),
		CommonName:          commonName,
		ScientificName:      scientificName,
		Info:                info,
		WaterIntervalDays:   intervalDays,
		SunlightHoursNeeded: sunlightHours,
		AddedAt:             now,
		LastWateredAt:       now,
		NextWaterAt:         next,
	}
	if err := rec.Validate(); err != nil {
		return plant.Record{}, err
	}

	err = a.mutate(func(records plant.Collection) (plant.Collection, error) {
		return append(records, rec), nil
	})
	if err != nil {
		return plant.Record{}, err
	}

	a.log.Info("Растение добавлено", "id", rec.ID, "name", rec.CommonName)
	return rec, nil
}

// WaterPlant отмечает полив: момент полива становится новой точкой отсчета.
func (a *App) WaterPlant(id string) (plant.Record, error) {
	var watered plant.Record
	now := a.now()

	err := a.mutate(func(records plant.Collection) (plant.Collection, error) {
		rec, err := records.FindByID(id)
		if err != nil {
			return nil, err
		}

		rec.LastWateredAt = now
		rec.NextWaterAt, err = schedule.NextWaterAt(now, rec.WaterIntervalDays)
		if err != nil {
			return nil, err
		}

		watered = rec
		return records.Replace(rec)
	})
	return watered, err
}

func (a *App) RemovePlant(id string) error {
	return a.mutate(func(records plant.Collection) (plant.Collection, error) {
		return records.Remove(id)
	})
}

// UpdateInterval меняет интервал полива; дата следующего полива
// пересчитывается от последнего полива.
func (a *App) UpdateInterval(id string, intervalDays int) (plant.Record, error) {
	var updated plant.Record

	err := a.mutate(func(records plant.Collection) (plant.Collection, error) {
		rec, err := records.FindByID(id)
		if err != nil {
			return nil, err
		}

		rec.WaterIntervalDays = intervalDays
		rec.NextWaterAt, err = schedule.NextWaterAt(rec.LastWateredAt, intervalDays)
		if err != nil {
			return nil, err
		}

		updated = rec
		return records.Replace(rec)
	})
	return updated, err
}

// ApplyWeatherAdjustment подстраивает даты полива всей коллекции под
// погодные условия. Повторное применение тех же условий ничего не меняет.
func (a *App) ApplyWeatherAdjustment(cond schedule.Conditions) (int, error) {
	factor := cond.Factor()
	adjusted := 0

	err := a.mutate(func(records plant.Collection) (plant.Collection, error) {
		result := make(plant.Collection, 0, len(records))
		for _, rec := range records {
			next, err := schedule.ApplyAdjustment(rec, factor)
			if err != nil {
				return nil, fmt.Errorf("запись %s: %w", rec.ID, err)
			}
			if !next.NextWaterAt.Equal(rec.NextWaterAt) {
				adjusted++
			}
			result = append(result, next)
		}
		return result, nil
	})
	if err != nil {
		return 0, err
	}

	a.log.Info("Погодная корректировка применена", "factor", factor, "adjusted", adjusted)
	return adjusted, nil
}

// mutate применяет правку к текущей коллекции, сохраняет результат и
// продвигает метку последнего локального изменения.
func (a *App) mutate(fn func(plant.Collection) (plant.Collection, error)) error {
	records := a.store.LoadCollection()

	next, err := fn(records)
	if err != nil {
		return err
	}

	if err := a.store.SaveCollection(next); err != nil {
		return err
	}
	return a.store.SaveSettingTime(SettingLastLocalUpdate, a.now())
}

// --- чтение ---

// PlantView — запись вместе с ее расписанием ухода.
type PlantView struct {
	plant.Record
	Status   schedule.Status
	Progress float64
}

func (a *App) ListPlants() []PlantView {
	now := a.now()
	records := a.store.LoadCollection()

	views := make([]PlantView, 0, len(records))
	for _, rec := range records {
		views = append(views, PlantView{
			Record:   rec,
			Status:   schedule.CareStatus(rec.NextWaterAt, now),
			Progress: schedule.Progress(rec.LastWateredAt, rec.WaterIntervalDays, now),
		})
	}
	return views
}

func (a *App) GetPlant(id string) (PlantView, error) {
	rec, err := a.store.LoadCollection().FindByID(id)
	if err != nil {
		return PlantView{}, err
	}

	now := a.now()
	return PlantView{
		Record:   rec,
		Status:   schedule.CareStatus(rec.NextWaterAt, now),
		Progress: schedule.Progress(rec.LastWateredAt, rec.WaterIntervalDays, now),
	}, nil
}

// Reminders возвращает растения, требующие внимания в ближайшие дни.
func (a *App) Reminders(horizonDays int) []schedule.Reminder {
	return schedule.DueForReminder(a.store.LoadCollection(), a.now(), horizonDays)
}

// --- синхронизация и распознавание ---

func (a *App) Sync(ctx context.Context) (*SyncResult, error) {
	if !a.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return a.reconciler.Sync(ctx)
}

func (a *App) SyncState() SyncState {
	return a.reconciler.State()
}

func (a *App) Identify(ctx context.Context, imagePath string) (*Identification, error) {
	image, err := readImage(imagePath)
	if err != nil {
		return nil, err
	}
	return a.recognizer.Identify(ctx, image)
}

func (a *App) Diagnose(ctx context.Context, imagePath string) (*Diagnosis, error) {
	image, err := readImage(imagePath)
	if err != nil {
		return nil, err
	}
	return a.recognizer.Diagnose(ctx, image)
}

func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение изображения: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("файл изображения пуст")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return data, nil
	default:
		return nil, fmt.Errorf("неподдерживаемый формат изображения: %s", filepath.Ext(path))
	}
}

func (a *App) HealthCheck(ctx context.Context) error {
	return a.remote.HealthCheck(ctx)
}
