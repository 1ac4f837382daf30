package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"plantkeeper/internal/domain/plant"
)

// SQLiteStorage — основной бэкенд локального хранилища.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("открытие базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("инициализация таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS plants (
			id TEXT PRIMARY KEY,
			common_name TEXT NOT NULL,
			scientific_name TEXT NOT NULL DEFAULT '',
			info TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			water_interval_days INTEGER NOT NULL,
			sunlight_hours REAL NOT NULL,
			added_at TEXT NOT NULL,
			last_watered_at TEXT NOT NULL,
			next_water_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_plants_next_water ON plants(next_water_at);
	`)

	return err
}

// SaveCollection заменяет всю коллекцию в одной транзакции: либо
// сохраняется целиком, либо состояние остается прежним.
func (s *SQLiteStorage) SaveCollection(records plant.Collection) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM plants"); err != nil {
		return fmt.Errorf("очистка коллекции: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO plants (id, common_name, scientific_name, info, image,
		                    water_interval_days, sunlight_hours,
		                    added_at, last_watered_at, next_water_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("подготовка запроса: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.Exec(
			rec.ID, rec.CommonName, rec.ScientificName, rec.Info, rec.Image,
			rec.WaterIntervalDays, rec.SunlightHoursNeeded,
			rec.AddedAt.Format(time.RFC3339Nano),
			rec.LastWateredAt.Format(time.RFC3339Nano),
			rec.NextWaterAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("сохранение записи %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) LoadCollection() (plant.Collection, error) {
	rows, err := s.db.Query(`
		SELECT id, common_name, scientific_name, info, image,
		       water_interval_days, sunlight_hours,
		       added_at, last_watered_at, next_water_at
		FROM plants
	`)
	if err != nil {
		return nil, fmt.Errorf("чтение коллекции: %w", err)
	}
	defer rows.Close()

	records := plant.Collection{}
	for rows.Next() {
		var rec plant.Record
		var addedAt, lastWateredAt, nextWaterAt string

		if err := rows.Scan(&rec.ID, &rec.CommonName, &rec.ScientificName,
			&rec.Info, &rec.Image, &rec.WaterIntervalDays, &rec.SunlightHoursNeeded,
			&addedAt, &lastWateredAt, &nextWaterAt); err != nil {
			return nil, fmt.Errorf("сканирование записи: %w", err)
		}

		// Испорченная метка времени — это ошибка чтения, а не "нулевая дата"
		if rec.AddedAt, err = time.Parse(time.RFC3339Nano, addedAt); err != nil {
			return nil, fmt.Errorf("запись %s: added_at: %w", rec.ID, err)
		}
		if rec.LastWateredAt, err = time.Parse(time.RFC3339Nano, lastWateredAt); err != nil {
			return nil, fmt.Errorf("запись %s: last_watered_at: %w", rec.ID, err)
		}
		if rec.NextWaterAt, err = time.Parse(time.RFC3339Nano, nextWaterAt); err != nil {
			return nil, fmt.Errorf("запись %s: next_water_at: %w", rec.ID, err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *SQLiteStorage) SaveSetting(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("сохранение настройки %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) LoadSetting(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("чтение настройки %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
