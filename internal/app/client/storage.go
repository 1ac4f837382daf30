package client

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"plantkeeper/internal/domain/plant"
)

// Имена настроек, которые читает реконсилятор синхронизации.
const (
	SettingLastLocalUpdate = "last_local_update"
	SettingLastSynced      = "last_synced"
)

// Storage — один бэкенд локального хранилища. Обе операции работают на
// уровне целой коллекции: частично записанное состояние наружу не видно.
type Storage interface {
	SaveCollection(records plant.Collection) error
	LoadCollection() (plant.Collection, error)
	SaveSetting(key string, value []byte) error
	LoadSetting(key string) ([]byte, bool, error)
	Close() error
}

// Store — двухуровневое локальное хранилище: основной бэкенд (SQLite) и
// резервный (bbolt). Запись уходит в основной; при его отказе та же запись
// повторяется в резервный. Операция проваливается (ErrStorage) только когда
// отказали оба — тогда вызывающий обязан сообщить пользователю, что
// изменения не сохранены.
type Store struct {
	primary  Storage
	fallback Storage
	log      *slog.Logger
}

func NewStore(primary, fallback Storage, log *slog.Logger) *Store {
	return &Store{
		primary:  primary,
		fallback: fallback,
		log:      log.With("component", "local_store"),
	}
}

// SaveCollection атомарно заменяет всю сохраненную коллекцию.
func (s *Store) SaveCollection(records plant.Collection) error {
	primaryErr := s.primary.SaveCollection(records)
	if primaryErr == nil {
		return nil
	}

	s.log.Warn("основное хранилище недоступно, пишем в резервное", "error", primaryErr)
	if err := s.fallback.SaveCollection(records); err != nil {
		return fmt.Errorf("%w: primary: %v; fallback: %v", ErrStorage, primaryErr, err)
	}
	return nil
}

// LoadCollection никогда не падает: основной бэкенд, затем резервный,
// затем пустая коллекция.
func (s *Store) LoadCollection() plant.Collection {
	records, err := s.primary.LoadCollection()
	if err == nil {
		return records
	}
	s.log.Warn("чтение из основного хранилища не удалось", "error", err)

	records, err = s.fallback.LoadCollection()
	if err != nil {
		s.log.Warn("чтение из резервного хранилища не удалось", "error", err)
		return plant.Collection{}
	}
	return records
}

// SaveSetting сохраняет произвольное JSON-сериализуемое значение по ключу.
func (s *Store) SaveSetting(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode setting %q: %w", key, err)
	}

	primaryErr := s.primary.SaveSetting(key, data)
	if primaryErr == nil {
		return nil
	}

	s.log.Warn("настройка не записана в основное хранилище", "key", key, "error", primaryErr)
	if err := s.fallback.SaveSetting(key, data); err != nil {
		return fmt.Errorf("%w: primary: %v; fallback: %v", ErrStorage, primaryErr, err)
	}
	return nil
}

// LoadSetting читает значение по ключу; возвращает false, если его нет
// ни в одном бэкенде.
func (s *Store) LoadSetting(key string, out any) bool {
	data, ok, err := s.primary.LoadSetting(key)
	if err != nil || !ok {
		if err != nil {
			s.log.Warn("настройка не прочитана из основного хранилища", "key", key, "error", err)
		}
		data, ok, err = s.fallback.LoadSetting(key)
		if err != nil || !ok {
			return false
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("настройка повреждена", "key", key, "error", err)
		return false
	}
	return true
}

// SettingTime — типизированный доступ к временным меткам синхронизации.
// Отсутствующая метка читается как нулевое время.
func (s *Store) SettingTime(key string) time.Time {
	var t time.Time
	if !s.LoadSetting(key, &t) {
		return time.Time{}
	}
	return t
}

func (s *Store) SaveSettingTime(key string, t time.Time) error {
	return s.SaveSetting(key, t)
}

func (s *Store) Close() error {
	primaryErr := s.primary.Close()
	fallbackErr := s.fallback.Close()
	if primaryErr != nil {
		return primaryErr
	}
	return fallbackErr
}
