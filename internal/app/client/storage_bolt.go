package client

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"plantkeeper/internal/domain/plant"
)

const (
	gardenBucket   = "garden"
	settingsBucket = "settings"
	collectionKey  = "collection"
)

// BoltStorage — резервный бэкенд: вся коллекция хранится одним
// сериализованным блобом, настройки — в отдельном бакете.
type BoltStorage struct {
	conn *bbolt.DB
}

func NewBoltStorage(path string) (*BoltStorage, error) {
	// Timeout защищает от дедлока, если база уже открыта другим процессом
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("открытие bolt-базы: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(gardenBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(settingsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("создание бакетов: %w", err)
	}

	return &BoltStorage{conn: db}, nil
}

func (b *BoltStorage) SaveCollection(records plant.Collection) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("сериализация коллекции: %w", err)
	}

	return b.conn.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(gardenBucket)).Put([]byte(collectionKey), data)
	})
}

func (b *BoltStorage) LoadCollection() (plant.Collection, error) {
	records := plant.Collection{}

	err := b.conn.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(gardenBucket)).Get([]byte(collectionKey))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &records)
	})
	if err != nil {
		return nil, fmt.Errorf("чтение коллекции: %w", err)
	}

	return records, nil
}

func (b *BoltStorage) SaveSetting(key string, value []byte) error {
	return b.conn.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(settingsBucket)).Put([]byte(key), value)
	})
}

func (b *BoltStorage) LoadSetting(key string) ([]byte, bool, error) {
	var value []byte
	err := b.conn.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(settingsBucket)).Get([]byte(key))
		if data != nil {
			value = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (b *BoltStorage) Close() error {
	return b.conn.Close()
}
