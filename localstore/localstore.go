package localstore

import (
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is one persisted namespace: a whole collection serialized as a single
// JSON value. Mutations rewrite the blob, they are never diffed.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// Store is the device-local persistence behind the reactive stores.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the local store database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save marshals v and upserts it under the namespace key.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	blob := Blob{Key: key, Data: data, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&blob).Error
}

// Load unmarshals the blob stored under key into out. A missing key leaves
// out untouched and returns false.
func (s *Store) Load(key string, out any) (bool, error) {
	var blob Blob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(blob.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a namespace entirely.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Blob{}, "key = ?", key).Error
}
