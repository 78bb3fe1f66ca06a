package historyService

import (
	"errors"

	"gorm.io/gorm"

	"upsetTipBot/models"
)

const storageVersion = 1

// StorageKey builds the fixed key one guild's competition snapshot is
// stored under.
func StorageKey(guildID string) string {
	return "upset_tipping_v1:" + guildID
}

// GormStorage backs the store with a single key-value row per
// competition; every save replaces the whole snapshot.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Load(key string) ([]byte, bool, error) {
	var record models.StorageRecord
	result := g.db.Where("`key` = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return []byte(record.Value), true, nil
}

func (g *GormStorage) Save(key string, value []byte) error {
	var record models.StorageRecord
	result := g.db.Where("`key` = ?", key).First(&record)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		record = models.StorageRecord{Key: key, Version: storageVersion, Value: string(value)}
		return g.db.Create(&record).Error
	}

	record.Version = storageVersion
	record.Value = string(value)
	return g.db.Save(&record).Error
}
