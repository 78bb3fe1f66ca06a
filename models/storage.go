package models

import "gorm.io/gorm"

// StorageRecord is the durable key-value row backing the history
// store. Value holds the whole persisted snapshot as JSON and is
// replaced in full on every write.
type StorageRecord struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	Key     string `gorm:"uniqueIndex; size:128"`
	Version int    `gorm:"default:1"`
	Value   string `gorm:"type:longtext"`
}
