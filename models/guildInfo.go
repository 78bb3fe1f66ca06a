package models

import "gorm.io/gorm"

type Guild struct {
	gorm.Model
	ID                 uint `gorm:"primaryKey"`
	GuildID            string
	GuildName          string
	TipChannelID       string
	ActiveRound        int `gorm:"default:1"`
	MaxRound           int `gorm:"default:27"`
	LockAnnouncedRound int `gorm:"default:0"`
}
