package models

import "gorm.io/gorm"

// Member is a competition participant. The Secret is a shared phrase
// checked by tipService.Authorize before a tip is accepted; it provides
// no confidentiality or integrity guarantee and is not real auth.
// TotalPoints is a decorative cache - the authoritative total is always
// recomputed from the history store.
type Member struct {
	gorm.Model
	ID          uint   `gorm:"primaryKey"`
	GuildID     string `gorm:"uniqueIndex:member_guild_idx; size:64"`
	MemberKey   string `gorm:"uniqueIndex:member_guild_idx; size:64"`
	Name        string
	Secret      string
	TotalPoints int
}
