package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
	"upsetTipBot/services/leaderboardService"
)

// RefreshMemberTotals recomputes the decorative TotalPoints cache on
// the roster from the history store. The leaderboard never reads these
// columns; they exist for ad-hoc queries against the members table.
func RefreshMemberTotals(db *gorm.DB, guildID string) {
	members, err := guildService.Members(db, guildID)
	if err != nil {
		log.Printf("Error fetching roster for totals refresh: %v", err)
		return
	}

	store := historyService.StoreFor(db, guildID)
	history := store.Snapshot()

	for _, member := range members {
		total := 0
		for _, record := range history[member.MemberKey] {
			total += leaderboardService.EarnedPoints(record)
		}
		if member.TotalPoints != total {
			member.TotalPoints = total
			db.Save(&member)
		}
	}
}

// RunTotalsRebuildMigration backfills TotalPoints for every guild once.
// Stored totals are a cache, never a source of truth, so a rebuild from
// history is always safe to repeat if the migration row is cleared.
func RunTotalsRebuildMigration(db *gorm.DB) error {
	var existingMigration models.Migration
	result := db.Where("name = ?", "rebuild_member_totals").First(&existingMigration)
	if result.Error == nil && existingMigration.ID != 0 {
		log.Println("Member totals rebuild migration has already been executed. Skipping.")
		return nil
	}

	log.Println("Starting member totals rebuild migration...")

	var guilds []models.Guild
	if err := db.Find(&guilds).Error; err != nil {
		return err
	}

	for _, guild := range guilds {
		RefreshMemberTotals(db, guild.GuildID)
	}

	migration := models.Migration{
		Name:       "rebuild_member_totals",
		ExecutedAt: time.Now(),
	}
	if err := db.Create(&migration).Error; err != nil {
		return err
	}

	log.Printf("Member totals rebuild migration completed for %d guilds.", len(guilds))
	return nil
}
