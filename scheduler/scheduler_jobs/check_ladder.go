package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/extService"
)

// CheckLadderRefresh re-pulls each guild's active round snapshot so
// rank differentials track the real ladder. A malformed or unavailable
// feed leaves the cached competition untouched.
func CheckLadderRefresh(_ *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckLadderRefresh", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckLadderRefresh: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Find(&guilds)
	if result.Error != nil {
		return result.Error
	}

	for _, guild := range guilds {
		_, err := extService.RefreshCompetition(guild.GuildID, guild.ActiveRound)
		if err != nil {
			log.Printf("Error refreshing competition for guild %s: %v", guild.GuildID, err)
		}
	}

	return nil
}
