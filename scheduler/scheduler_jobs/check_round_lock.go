package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/tipService"
)

// CheckRoundLock announces the round-wide lockout once the active
// round's first kickoff has passed. The lock itself is enforced at
// submission time; this job only tells the channel about it.
func CheckRoundLock(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckRoundLock", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckRoundLock: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Find(&guilds)
	if result.Error != nil {
		return result.Error
	}

	for _, guild := range guilds {
		if guild.LockAnnouncedRound >= guild.ActiveRound || guild.TipChannelID == "" {
			continue
		}

		comp, err := extService.GetCompetition(guild.GuildID, guild.ActiveRound)
		if err != nil {
			log.Printf("Error loading competition for guild %s: %v", guild.GuildID, err)
			continue
		}

		if !tipService.RoundLocked(guild.ActiveRound, guild.ActiveRound, comp.Fixtures, time.Now()) {
			continue
		}

		_, err = s.ChannelMessageSend(guild.TipChannelID, fmt.Sprintf(
			"🔒 Round %d is locked! The first game has kicked off, so tips for the whole round are closed. Good luck to the upset chasers.",
			guild.ActiveRound))
		if err != nil {
			log.Printf("Error announcing round lock in guild %s: %v", guild.GuildID, err)
			continue
		}

		guild.LockAnnouncedRound = guild.ActiveRound
		db.Save(&guild)
	}

	return nil
}
