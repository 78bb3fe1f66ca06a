package guildService

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/common"
)

// GetGuildInfo fetches or bootstraps the competition row for a guild.
// A new guild starts at round 1 with the default member roster.
func GetGuildInfo(s *discordgo.Session, db *gorm.DB, guildID string, channelID string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, TipChannelID: channelID, GuildName: guildInfo.Name, ActiveRound: 1, MaxRound: 27}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild

		if err := SeedRoster(db, guildID); err != nil {
			return nil, err
		}
	} else {
		checkGuild, err := s.Guild(guildID)
		if err != nil {
			common.SendError(s, nil, err, db)
		} else {
			if guild.GuildName != checkGuild.Name {
				guild.GuildName = checkGuild.Name
				db.Save(&guild)
			}
		}
	}

	return &guild, nil
}

// Members returns a guild's roster ordered by member key.
func Members(db *gorm.DB, guildID string) ([]models.Member, error) {
	var members []models.Member
	result := db.Where("guild_id = ?", guildID).Order("member_key").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

// FindMember resolves a member by key or display name.
func FindMember(db *gorm.DB, guildID string, nameOrKey string) (models.Member, bool) {
	var member models.Member
	result := db.Where("guild_id = ? AND (member_key = ? OR name = ?)", guildID, nameOrKey, nameOrKey).First(&member)
	if result.Error != nil || member.ID == 0 {
		return models.Member{}, false
	}
	return member, true
}

func SetTipChannel(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		err := common.RespondEphemeral(s, i, "You are not authorized to use this command.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	guild, err := GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	guild.TipChannelID = i.ChannelID
	db.Save(guild)

	err = common.RespondEphemeral(s, i, "This channel now receives round lock and settlement announcements.")
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// SeedRoster inserts the default competition roster for a guild,
// skipping any member key already present.
func SeedRoster(db *gorm.DB, guildID string) error {
	for idx, seed := range DefaultRoster {
		member := models.Member{
			GuildID:   guildID,
			MemberKey: "m" + strconv.Itoa(idx+1),
			Name:      seed.Name,
			Secret:    seed.Secret,
		}
		result := db.Where("guild_id = ? AND member_key = ?", guildID, member.MemberKey).
			FirstOrCreate(&member)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
