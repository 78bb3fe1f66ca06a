package services

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/common"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
)

// SettleTip is the manual settlement entry point for feeds without a
// results endpoint: an admin records the real-world outcome of a
// member's tip. Points stay as computed at submission time.
func SettleTip(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		err := common.RespondEphemeral(s, i, "You are not authorized to use this command.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	options := i.ApplicationCommandData().Options
	nameOrKey := options[0].StringValue()
	round := int(options[1].IntValue())
	outcome := models.TipStatus(options[2].StringValue())

	member, ok := guildService.FindMember(db, i.GuildID, nameOrKey)
	if !ok {
		err := common.RespondEphemeral(s, i, fmt.Sprintf("No member named **%s** in the competition roster.", nameOrKey))
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	store := historyService.StoreFor(db, i.GuildID)
	record, err := store.SettleTip(member.MemberKey, round, outcome)
	if err != nil {
		respErr := common.RespondEphemeral(s, i, fmt.Sprintf("Could not settle: %v", err))
		if respErr != nil {
			common.SendError(s, i, respErr, db)
		}
		return
	}

	RefreshMemberTotals(db, i.GuildID)

	earned := 0
	if record.Status == models.TipWon {
		earned = record.PointsEarned
	}
	err = common.RespondEphemeral(s, i, fmt.Sprintf(
		"Settled **%s**'s round %d tip as **%s** (+%d points).", member.Name, round, record.Status, earned))
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// AdvanceRound moves the guild's active competition round. Earlier
// rounds become read-only and the round's snapshot is re-pulled.
func AdvanceRound(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		err := common.RespondEphemeral(s, i, "You are not authorized to use this command.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	options := i.ApplicationCommandData().Options
	round := int(options[0].IntValue())
	if round < 1 || round > guild.MaxRound {
		err := common.RespondEphemeral(s, i, fmt.Sprintf("Round must be between 1 and %d.", guild.MaxRound))
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	guild.ActiveRound = round
	db.Save(guild)

	if _, err := extService.RefreshCompetition(i.GuildID, round); err != nil {
		common.SendError(s, i, fmt.Errorf("round advanced but snapshot refresh failed: %v", err), db)
		return
	}

	err = common.RespondEphemeral(s, i, fmt.Sprintf("Active competition round is now **%d**.", round))
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// RefreshData force-pulls the ladder/fixture snapshot for the active
// round. A malformed snapshot is rejected and the previous data kept.
func RefreshData(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		err := common.RespondEphemeral(s, i, "You are not authorized to use this command.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	comp, err := extService.RefreshCompetition(i.GuildID, guild.ActiveRound)
	if err != nil {
		if errors.Is(err, extService.ErrMalformedSnapshot) {
			respErr := common.RespondEphemeral(s, i, fmt.Sprintf(
				"Feed data was rejected and the previous snapshot kept: %v", err))
			if respErr != nil {
				common.SendError(s, i, respErr, db)
			}
			return
		}
		common.SendError(s, i, fmt.Errorf("error refreshing data: %v", err), db)
		return
	}

	err = common.RespondEphemeral(s, i, fmt.Sprintf(
		"Round %d refreshed: %d teams on the ladder, %d fixtures.", guild.ActiveRound, len(comp.Teams), len(comp.Fixtures)))
	if err != nil {
		common.SendError(s, i, err, db)
	}
}
