package services

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/services/common"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/messageService"
	"upsetTipBot/services/tipService"
)

// ShowFixtures posts a round's draw with a tip button per eligible
// underdog. Defaults to the active competition round; other rounds are
// rendered view-only.
func ShowFixtures(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	round := guild.ActiveRound
	options := i.ApplicationCommandData().Options
	if len(options) > 0 {
		round = int(options[0].IntValue())
	}
	if round < 1 || round > guild.MaxRound {
		err := common.RespondEphemeral(s, i, fmt.Sprintf("Round must be between 1 and %d.", guild.MaxRound))
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	comp, err := extService.GetCompetition(i.GuildID, round)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error loading round %d data: %v", round, err), db)
		return
	}

	locked := tipService.RoundLocked(round, guild.ActiveRound, comp.Fixtures, time.Now())
	embed := messageService.BuildFixturesEmbed(comp, round, locked)
	components := messageService.GetTipButtons(comp, round, locked)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

func ShowLadder(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	comp, err := extService.GetCompetition(i.GuildID, guild.ActiveRound)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error loading ladder: %v", err), db)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{messageService.BuildLadderEmbed(comp)},
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}
