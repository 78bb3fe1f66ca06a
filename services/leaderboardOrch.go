package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/services/common"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
	"upsetTipBot/services/leaderboardService"
)

// ShowLeaderboard recomputes the standings from the history store and
// renders them. Stored member totals are never used as a source.
func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	members, err := guildService.Members(db, i.GuildID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error fetching roster: %v", err), db)
		return
	}
	if len(members) == 0 {
		err := common.RespondEphemeral(s, i, "No members found on the leaderboard.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	store := historyService.StoreFor(db, i.GuildID)
	entries := leaderboardService.Compute(members, store.Snapshot(), 1, guild.ActiveRound)

	description := ""
	for idx, entry := range entries {
		tipped := 0
		for _, points := range entry.RoundPoints {
			if points > 0 {
				tipped++
			}
		}
		description += fmt.Sprintf("**%d. %s** - %d points (%d winning upsets)\n",
			idx+1, entry.Member.Name, entry.Total, tipped)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 The Upset Leaderboard",
		Description: description,
		Color:       0xf9d31d,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Rounds 1-%d • points are awarded on successful underdog rank differentials", guild.ActiveRound),
		},
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}
