package services

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services/common"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
)

// ShowMyTips renders a member's tip history across rounds. Without a
// member option it falls back to whoever the session last tipped as.
func ShowMyTips(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, fmt.Errorf("error getting guild info: %v", err), db)
		return
	}

	store := historyService.StoreFor(db, i.GuildID)

	nameOrKey := store.CurrentMember()
	options := i.ApplicationCommandData().Options
	if len(options) > 0 {
		nameOrKey = options[0].StringValue()
	}
	if nameOrKey == "" {
		err := common.RespondEphemeral(s, i, "Nobody has tipped yet. Pass a member name to view their history.")
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	member, ok := guildService.FindMember(db, i.GuildID, nameOrKey)
	if !ok {
		err := common.RespondEphemeral(s, i, fmt.Sprintf("No member named **%s** in the competition roster.", nameOrKey))
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	history := store.MemberHistory(member.MemberKey)
	if len(history) == 0 {
		err := common.RespondEphemeral(s, i, fmt.Sprintf("**%s** has not tipped yet.", member.Name))
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	comp, compErr := extService.GetCompetition(i.GuildID, guild.ActiveRound)

	rounds := make([]int, 0, len(history))
	for round := range history {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	description := ""
	for _, round := range rounds {
		record := history[round]
		description += fmt.Sprintf("**Round %d**: %s over %s — %s\n",
			round,
			teamLabel(comp, compErr, record.SelectedTeamID),
			teamLabel(comp, compErr, record.OpponentID),
			statusLabel(record))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🕑 %s's Tips", member.Name),
		Description: description,
		Color:       0x004e33,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
	}
}

// teamLabel prefers the display name from the current competition and
// falls back to the stored identifier for teams from older snapshots.
func teamLabel(comp *extService.Competition, compErr error, teamID string) string {
	if compErr == nil {
		if team, ok := comp.Team(teamID); ok {
			return team.Name
		}
	}
	return teamID
}

func statusLabel(record models.HistoryRecord) string {
	switch record.Status {
	case models.TipWon:
		return fmt.Sprintf("✅ won, +%d points", record.PointsEarned)
	case models.TipLost:
		return "❌ lost, 0 points"
	default:
		return fmt.Sprintf("⏳ pending, %d potential points", record.PointsEarned)
	}
}
