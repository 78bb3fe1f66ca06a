package interactionService

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/services/common"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
	"upsetTipBot/services/tipService"
)

// SubmitTip handles the authorization modal: re-checks every
// precondition against the current clock and records the tip,
// replacing any earlier tip for the same round. Rule rejections are
// reported to the user, never swallowed.
func SubmitTip(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB, customID string, adminSecret string) error {
	round, teamID, opponentID, err := parseTipCustomID(customID, "submit_tip_")
	if err != nil {
		return err
	}

	data := i.ModalSubmitData()
	memberName := data.Components[0].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value
	secret := data.Components[1].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value

	guild, err := guildService.GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		return fmt.Errorf("error getting guild info: %v", err)
	}

	member, ok := guildService.FindMember(db, i.GuildID, memberName)
	if !ok {
		return common.RespondEphemeral(s, i, fmt.Sprintf(
			"No member named **%s** in the competition roster.", memberName))
	}

	comp, err := extService.GetCompetition(i.GuildID, guild.ActiveRound)
	if err != nil {
		return fmt.Errorf("error loading competition data: %v", err)
	}

	selected, ok := comp.Team(teamID)
	if !ok {
		return common.RespondEphemeral(s, i, "That team is no longer on the ladder snapshot. Refresh the fixtures and try again.")
	}
	opponent, ok := comp.Team(opponentID)
	if !ok {
		return common.RespondEphemeral(s, i, "That fixture is no longer on the ladder snapshot. Refresh the fixtures and try again.")
	}

	firstKickoff, _ := comp.FirstKickoff()
	store := historyService.StoreFor(db, i.GuildID)

	record, err := store.SubmitTip(historyService.SubmitRequest{
		Member:       member,
		InputSecret:  secret,
		AdminSecret:  adminSecret,
		Round:        round,
		ActiveRound:  guild.ActiveRound,
		FirstKickoff: firstKickoff,
		Now:          time.Now(),
		Selected:     selected,
		Opponent:     opponent,
	})
	if err != nil {
		return common.RespondEphemeral(s, i, rejectionMessage(err, member.Name))
	}

	return common.RespondEphemeral(s, i, fmt.Sprintf(
		"✅ **%s** tipped **%s** to upset **%s** in round %d — worth **%d** points if it comes off. Resubmitting before lockout replaces this tip.",
		member.Name, selected.Name, opponent.Name, record.Round, record.PointsEarned))
}

func rejectionMessage(err error, memberName string) string {
	switch {
	case errors.Is(err, tipService.ErrUnauthorized):
		return fmt.Sprintf("Incorrect password. Please enter the password for %s or the admin password.", memberName)
	case errors.Is(err, tipService.ErrRoundLocked):
		return "This round is locked: the first game has kicked off or the round is not the active one."
	case errors.Is(err, tipService.ErrIneligibleSelection):
		return "Only the underdog side of a fixture can be tipped."
	default:
		return fmt.Sprintf("Could not record the tip: %v", err)
	}
}
