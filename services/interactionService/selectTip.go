package interactionService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SelectTip answers an underdog button with the authorization modal.
// The selection itself is only recorded on modal submit, after the
// shared secret has been checked.
func SelectTip(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	round, teamID, opponentID, err := parseTipCustomID(customID, "tip_")
	if err != nil {
		return err
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			Title:    "Confirm Your Upset Tip",
			CustomID: fmt.Sprintf("submit_tip_%d_%s_%s", round, teamID, opponentID),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "member_name",
							Label:       "Tipping As",
							Style:       discordgo.TextInputShort,
							Placeholder: "Your competition member name",
							Required:    true,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "member_secret",
							Label:       "Password",
							Style:       discordgo.TextInputShort,
							Placeholder: "Your password (admin password works for anyone)",
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return err
	}
	return nil
}

// parseTipCustomID splits "<prefix><round>_<teamID>_<opponentID>".
// Team identifiers may contain hyphens but never underscores.
func parseTipCustomID(customID, prefix string) (round int, teamID, opponentID string, err error) {
	trimmed := strings.TrimPrefix(customID, prefix)
	parts := strings.Split(trimmed, "_")
	if len(parts) != 3 {
		return 0, "", "", fmt.Errorf("unexpected tip customID %q", customID)
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &round); err != nil {
		return 0, "", "", fmt.Errorf("error parsing round from customID %q: %v", customID, err)
	}
	return round, parts[1], parts[2], nil
}
