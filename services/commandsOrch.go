package services

import (
	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/services/guildService"
)

// adminSecret is the shared override secret from configuration; it
// authorizes tipping on behalf of any member.
var adminSecret string

func Configure(secret string) {
	adminSecret = secret
}

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	switch i.ApplicationCommandData().Name {
	case "fixtures":
		ShowFixtures(s, i, db)
	case "ladder":
		ShowLadder(s, i, db)
	case "leaderboard":
		ShowLeaderboard(s, i, db)
	case "my-tips":
		ShowMyTips(s, i, db)
	case "settle-tip":
		SettleTip(s, i, db)
	case "advance-round":
		AdvanceRound(s, i, db)
	case "refresh-data":
		RefreshData(s, i, db)
	case "set-tip-channel":
		guildService.SetTipChannel(s, i, db)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	minRound := float64(1)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "fixtures",
			Description: "Show a round's fixtures and tip an underdog",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "round",
					Description: "Round to view (defaults to the active round)",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    false,
					MinValue:    &minRound,
				},
			},
		},
		{
			Name:        "ladder",
			Description: "Show the current NRL ladder",
		},
		{
			Name:        "leaderboard",
			Description: "Show the upset tipping leaderboard",
		},
		{
			Name:        "my-tips",
			Description: "Show a member's tips across rounds",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "member",
					Description: "Member name (defaults to whoever tipped last)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
				},
			},
		},
		{
			Name:        "settle-tip",
			Description: "★ Record the real-world outcome of a member's tip (ADMIN)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "member",
					Description: "Member name",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "round",
					Description: "Round number",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
					MinValue:    &minRound,
				},
				{
					Name:        "outcome",
					Description: "Did the upset come off?",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "won", Value: "won"},
						{Name: "lost", Value: "lost"},
					},
				},
			},
		},
		{
			Name:        "advance-round",
			Description: "★ Set the active competition round (ADMIN)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "round",
					Description: "New active round",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
					MinValue:    &minRound,
				},
			},
		},
		{
			Name:        "refresh-data",
			Description: "★ Re-pull the ladder and fixtures for the active round (ADMIN)",
		},
		{
			Name:        "set-tip-channel",
			Description: "★ Receive lock and settlement announcements in this channel (ADMIN)",
		},
	}

	for _, command := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, "", command)
		if err != nil {
			return err
		}
	}

	return nil
}
