package messageService

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"upsetTipBot/models"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/tipService"
)

// BuildFixturesEmbed renders a round's draw grouped by kickoff day,
// marking the underdog side of each fixture with its potential points.
func BuildFixturesEmbed(comp *extService.Competition, round int, locked bool) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🏉 Round %d Fixtures", round)
	if locked {
		title += " 🔒"
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: 0x004e33,
	}

	if len(comp.Fixtures) == 0 {
		embed.Description = "This round will become available once the last game has been played from the previous round."
		return embed
	}

	type group struct {
		label    string
		fixtures []models.Fixture
	}
	var groups []group
	byDay := make(map[string]int)

	sorted := append([]models.Fixture(nil), comp.Fixtures...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Kickoff.Before(sorted[j].Kickoff) })

	for _, f := range sorted {
		label := dayLabel(f.Kickoff)
		idx, ok := byDay[label]
		if !ok {
			idx = len(groups)
			byDay[label] = idx
			groups = append(groups, group{label: label})
		}
		groups[idx].fixtures = append(groups[idx].fixtures, f)
	}

	for _, g := range groups {
		var lines []string
		for _, f := range g.fixtures {
			lines = append(lines, fixtureLine(f))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  g.label,
			Value: strings.Join(lines, "\n"),
		})
	}

	if first, ok := comp.FirstKickoff(); ok && !locked {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Tipping locks for the whole round at the first kickoff: %s", first.Format("Mon 2 Jan 3:04 PM")),
		}
	}

	return embed
}

func fixtureLine(f models.Fixture) string {
	line := fmt.Sprintf("**%s** v **%s** — %s, %s",
		f.HomeTeam.Name, f.AwayTeam.Name, f.Kickoff.Format("3:04 PM"), f.Venue)

	switch {
	case tipService.IsUnderdog(f.HomeTeam, f.AwayTeam):
		line += fmt.Sprintf("\n> Underdog: %s (+%d)", f.HomeTeam.Name, tipService.PotentialPoints(f.HomeTeam, f.AwayTeam))
	case tipService.IsUnderdog(f.AwayTeam, f.HomeTeam):
		line += fmt.Sprintf("\n> Underdog: %s (+%d)", f.AwayTeam.Name, tipService.PotentialPoints(f.AwayTeam, f.HomeTeam))
	default:
		line += "\n> Equal ranks - no tippable side"
	}
	return line
}

func dayLabel(kickoff time.Time) string {
	return strings.ToUpper(fmt.Sprintf("%s %s %s",
		kickoff.Format("Monday"), ordinal(kickoff.Day()), kickoff.Format("January")))
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		suffix = "th"
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// GetTipButtons builds one button per tippable underdog in the round.
// Buttons are disabled instead of hidden once the round is locked, so
// the rejection is proactive rather than an error after the fact.
func GetTipButtons(comp *extService.Competition, round int, locked bool) []discordgo.MessageComponent {
	var buttons []discordgo.Button

	sorted := append([]models.Fixture(nil), comp.Fixtures...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Kickoff.Before(sorted[j].Kickoff) })

	for _, f := range sorted {
		underdog, favourite := f.HomeTeam, f.AwayTeam
		if tipService.IsUnderdog(f.AwayTeam, f.HomeTeam) {
			underdog, favourite = f.AwayTeam, f.HomeTeam
		}
		if !tipService.IsUnderdog(underdog, favourite) {
			continue
		}

		buttons = append(buttons, discordgo.Button{
			Label:    fmt.Sprintf("%s +%d", underdog.Name, tipService.PotentialPoints(underdog, favourite)),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("tip_%d_%s_%s", round, underdog.ID, favourite.ID),
			Disabled: locked,
			Emoji: &discordgo.ComponentEmoji{
				Name: "🔥",
			},
		})
	}

	// Discord allows five buttons per row.
	var rows []discordgo.MessageComponent
	for start := 0; start < len(buttons); start += 5 {
		end := start + 5
		if end > len(buttons) {
			end = len(buttons)
		}
		var row []discordgo.MessageComponent
		for _, b := range buttons[start:end] {
			row = append(row, b)
		}
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

// BuildLadderEmbed renders the current ladder snapshot.
func BuildLadderEmbed(comp *extService.Competition) *discordgo.MessageEmbed {
	var lines []string
	for _, entry := range comp.Ladder {
		team := comp.Teams[entry.TeamID]
		lines = append(lines, fmt.Sprintf("`%2d.` **%s** — %d pts (%+d)",
			entry.Rank, team.Name, entry.Points, entry.Differential))
	}

	return &discordgo.MessageEmbed{
		Title:       "📊 NRL Ladder",
		Description: strings.Join(lines, "\n"),
		Color:       0x002b5c,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Lower rank number = stronger team. Upset value is the rank differential.",
		},
	}
}
