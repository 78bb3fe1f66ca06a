package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"
	"sort"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/services"
	"upsetTipBot/services/extService"
	"upsetTipBot/services/guildService"
	"upsetTipBot/services/historyService"
)

// CheckResults settles pending tips against the results feed. A tip is
// settled only from a completed match; points stay as computed at
// submission time, so settlement just flips pending to won or lost.
func CheckResults(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in CheckResults", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in CheckResults: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Find(&guilds)
	if result.Error != nil {
		return result.Error
	}

	for _, guild := range guilds {
		store := historyService.StoreFor(db, guild.GuildID)
		snapshot := store.Snapshot()

		rounds := pendingRounds(snapshot)
		if len(rounds) == 0 {
			continue
		}

		// The ladder's team list is season-wide, so the active round's
		// competition is enough to resolve result team names.
		comp, err := extService.GetCompetition(guild.GuildID, guild.ActiveRound)
		if err != nil {
			log.Printf("Error loading competition for guild %s: %v", guild.GuildID, err)
			continue
		}

		memberNames := rosterNames(db, guild.GuildID)
		settledAny := false

		for _, round := range rounds {
			results, err := extService.FetchResults(round)
			if err != nil {
				log.Printf("Error fetching round %d results for guild %s: %v", round, guild.GuildID, err)
				continue
			}

			for _, matchResult := range results {
				if !matchResult.Completed || matchResult.HomeScore == nil || matchResult.AwayScore == nil {
					continue
				}

				home, ok := extService.ResolveTeam(matchResult.HomeTeamName, comp.Teams)
				if !ok {
					log.Printf("Result home team %q not on ladder, skipping", matchResult.HomeTeamName)
					continue
				}
				away, ok := extService.ResolveTeam(matchResult.AwayTeamName, comp.Teams)
				if !ok {
					log.Printf("Result away team %q not on ladder, skipping", matchResult.AwayTeamName)
					continue
				}

				for memberKey, records := range snapshot {
					record, ok := records[round]
					if !ok || record.Status != models.TipPending {
						continue
					}

					outcome, ok := settlementOutcome(record, home.ID, away.ID, *matchResult.HomeScore, *matchResult.AwayScore)
					if !ok {
						continue
					}

					settled, err := store.SettleTip(memberKey, round, outcome)
					if err != nil {
						log.Printf("Error settling round %d tip for %s: %v", round, memberKey, err)
						continue
					}
					settledAny = true

					if guild.TipChannelID != "" {
						announceSettlement(s, guild.TipChannelID, memberNames[memberKey], settled, home, away)
					}
				}
			}
		}

		if settledAny {
			services.RefreshMemberTotals(db, guild.GuildID)
		}
	}

	return nil
}

// settlementOutcome maps a completed match onto a tip. The tip must
// reference the same two teams as the result; a drawn match settles as
// lost since the upset did not come off.
func settlementOutcome(record models.HistoryRecord, homeID, awayID string, homeScore, awayScore int) (models.TipStatus, bool) {
	var selectedScore, opponentScore int
	switch {
	case record.SelectedTeamID == homeID && record.OpponentID == awayID:
		selectedScore, opponentScore = homeScore, awayScore
	case record.SelectedTeamID == awayID && record.OpponentID == homeID:
		selectedScore, opponentScore = awayScore, homeScore
	default:
		return "", false
	}

	if selectedScore > opponentScore {
		return models.TipWon, true
	}
	return models.TipLost, true
}

// pendingRounds collects every round with at least one pending tip.
func pendingRounds(snapshot map[string]map[int]models.HistoryRecord) []int {
	seen := make(map[int]bool)
	for _, records := range snapshot {
		for round, record := range records {
			if record.Status == models.TipPending {
				seen[round] = true
			}
		}
	}

	rounds := make([]int, 0, len(seen))
	for round := range seen {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)
	return rounds
}

func rosterNames(db *gorm.DB, guildID string) map[string]string {
	names := make(map[string]string)
	members, err := guildService.Members(db, guildID)
	if err != nil {
		log.Printf("Error fetching roster for guild %s: %v", guildID, err)
		return names
	}
	for _, member := range members {
		names[member.MemberKey] = member.Name
	}
	return names
}

func announceSettlement(s *discordgo.Session, channelID, memberName string, record models.HistoryRecord, home, away models.Team) {
	if memberName == "" {
		memberName = record.SelectedTeamID
	}

	var message string
	if record.Status == models.TipWon {
		message = fmt.Sprintf("🎉 **%s** called the upset! %s beat %s in round %d for **%d** points.",
			memberName, teamName(record.SelectedTeamID, home, away), teamName(record.OpponentID, home, away), record.Round, record.PointsEarned)
	} else {
		message = fmt.Sprintf("❌ No upset for **%s**: %s held off %s in round %d.",
			memberName, teamName(record.OpponentID, home, away), teamName(record.SelectedTeamID, home, away), record.Round)
	}

	_, err := s.ChannelMessageSend(channelID, message)
	if err != nil {
		log.Printf("Error announcing settlement: %v", err)
	}
}

func teamName(teamID string, home, away models.Team) string {
	if home.ID == teamID {
		return home.Name
	}
	if away.ID == teamID {
		return away.Name
	}
	return teamID
}
