package tipService

import (
	"time"

	"upsetTipBot/models"
)

// IsUnderdog reports whether team is the eligible underdog against
// opponent. A higher rank number means a weaker team. Equal ranks give
// neither side underdog status, so that fixture has no tippable side.
func IsUnderdog(team, opponent models.Team) bool {
	return team.Rank > opponent.Rank
}

// PotentialPoints is the value of a successful upset tip: the ladder
// rank differential, clamped at zero. It does not enforce eligibility;
// callers gate on IsUnderdog first.
func PotentialPoints(underdog, favourite models.Team) int {
	diff := underdog.Rank - favourite.Rank
	if diff < 0 {
		return 0
	}
	return diff
}

// CanSubmitTip reports whether a tip for the given round is accepted at
// now. Only the active competition round is open, and it locks for all
// members at the earliest kickoff of the round, not per fixture.
func CanSubmitTip(round, activeRound int, firstKickoff, now time.Time) bool {
	if round != activeRound {
		return false
	}
	return now.Before(firstKickoff)
}

// FirstKickoff returns the earliest kickoff among fixtures. The second
// return is false when there are no fixtures to lock on.
func FirstKickoff(fixtures []models.Fixture) (time.Time, bool) {
	if len(fixtures) == 0 {
		return time.Time{}, false
	}
	earliest := fixtures[0].Kickoff
	for _, f := range fixtures[1:] {
		if f.Kickoff.Before(earliest) {
			earliest = f.Kickoff
		}
	}
	return earliest, true
}

// RoundLocked reports whether tipping controls for a round should be
// shown as locked. A round with no known fixtures is open pending the
// draw; otherwise the round locks at its earliest kickoff.
func RoundLocked(round, activeRound int, fixtures []models.Fixture, now time.Time) bool {
	if round != activeRound {
		return true
	}
	firstKickoff, ok := FirstKickoff(fixtures)
	if !ok {
		return false
	}
	return !now.Before(firstKickoff)
}

// Authorize checks the shared secret for a member. The admin secret
// works for any member. This is an advisory gate for a friends
// competition, not a security boundary: it provides no confidentiality
// or integrity guarantee.
func Authorize(inputSecret string, member models.Member, adminSecret string) bool {
	return inputSecret == member.Secret || inputSecret == adminSecret
}
