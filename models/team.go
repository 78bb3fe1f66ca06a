package models

import (
	"strings"
	"time"
)

// Team is read-only reference data for the duration of a session,
// rebuilt from each ladder snapshot. Rank 1 is the strongest team.
type Team struct {
	ID        string
	Name      string
	ShortName string
	Rank      int
	Played    int
	Points    int
}

/// TeamID derives a stable identifier from a team name: lowercased,
// whitespace runs collapsed to a single hyphen.
func TeamID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

type Fixture struct {
	ID       string
	HomeTeam Team
	AwayTeam Team
	Kickoff  time.Time
	Venue    string
}

type LadderEntry struct {
	TeamID       string
	Rank         int
	Played       int
	Won          int
	Lost         int
	Drawn        int
	Points       int
	Differential int
}
