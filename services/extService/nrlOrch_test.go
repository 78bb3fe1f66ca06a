package extService

import (
	"errors"
	"testing"

	"upsetTipBot/models/external"
)

func seedSnapshot() external.NRL_Snapshot {
	return external.NRL_Snapshot{
		Round:    1,
		Ladder:   external.SeedLadder,
		Fixtures: external.SeedRound1Fixtures,
	}
}

func TestBuildCompetitionFromSeedData(t *testing.T) {
	comp, err := BuildCompetition(seedSnapshot(), 1)
	if err != nil {
		t.Fatalf("seed snapshot must validate: %v", err)
	}

	if len(comp.Teams) != 17 {
		t.Errorf("expected 17 teams, got %d", len(comp.Teams))
	}
	if len(comp.Fixtures) != 8 {
		t.Errorf("expected 8 fixtures, got %d", len(comp.Fixtures))
	}

	knights, ok := comp.Team("knights")
	if !ok {
		t.Fatalf("expected knights in the team map")
	}
	if knights.Rank != 17 {
		t.Errorf("expected Knights at rank 17, got %d", knights.Rank)
	}

	if comp.Ladder[0].TeamID != "raiders" || comp.Ladder[0].Rank != 1 {
		t.Errorf("ladder must be ordered by rank, got %+v", comp.Ladder[0])
	}

	fixture, ok := comp.FixtureFor("knights")
	if !ok {
		t.Fatalf("Knights should have a round 1 fixture")
	}
	if fixture.AwayTeam.ID != "cowboys" {
		t.Errorf("expected Knights v Cowboys, got %s v %s", fixture.HomeTeam.ID, fixture.AwayTeam.ID)
	}

	first, ok := comp.FirstKickoff()
	if !ok {
		t.Fatalf("expected a first kickoff")
	}
	for _, f := range comp.Fixtures {
		if f.Kickoff.Before(first) {
			t.Errorf("first kickoff %v is later than fixture %s at %v", first, f.ID, f.Kickoff)
		}
	}
}

func TestBuildCompetitionRejectsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*external.NRL_Snapshot)
	}{
		{
			name:   "Empty ladder",
			mutate: func(s *external.NRL_Snapshot) { s.Ladder = nil },
		},
		{
			name: "Empty team name",
			mutate: func(s *external.NRL_Snapshot) {
				s.Ladder = append([]external.NRL_LadderEntry{}, s.Ladder...)
				s.Ladder[0].Name = ""
			},
		},
		{
			name: "Non-positive rank",
			mutate: func(s *external.NRL_Snapshot) {
				s.Ladder = append([]external.NRL_LadderEntry{}, s.Ladder...)
				s.Ladder[0].Rank = 0
			},
		},
		{
			name: "Duplicate ranks",
			mutate: func(s *external.NRL_Snapshot) {
				s.Ladder = append([]external.NRL_LadderEntry{}, s.Ladder...)
				s.Ladder[1].Rank = s.Ladder[0].Rank
			},
		},
		{
			name: "Fixture references unknown team",
			mutate: func(s *external.NRL_Snapshot) {
				s.Fixtures = append([]external.NRL_Fixture{}, s.Fixtures...)
				s.Fixtures[0].HomeTeamName = "Jets"
			},
		},
		{
			name: "Same team on both sides",
			mutate: func(s *external.NRL_Snapshot) {
				s.Fixtures = append([]external.NRL_Fixture{}, s.Fixtures...)
				s.Fixtures[0].AwayTeamName = s.Fixtures[0].HomeTeamName
			},
		},
		{
			name: "Unparseable kickoff",
			mutate: func(s *external.NRL_Snapshot) {
				s.Fixtures = append([]external.NRL_Fixture{}, s.Fixtures...)
				s.Fixtures[0].Kickoff = "Sunday arvo"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := seedSnapshot()
			tt.mutate(&snapshot)

			_, err := BuildCompetition(snapshot, 1)
			if !errors.Is(err, ErrMalformedSnapshot) {
				t.Errorf("expected ErrMalformedSnapshot, got %v", err)
			}
		})
	}
}

func TestResolveTeamFuzzyMatch(t *testing.T) {
	comp, err := BuildCompetition(seedSnapshot(), 1)
	if err != nil {
		t.Fatalf("seed snapshot must validate: %v", err)
	}

	tests := []struct {
		name     string
		feedName string
		expected string
		found    bool
	}{
		{"Exact simplified name", "Storm", "storm", true},
		{"Case folded", "KNIGHTS", "knights", true},
		{"Full club name resolves to ladder name", "Melbourne Storm", "storm", true},
		{"Two word name", "Sea Eagles", "sea-eagles", true},
		{"Unknown club", "Bears", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, ok := ResolveTeam(tt.feedName, comp.Teams)
			if ok != tt.found {
				t.Fatalf("expected found=%v, got %v", tt.found, ok)
			}
			if ok && team.ID != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, team.ID)
			}
		})
	}
}

func TestSeedSourceServesRoundOneOnly(t *testing.T) {
	var src SeedSource

	one, err := src.FetchSnapshot(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(one.Fixtures) != 8 {
		t.Errorf("expected the round 1 draw, got %d fixtures", len(one.Fixtures))
	}

	two, err := src.FetchSnapshot(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(two.Fixtures) != 0 {
		t.Errorf("later rounds have no seeded draw, got %d fixtures", len(two.Fixtures))
	}
	if len(two.Ladder) != 17 {
		t.Errorf("ladder is still served for later rounds, got %d entries", len(two.Ladder))
	}
}
