package external

// Season-start seed data, used when no live feed is configured. The
// ladder is the 2026 opening ladder; only the round 1 draw is known at
// seed time, later rounds come from the feed.

var SeedLadder = []NRL_LadderEntry{
	{Name: "Raiders", Rank: 1, Played: 24, Points: 44, Differential: 148},
	{Name: "Storm", Rank: 2, Played: 24, Points: 40, Differential: 212},
	{Name: "Bulldogs", Rank: 3, Played: 24, Points: 38, Differential: 120},
	{Name: "Broncos", Rank: 4, Played: 24, Points: 36, Differential: 172},
	{Name: "Sharks", Rank: 5, Played: 24, Points: 36, Differential: 109},
	{Name: "Warriors", Rank: 6, Played: 24, Points: 34, Differential: 21},
	{Name: "Panthers", Rank: 7, Played: 24, Points: 33, Differential: 107},
	{Name: "Roosters", Rank: 8, Played: 24, Points: 32, Differential: 132},
	{Name: "Dolphins", Rank: 9, Played: 24, Points: 30, Differential: 125},
	{Name: "Sea Eagles", Rank: 10, Played: 24, Points: 30, Differential: 21},
	{Name: "Eels", Rank: 11, Played: 24, Points: 26, Differential: -76},
	{Name: "Cowboys", Rank: 12, Played: 24, Points: 25, Differential: -146},
	{Name: "Tigers", Rank: 13, Played: 24, Points: 24, Differential: -135},
	{Name: "Rabbitohs", Rank: 14, Played: 24, Points: 24, Differential: -181},
	{Name: "Dragons", Rank: 15, Played: 24, Points: 22, Differential: -130},
	{Name: "Titans", Rank: 16, Played: 24, Points: 18, Differential: -199},
	{Name: "Knights", Rank: 17, Played: 24, Points: 18, Differential: -300},
}

var SeedRound1Fixtures = []NRL_Fixture{
	{HomeTeamName: "Knights", AwayTeamName: "Cowboys", Kickoff: "2026-03-01T16:05:00", Venue: "McDonald Jones Stadium, Newcastle"},
	{HomeTeamName: "Roosters", AwayTeamName: "Rabbitohs", Kickoff: "2026-03-01T18:15:00", Venue: "Allianz Stadium, Sydney"},
	{HomeTeamName: "Panthers", AwayTeamName: "Storm", Kickoff: "2026-03-02T16:00:00", Venue: "BlueBet Stadium, Penrith"},
	{HomeTeamName: "Broncos", AwayTeamName: "Dolphins", Kickoff: "2026-03-02T19:50:00", Venue: "Suncorp Stadium, Brisbane"},
	{HomeTeamName: "Raiders", AwayTeamName: "Warriors", Kickoff: "2026-03-03T18:00:00", Venue: "GIO Stadium, Canberra"},
	{HomeTeamName: "Eels", AwayTeamName: "Bulldogs", Kickoff: "2026-03-03T20:00:00", Venue: "CommBank Stadium, Sydney"},
	{HomeTeamName: "Sea Eagles", AwayTeamName: "Sharks", Kickoff: "2026-03-04T18:00:00", Venue: "4 Pines Park, Manly"},
	{HomeTeamName: "Dragons", AwayTeamName: "Tigers", Kickoff: "2026-03-04T20:00:00", Venue: "Netstrata Jubilee Stadium"},
}
