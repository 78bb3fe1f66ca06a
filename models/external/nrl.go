package external

// Wire structs for the NRL ladder/fixture/results feed. The feed is a
// pull-based snapshot per round; the engine validates it before any
// domain object is built from it.

type NRL_LadderEntry struct {
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	Played       int    `json:"played"`
	Points       int    `json:"points"`
	Differential int    `json:"differential"`
}

type NRL_Fixture struct {
	HomeTeamName string `json:"homeTeamName"`
	AwayTeamName string `json:"awayTeamName"`
	Kickoff      string `json:"kickoff"`
	Venue        string `json:"venue"`
}

type NRL_Snapshot struct {
	Round    int               `json:"round"`
	Ladder   []NRL_LadderEntry `json:"ladder"`
	Fixtures []NRL_Fixture     `json:"fixtures"`
}

type NRL_Result struct {
	HomeTeamName string `json:"homeTeamName"`
	AwayTeamName string `json:"awayTeamName"`
	HomeScore    *int   `json:"homeScore"`
	AwayScore    *int   `json:"awayScore"`
	Completed    bool   `json:"completed"`
}
