package extService

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"upsetTipBot/models"
	"upsetTipBot/models/external"
	"upsetTipBot/services/common"
)

// ErrMalformedSnapshot - the feed returned data that fails schema
// validation. Malformed snapshots are rejected wholesale, never
// partially applied.
var ErrMalformedSnapshot = errors.New("snapshot failed validation")

// DataSource supplies ladder/fixture snapshots and match results per
// round. The engine pulls a fresh snapshot per round and does not
// reconcile historical ranks retroactively.
type DataSource interface {
	FetchSnapshot(round int) (external.NRL_Snapshot, error)
	FetchResults(round int) ([]external.NRL_Result, error)
}

// HTTPSource pulls from a configured feed endpoint.
type HTTPSource struct {
	BaseURL string
}

func (h *HTTPSource) FetchSnapshot(round int) (external.NRL_Snapshot, error) {
	resp, err := common.NRLWrapper(fmt.Sprintf("%s/snapshot?round=%d", h.BaseURL, round))
	if err != nil {
		return external.NRL_Snapshot{}, err
	}
	defer resp.Body.Close()

	var snapshot external.NRL_Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return external.NRL_Snapshot{}, err
	}
	return snapshot, nil
}

func (h *HTTPSource) FetchResults(round int) ([]external.NRL_Result, error) {
	resp, err := common.NRLWrapper(fmt.Sprintf("%s/results?round=%d", h.BaseURL, round))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var results []external.NRL_Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	return results, nil
}

// SeedSource serves the embedded season-start data. Only the round 1
// draw is known at seed time; later rounds have no fixtures and no
// results until a live feed is configured.
type SeedSource struct{}

func (SeedSource) FetchSnapshot(round int) (external.NRL_Snapshot, error) {
	snapshot := external.NRL_Snapshot{Round: round, Ladder: external.SeedLadder}
	if round == 1 {
		snapshot.Fixtures = external.SeedRound1Fixtures
	}
	return snapshot, nil
}

func (SeedSource) FetchResults(int) ([]external.NRL_Result, error) {
	return nil, nil
}

var (
	sourceMu sync.Mutex
	source   DataSource = SeedSource{}
)

// Configure selects the live feed when a URL is set, the embedded seed
// data otherwise. Called once from main before handlers run.
func Configure(feedURL string) {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	if feedURL == "" {
		source = SeedSource{}
		return
	}
	source = &HTTPSource{BaseURL: feedURL}
}

func activeSource() DataSource {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	return source
}

// Competition is the validated reference data for one round: the team
// map, ladder snapshot, and fixture list every eligibility and scoring
// decision is made against.
type Competition struct {
	Round    int
	Teams    map[string]models.Team
	Ladder   []models.LadderEntry
	Fixtures []models.Fixture
}

// FixtureFor finds the fixture a team plays in this round.
func (c *Competition) FixtureFor(teamID string) (models.Fixture, bool) {
	for _, f := range c.Fixtures {
		if f.HomeTeam.ID == teamID || f.AwayTeam.ID == teamID {
			return f, true
		}
	}
	return models.Fixture{}, false
}

// Team looks a team up by its derived identifier.
func (c *Competition) Team(teamID string) (models.Team, bool) {
	team, ok := c.Teams[teamID]
	return team, ok
}

// FirstKickoff is the round-wide lock timestamp.
func (c *Competition) FirstKickoff() (time.Time, bool) {
	if len(c.Fixtures) == 0 {
		return time.Time{}, false
	}
	earliest := c.Fixtures[0].Kickoff
	for _, f := range c.Fixtures[1:] {
		if f.Kickoff.Before(earliest) {
			earliest = f.Kickoff
		}
	}
	return earliest, true
}

// kickoffLocation is where offset-less feed kickoffs are interpreted.
func kickoffLocation() (*time.Location, error) {
	return time.LoadLocation("Australia/Sydney")
}

func parseKickoff(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, loc)
}

// BuildCompetition validates a snapshot and turns it into domain
// objects. Validation failures return ErrMalformedSnapshot so callers
// keep their previous competition state instead of trusting the feed.
func BuildCompetition(snapshot external.NRL_Snapshot, round int) (*Competition, error) {
	if len(snapshot.Ladder) == 0 {
		return nil, fmt.Errorf("%w: empty ladder", ErrMalformedSnapshot)
	}

	comp := &Competition{
		Round: round,
		Teams: make(map[string]models.Team, len(snapshot.Ladder)),
	}

	seenRanks := make(map[int]string, len(snapshot.Ladder))
	for _, entry := range snapshot.Ladder {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: ladder entry with empty team name", ErrMalformedSnapshot)
		}
		if entry.Rank <= 0 {
			return nil, fmt.Errorf("%w: team %s has non-positive rank %d", ErrMalformedSnapshot, entry.Name, entry.Rank)
		}
		if other, dup := seenRanks[entry.Rank]; dup {
			return nil, fmt.Errorf("%w: rank %d assigned to both %s and %s", ErrMalformedSnapshot, entry.Rank, other, entry.Name)
		}
		seenRanks[entry.Rank] = entry.Name

		team := models.Team{
			ID:        models.TeamID(entry.Name),
			Name:      entry.Name,
			ShortName: entry.Name,
			Rank:      entry.Rank,
			Played:    entry.Played,
			Points:    entry.Points,
		}
		comp.Teams[team.ID] = team
		comp.Ladder = append(comp.Ladder, models.LadderEntry{
			TeamID:       team.ID,
			Rank:         entry.Rank,
			Played:       entry.Played,
			Points:       entry.Points,
			Differential: entry.Differential,
		})
	}

	sort.Slice(comp.Ladder, func(i, j int) bool {
		return comp.Ladder[i].Rank < comp.Ladder[j].Rank
	})

	loc, err := kickoffLocation()
	if err != nil {
		return nil, err
	}

	for idx, f := range snapshot.Fixtures {
		home, ok := ResolveTeam(f.HomeTeamName, comp.Teams)
		if !ok {
			return nil, fmt.Errorf("%w: unknown home team %q", ErrMalformedSnapshot, f.HomeTeamName)
		}
		away, ok := ResolveTeam(f.AwayTeamName, comp.Teams)
		if !ok {
			return nil, fmt.Errorf("%w: unknown away team %q", ErrMalformedSnapshot, f.AwayTeamName)
		}
		if home.ID == away.ID {
			return nil, fmt.Errorf("%w: fixture %d has %s on both sides", ErrMalformedSnapshot, idx, home.Name)
		}

		kickoff, err := parseKickoff(f.Kickoff, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: fixture %d kickoff %q: %v", ErrMalformedSnapshot, idx, f.Kickoff, err)
		}

		comp.Fixtures = append(comp.Fixtures, models.Fixture{
			ID:       fmt.Sprintf("r%d-f%d", round, idx),
			HomeTeam: home,
			AwayTeam: away,
			Kickoff:  kickoff,
			Venue:    f.Venue,
		})
	}

	return comp, nil
}

// ResolveTeam matches a feed team name against the ladder: exact
// derived-ID match first, then a normalized fuzzy match so "Melbourne
// Storm" still finds "Storm".
func ResolveTeam(name string, teams map[string]models.Team) (models.Team, bool) {
	if team, ok := teams[models.TeamID(name)]; ok {
		return team, ok
	}

	names := make([]string, 0, len(teams))
	for _, team := range teams {
		names = append(names, team.Name)
	}
	sort.Strings(names)

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		// The feed name may be the longer form of a ladder name.
		for _, candidate := range names {
			if fuzzy.MatchNormalizedFold(candidate, name) {
				return teams[models.TeamID(candidate)], true
			}
		}
		return models.Team{}, false
	}

	sort.Sort(ranks)
	return teams[models.TeamID(ranks[0].Target)], true
}

// Cache holds one validated competition per guild, refreshed when the
// active round changes or on demand.
type Cache struct {
	mu      sync.Mutex
	byGuild map[string]*Competition
}

var competitions = &Cache{byGuild: make(map[string]*Competition)}

// GetCompetition returns the cached competition for a guild, pulling a
// fresh snapshot when none is cached or the round moved on.
func GetCompetition(guildID string, round int) (*Competition, error) {
	competitions.mu.Lock()
	cached, ok := competitions.byGuild[guildID]
	competitions.mu.Unlock()
	if ok && cached.Round == round {
		return cached, nil
	}
	return RefreshCompetition(guildID, round)
}

// RefreshCompetition forces a pull, keeping the previous state when
// the feed is unavailable or malformed.
func RefreshCompetition(guildID string, round int) (*Competition, error) {
	snapshot, err := activeSource().FetchSnapshot(round)
	if err != nil {
		return nil, err
	}
	comp, err := BuildCompetition(snapshot, round)
	if err != nil {
		return nil, err
	}

	competitions.mu.Lock()
	competitions.byGuild[guildID] = comp
	competitions.mu.Unlock()
	return comp, nil
}

// FetchResults exposes the configured source's results feed.
func FetchResults(round int) ([]external.NRL_Result, error) {
	return activeSource().FetchResults(round)
}
