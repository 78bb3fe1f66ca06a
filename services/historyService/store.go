package historyService

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"upsetTipBot/models"
	"upsetTipBot/services/tipService"
)

// Storage is the load/save contract the store persists through. Load
// returns ok=false when nothing is stored under the key yet.
type Storage interface {
	Load(key string) (value []byte, ok bool, err error)
	Save(key string, value []byte) error
}

// persistedState is the durable snapshot layout. History is keyed by
// member key, then round number.
type persistedState struct {
	History         map[string]map[int]models.HistoryRecord `json:"history"`
	CurrentMemberID string                                  `json:"currentMemberId"`
}

// Store owns all HistoryRecords for one competition. Mutations are
// write-through: the whole snapshot is saved after each change, and a
// failed save is logged without rolling back the in-memory state, so
// the action succeeds for the session even if it may not survive a
// restart. Handlers run on discordgo's goroutines, hence the mutex.
type Store struct {
	mu      sync.Mutex
	storage Storage
	key     string
	state   persistedState
}

// SubmitRequest carries the explicit session context a submission is
// judged against; the store holds no ambient competition state.
type SubmitRequest struct {
	Member       models.Member
	InputSecret  string
	AdminSecret  string
	Round        int
	ActiveRound  int
	FirstKickoff time.Time
	Now          time.Time
	Selected     models.Team
	Opponent     models.Team
}

// NewStore loads the snapshot stored under key. A read error or a
// snapshot that fails to decode falls back to an empty history rather
// than failing startup; the broken blob is overwritten on the next
// write.
func NewStore(storage Storage, key string) *Store {
	st := &Store{
		storage: storage,
		key:     key,
		state: persistedState{
			History: make(map[string]map[int]models.HistoryRecord),
		},
	}

	raw, ok, err := storage.Load(key)
	if err != nil {
		log.Printf("history store %s: load failed, starting from empty history: %v", key, err)
		return st
	}
	if !ok {
		return st
	}

	var loaded persistedState
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("history store %s: malformed stored state, starting from empty history: %v", key, err)
		return st
	}
	if loaded.History == nil {
		loaded.History = make(map[string]map[int]models.HistoryRecord)
	}
	st.state = loaded
	return st
}

// SubmitTip validates authorization, the round lock, and underdog
// eligibility, then records the tip as pending with its potential
// points. Any existing record for the same member and round is
// replaced outright.
func (st *Store) SubmitTip(req SubmitRequest) (models.HistoryRecord, error) {
	if !tipService.Authorize(req.InputSecret, req.Member, req.AdminSecret) {
		return models.HistoryRecord{}, tipService.ErrUnauthorized
	}
	if !tipService.CanSubmitTip(req.Round, req.ActiveRound, req.FirstKickoff, req.Now) {
		return models.HistoryRecord{}, tipService.ErrRoundLocked
	}
	if !tipService.IsUnderdog(req.Selected, req.Opponent) {
		return models.HistoryRecord{}, tipService.ErrIneligibleSelection
	}

	record := models.HistoryRecord{
		Round:          req.Round,
		SelectedTeamID: req.Selected.ID,
		OpponentID:     req.Opponent.ID,
		Timestamp:      req.Now,
		Status:         models.TipPending,
		PointsEarned:   tipService.PotentialPoints(req.Selected, req.Opponent),
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	memberHistory := st.state.History[req.Member.MemberKey]
	if memberHistory == nil {
		memberHistory = make(map[int]models.HistoryRecord)
		st.state.History[req.Member.MemberKey] = memberHistory
	}
	memberHistory[req.Round] = record
	st.state.CurrentMemberID = req.Member.MemberKey

	st.persistLocked()
	return record, nil
}

// GetTip is a pure lookup with no side effects.
func (st *Store) GetTip(memberKey string, round int) (models.HistoryRecord, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	record, ok := st.state.History[memberKey][round]
	return record, ok
}

// SettleTip transitions a pending record to won or lost. PointsEarned
// stays as computed at submission time; the engine never recomputes
// points retroactively from a changed ladder. Settling an
// already-settled record to the same outcome is a no-op.
func (st *Store) SettleTip(memberKey string, round int, outcome models.TipStatus) (models.HistoryRecord, error) {
	if outcome != models.TipWon && outcome != models.TipLost {
		return models.HistoryRecord{}, fmt.Errorf("invalid settlement outcome %q", outcome)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	record, ok := st.state.History[memberKey][round]
	if !ok {
		return models.HistoryRecord{}, fmt.Errorf("no tip recorded for member %s in round %d", memberKey, round)
	}
	if record.Status == outcome {
		return record, nil
	}

	record.Status = outcome
	st.state.History[memberKey][round] = record

	st.persistLocked()
	return record, nil
}

// MemberHistory returns a copy of one member's round → record map.
func (st *Store) MemberHistory(memberKey string) map[int]models.HistoryRecord {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make(map[int]models.HistoryRecord, len(st.state.History[memberKey]))
	for round, record := range st.state.History[memberKey] {
		out[round] = record
	}
	return out
}

// Snapshot returns a deep copy of the full history for aggregation.
func (st *Store) Snapshot() map[string]map[int]models.HistoryRecord {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make(map[string]map[int]models.HistoryRecord, len(st.state.History))
	for memberKey, rounds := range st.state.History {
		memberCopy := make(map[int]models.HistoryRecord, len(rounds))
		for round, record := range rounds {
			memberCopy[round] = record
		}
		out[memberKey] = memberCopy
	}
	return out
}

// CurrentMember returns the key of the member the session last tipped
// as, or "" when nobody has tipped yet.
func (st *Store) CurrentMember() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.CurrentMemberID
}

func (st *Store) SetCurrentMember(memberKey string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.state.CurrentMemberID == memberKey {
		return
	}
	st.state.CurrentMemberID = memberKey
	st.persistLocked()
}

func (st *Store) persistLocked() {
	raw, err := json.Marshal(st.state)
	if err != nil {
		log.Printf("history store %s: marshal failed, snapshot not persisted: %v", st.key, err)
		return
	}
	if err := st.storage.Save(st.key, raw); err != nil {
		log.Printf("history store %s: persistence failed, in-memory state kept: %v", st.key, err)
	}
}
