package historyService

import (
	"errors"
	"testing"
	"time"

	"upsetTipBot/models"
	"upsetTipBot/services/tipService"
)

type memoryStorage struct {
	values map[string][]byte
	saves  int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{values: make(map[string][]byte)}
}

func (m *memoryStorage) Load(key string) ([]byte, bool, error) {
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryStorage) Save(key string, value []byte) error {
	m.saves++
	m.values[key] = append([]byte(nil), value...)
	return nil
}

type failingStorage struct{}

func (failingStorage) Load(string) ([]byte, bool, error) { return nil, false, nil }
func (failingStorage) Save(string, []byte) error {
	return errors.New("durable write unavailable")
}

var (
	knights = models.Team{ID: "knights", Name: "Knights", Rank: 17}
	cowboys = models.Team{ID: "cowboys", Name: "Cowboys", Rank: 12}
	titans  = models.Team{ID: "titans", Name: "Titans", Rank: 16}
	sharks  = models.Team{ID: "sharks", Name: "Sharks", Rank: 5}

	doon = models.Member{MemberKey: "m1", Name: "Doon", Secret: "map"}

	kickoff = time.Date(2026, 3, 1, 16, 5, 0, 0, time.UTC)
)

func openRequest(now time.Time) SubmitRequest {
	return SubmitRequest{
		Member:       doon,
		InputSecret:  "map",
		AdminSecret:  "admin",
		Round:        1,
		ActiveRound:  1,
		FirstKickoff: kickoff,
		Now:          now,
		Selected:     knights,
		Opponent:     cowboys,
	}
}

func TestSubmitTipRecordsPendingUpset(t *testing.T) {
	storage := newMemoryStorage()
	store := NewStore(storage, StorageKey("g1"))

	now := kickoff.Add(-2 * time.Hour)
	record, err := store.SubmitTip(openRequest(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Round != 1 || record.SelectedTeamID != "knights" || record.OpponentID != "cowboys" {
		t.Errorf("unexpected record identity: %+v", record)
	}
	if record.Status != models.TipPending {
		t.Errorf("expected pending status, got %s", record.Status)
	}
	if record.PointsEarned != 5 {
		t.Errorf("Knights (17) over Cowboys (12) should be worth 5, got %d", record.PointsEarned)
	}
	if !record.Timestamp.Equal(now) {
		t.Errorf("expected submission timestamp %v, got %v", now, record.Timestamp)
	}
	if storage.saves != 1 {
		t.Errorf("expected one write-through save, got %d", storage.saves)
	}
}

func TestSubmitTipRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SubmitRequest)
		expected error
	}{
		{
			name:     "Wrong secret",
			mutate:   func(r *SubmitRequest) { r.InputSecret = "guess" },
			expected: tipService.ErrUnauthorized,
		},
		{
			name:     "Admin secret accepted",
			mutate:   func(r *SubmitRequest) { r.InputSecret = "admin" },
			expected: nil,
		},
		{
			name:     "After first kickoff",
			mutate:   func(r *SubmitRequest) { r.Now = kickoff.Add(time.Minute) },
			expected: tipService.ErrRoundLocked,
		},
		{
			name:     "Not the active round",
			mutate:   func(r *SubmitRequest) { r.Round = 2 },
			expected: tipService.ErrRoundLocked,
		},
		{
			name: "Favourite selected",
			mutate: func(r *SubmitRequest) {
				r.Selected, r.Opponent = cowboys, knights
			},
			expected: tipService.ErrIneligibleSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(newMemoryStorage(), StorageKey("g1"))
			req := openRequest(kickoff.Add(-time.Hour))
			tt.mutate(&req)

			_, err := store.SubmitTip(req)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}

			if tt.expected != nil {
				if _, ok := store.GetTip(doon.MemberKey, 1); ok {
					t.Errorf("rejected submission must not mutate the store")
				}
			}
		})
	}
}

func TestResubmissionReplacesRecord(t *testing.T) {
	store := NewStore(newMemoryStorage(), StorageKey("g1"))

	first := openRequest(kickoff.Add(-3 * time.Hour))
	if _, err := store.SubmitTip(first); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	second := openRequest(kickoff.Add(-time.Hour))
	second.Selected, second.Opponent = titans, sharks
	if _, err := store.SubmitTip(second); err != nil {
		t.Fatalf("resubmission failed: %v", err)
	}

	record, ok := store.GetTip(doon.MemberKey, 1)
	if !ok {
		t.Fatalf("expected a record after resubmission")
	}
	if record.SelectedTeamID != "titans" || record.OpponentID != "sharks" {
		t.Errorf("resubmission must fully replace the prior record, got %+v", record)
	}
	if record.PointsEarned != 11 {
		t.Errorf("expected recomputed potential of 11, got %d", record.PointsEarned)
	}
	if len(store.MemberHistory(doon.MemberKey)) != 1 {
		t.Errorf("expected exactly one record for the round")
	}
}

func TestIdenticalResubmissionKeepsLatestTimestamp(t *testing.T) {
	store := NewStore(newMemoryStorage(), StorageKey("g1"))

	if _, err := store.SubmitTip(openRequest(kickoff.Add(-3 * time.Hour))); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	later := kickoff.Add(-time.Hour)
	if _, err := store.SubmitTip(openRequest(later)); err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	history := store.MemberHistory(doon.MemberKey)
	if len(history) != 1 {
		t.Fatalf("expected one record, got %d", len(history))
	}
	if !history[1].Timestamp.Equal(later) {
		t.Errorf("expected latest timestamp %v, got %v", later, history[1].Timestamp)
	}
}

func TestSettleTip(t *testing.T) {
	store := NewStore(newMemoryStorage(), StorageKey("g1"))
	if _, err := store.SubmitTip(openRequest(kickoff.Add(-time.Hour))); err != nil {
		t.Fatalf("submission failed: %v", err)
	}

	record, err := store.SettleTip(doon.MemberKey, 1, models.TipWon)
	if err != nil {
		t.Fatalf("settlement failed: %v", err)
	}
	if record.Status != models.TipWon {
		t.Errorf("expected won, got %s", record.Status)
	}
	if record.PointsEarned != 5 {
		t.Errorf("settlement must not recompute points, got %d", record.PointsEarned)
	}

	if _, err := store.SettleTip(doon.MemberKey, 1, models.TipPending); err == nil {
		t.Errorf("pending is not a settlement outcome")
	}
	if _, err := store.SettleTip("m9", 1, models.TipLost); err == nil {
		t.Errorf("settling a missing record must fail")
	}
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	store := NewStore(failingStorage{}, StorageKey("g1"))

	record, err := store.SubmitTip(openRequest(kickoff.Add(-time.Hour)))
	if err != nil {
		t.Fatalf("submission must succeed for the session despite a failed save: %v", err)
	}
	if record.PointsEarned != 5 {
		t.Errorf("unexpected record: %+v", record)
	}

	if _, ok := store.GetTip(doon.MemberKey, 1); !ok {
		t.Errorf("in-memory state must survive a persistence failure")
	}
}

func TestMalformedStoredStateFallsBackToEmpty(t *testing.T) {
	storage := newMemoryStorage()
	key := StorageKey("g1")
	storage.values[key] = []byte("{not json")

	store := NewStore(storage, key)
	if len(store.Snapshot()) != 0 {
		t.Errorf("malformed stored state must fall back to an empty history")
	}

	// The store must still be usable and overwrite the broken blob.
	if _, err := store.SubmitTip(openRequest(kickoff.Add(-time.Hour))); err != nil {
		t.Fatalf("submission after fallback failed: %v", err)
	}
}

func TestStateRoundTripsThroughStorage(t *testing.T) {
	storage := newMemoryStorage()
	key := StorageKey("g1")

	store := NewStore(storage, key)
	if _, err := store.SubmitTip(openRequest(kickoff.Add(-time.Hour))); err != nil {
		t.Fatalf("submission failed: %v", err)
	}
	if _, err := store.SettleTip(doon.MemberKey, 1, models.TipWon); err != nil {
		t.Fatalf("settlement failed: %v", err)
	}

	reloaded := NewStore(storage, key)
	record, ok := reloaded.GetTip(doon.MemberKey, 1)
	if !ok {
		t.Fatalf("expected the record to survive a reload")
	}
	if record.Status != models.TipWon || record.PointsEarned != 5 {
		t.Errorf("reloaded record mismatch: %+v", record)
	}
	if reloaded.CurrentMember() != doon.MemberKey {
		t.Errorf("currentMemberId must round-trip, got %q", reloaded.CurrentMember())
	}
}
