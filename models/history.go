package models

import "time"

type TipStatus string

const (
	TipPending TipStatus = "pending"
	TipWon     TipStatus = "won"
	TipLost    TipStatus = "lost"
)

// HistoryRecord is one member's tip for one round. PointsEarned holds
// the potential value computed at submission time; settlement flips the
// status but never recomputes the points from a changed ladder.
type HistoryRecord struct {
	Round          int       `json:"round"`
	SelectedTeamID string    `json:"selectedTeamId"`
	OpponentID     string    `json:"opponentId"`
	Timestamp      time.Time `json:"timestamp"`
	Status         TipStatus `json:"status"`
	PointsEarned   int       `json:"pointsEarned"`
}
