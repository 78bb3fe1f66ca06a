package tipService

import "errors"

var (
	// ErrUnauthorized - the supplied secret matched neither the member
	// nor the admin secret.
	ErrUnauthorized = errors.New("secret does not match member or admin secret")

	// ErrRoundLocked - the round is not the active round, or its first
	// kickoff has passed.
	ErrRoundLocked = errors.New("round is locked for tipping")

	// ErrIneligibleSelection - the selected team is not the underdog of
	// its fixture.
	ErrIneligibleSelection = errors.New("selected team is not the eligible underdog")

	ErrUnknownMember = errors.New("member not found in competition roster")
)
