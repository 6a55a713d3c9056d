package game

import "errors"

// Failure taxonomy. All of these are recoverable: the caller redirects the
// player to the appropriate screen rather than failing the session.
var (
	// ErrDungeonNotFound is returned for a dungeon id absent from the catalog.
	ErrDungeonNotFound = errors.New("dungeon not found")

	// ErrEmptyData is returned when the resolved price series has zero bars.
	// Distinct from ErrDungeonNotFound so the caller can render a
	// "market data unavailable" message instead of a 404.
	ErrEmptyData = errors.New("no market data in range")

	// ErrNoProfile is returned for actions on a session that has not
	// completed onboarding.
	ErrNoProfile = errors.New("no profile for session")

	// ErrNoPlaythrough is returned for in-dungeon actions when no
	// playthrough is active.
	ErrNoPlaythrough = errors.New("no active playthrough")

	// ErrRunFinished is returned for trades after the day cursor has run
	// past the series; the run must be settled first.
	ErrRunFinished = errors.New("playthrough finished, awaiting settlement")
)
