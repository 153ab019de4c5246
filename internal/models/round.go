package models

import (
	"time"
)

// RoundStatus represents the state of a single round
type RoundStatus string

const (
	// RoundStatusInProgress indicates the player is still guessing
	RoundStatusInProgress RoundStatus = "in_progress"

	// RoundStatusResolved indicates the country was found
	RoundStatusResolved RoundStatus = "resolved"
)

// ClueKind identifies which fact a clue reveals
type ClueKind string

const (
	ClueKindContinent ClueKind = "continent"
	ClueKindClimate   ClueKind = "climate"
	ClueKindAnimal    ClueKind = "animal"
)

// Clue is a revealed fact about the current country
type Clue struct {
	Kind ClueKind
	Text string
}

// Round is one attempt at guessing a single country
type Round struct {
	// Number is the 1-based position of the round in its game
	Number int

	// Country is the name of the country to guess
	Country string

	// Status is the current state of the round
	Status RoundStatus

	// WrongGuesses counts known-but-wrong guesses since the last location reveal
	WrongGuesses int

	// CluesRevealed is how many clues are visible, starting at 1
	CluesRevealed int

	// StartedAt is when the round began
	StartedAt time.Time
}

// IsResolved reports whether the country has been found
func (r *Round) IsResolved() bool {
	return r.Status == RoundStatusResolved
}
