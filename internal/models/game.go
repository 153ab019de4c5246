package models

import (
	"time"
)

// MaxLives is the number of lives a game starts with
const MaxLives = 3

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates rounds are being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusLevelComplete indicates every country of the level was shown
	GameStatusLevelComplete GameStatus = "level_complete"

	// GameStatusGameOver indicates the player ran out of lives
	GameStatusGameOver GameStatus = "game_over"

	// GameStatusEnded indicates the player went back to the menu
	GameStatusEnded GameStatus = "ended"
)

// IsFinished reports whether no more guesses can be made
func (s GameStatus) IsFinished() bool {
	return s != GameStatusInProgress
}

// Game is one play-through of a level
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Username is the player who owns the game
	Username string

	// Level is the country pool being played
	Level Level

	// Status is the current state of the game
	Status GameStatus

	// Score is the running score of this game
	Score int

	// Lives remaining, always within [0, MaxLives]
	Lives int

	// ShownCountries lists every country already used in this game
	ShownCountries []string

	// Round is the current round, nil before the first one
	Round *Round

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// HasShown reports whether the country was already used in this game
func (g *Game) HasShown(country string) bool {
	for _, c := range g.ShownCountries {
		if c == country {
			return true
		}
	}
	return false
}

// LoseLife removes one life, never going below zero, and returns what is left
func (g *Game) LoseLife() int {
	if g.Lives > 0 {
		g.Lives--
	}
	return g.Lives
}
