package messaging

import (
	"github.com/KirkDiggler/explorer/internal/picker"
	"github.com/KirkDiggler/explorer/internal/services/game"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is used after a miss
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is used after a correct guess or a finished level
	ToneCelebration MessageTone = "celebration"

	// ToneWarning is used for unknown names and lost lives
	ToneWarning MessageTone = "warning"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Picker chooses among equivalent phrases; a random one is used when nil
	Picker picker.Picker
}

// GetGuessResultMessageInput contains the result of a guess to describe
type GetGuessResultMessageInput struct {
	Outcome game.GuessOutcome

	// Guess is the typed text as displayed
	Guess string

	// GuessedCountry is the country the guess resolved to
	GuessedCountry string

	// Country and Capital of the current round
	Country string
	Capital string

	DistanceKm       float64
	Points           int
	LocationRevealed bool
}

// GetGuessResultMessageOutput contains the message for a guess
type GetGuessResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetLevelCompleteMessageInput contains parameters for the level complete message
type GetLevelCompleteMessageInput struct {
	LevelName    string
	Score        int
	NewBestScore bool
}

// GetLevelCompleteMessageOutput contains the level complete message
type GetLevelCompleteMessageOutput struct {
	Title   string
	Message string
}

// GetGameOverMessageInput contains parameters for the game over message
type GetGameOverMessageInput struct {
	Score        int
	NewBestScore bool
}

// GetGameOverMessageOutput contains the game over message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
