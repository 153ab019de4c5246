package game

import (
	"github.com/KirkDiggler/explorer/internal/common/clock"
	"github.com/KirkDiggler/explorer/internal/common/uuid"
	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/picker"
	countryRepo "github.com/KirkDiggler/explorer/internal/repositories/country"
	gameRepo "github.com/KirkDiggler/explorer/internal/repositories/game"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
)

const (
	// DefaultMaxWrongGuesses is how many wrong guesses reveal the exact location
	DefaultMaxWrongGuesses = 10

	// easyFallbackEnd and mediumFallbackEnd slice the file order when no
	// wanted country of a level can be found
	easyFallbackEnd   = 20
	mediumFallbackEnd = 45
)

// DefaultEasyCountries are the well-known countries of the easy level
var DefaultEasyCountries = []string{
	"Portugal", "Espanha", "França", "Itália", "Brasil",
	"Estados Unidos", "Inglaterra", "Alemanha", "Japão", "China",
	"Canadá", "Austrália", "México", "Argentina", "Rússia",
	"Índia", "Coreia do Sul", "Turquia", "Egito", "África do Sul",
}

// DefaultMediumCountries are the countries of the medium level
var DefaultMediumCountries = []string{
	"Grécia", "Holanda", "Suécia", "Noruega", "Polónia",
	"Irlanda", "Áustria", "Bélgica", "Dinamarca", "Finlândia",
	"Hungria", "República Checa", "Roménia", "Bulgária", "Suíça",
	"Nova Zelândia", "Tailândia", "Indonésia", "Malásia", "Filipinas",
	"Colômbia", "Venezuela", "Chile", "Peru", "Marrocos",
}

// GuessOutcome classifies a submitted guess
type GuessOutcome string

const (
	// GuessOutcomeCorrect means the guess named the current country
	GuessOutcomeCorrect GuessOutcome = "correct"

	// GuessOutcomeIncorrect means the guess named another known country
	GuessOutcomeIncorrect GuessOutcome = "incorrect"

	// GuessOutcomeUnknown means the guess matched no country
	GuessOutcomeUnknown GuessOutcome = "unknown"
)

// Config holds configuration for the game service
type Config struct {
	// Wrong guesses in one round before the exact location is revealed
	MaxWrongGuesses int

	// Wanted country names per level, resolved loosely against the data file.
	// Nil means the defaults.
	EasyCountries   []string
	MediumCountries []string

	// Repository dependencies
	CountryRepo countryRepo.Repository
	UserRepo    userRepo.Repository
	GameRepo    gameRepo.Repository

	// Service dependencies
	Picker        picker.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// GameState is a game together with what the player can currently see
type GameState struct {
	Game *models.Game

	// Country of the current round, nil before the first round
	Country *models.Country

	// Clues revealed so far in the current round
	Clues []models.Clue
}

// LevelInfo describes one entry of the level menu
type LevelInfo struct {
	Level        models.Level
	Name         string
	CountryCount int
}

// GetLevelsOutput contains the levels in menu order
type GetLevelsOutput struct {
	Levels []*LevelInfo
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Username is the logged in player
	Username string

	// Level is the country pool to play
	Level models.Level
}

// StartGameOutput contains the new game
type StartGameOutput struct {
	State *GameState

	// LevelComplete is set when the level has no country at all
	LevelComplete bool
}

// NextRoundInput contains parameters for moving to the next country
type NextRoundInput struct {
	GameID string
}

// NextRoundOutput contains the game after moving on
type NextRoundOutput struct {
	State *GameState

	// LevelComplete is set when every country of the level was shown
	LevelComplete bool

	// NewBestScore is set when finishing the level beat the user's best score
	NewBestScore bool
}

// SubmitGuessInput contains a typed guess
type SubmitGuessInput struct {
	GameID string
	Guess  string
}

// SubmitGuessOutput contains the result of a guess
type SubmitGuessOutput struct {
	Outcome GuessOutcome

	// Guess is the typed text, title-cased for display
	Guess string

	// GuessedCountry is the country the guess resolved to, empty when unknown
	GuessedCountry string

	// DistanceKm between the guessed and the current country
	DistanceKm float64

	// Points added to the score by this guess
	Points int

	// Clue newly revealed by a wrong guess, if any
	Clue *models.Clue

	// LocationRevealed is set when too many wrong guesses revealed the answer
	LocationRevealed bool

	// MapURL points at the exact location when it was revealed
	MapURL string

	// LifeLost is set when revealing the location cost a life
	LifeLost bool

	// GameOver is set when the last life was lost
	GameOver bool

	// NewBestScore is set when the game ended on a new best score
	NewBestScore bool

	State *GameState
}

// EndGameInput contains parameters for leaving a game
type EndGameInput struct {
	GameID string
}

// EndGameOutput contains the final result of a game
type EndGameOutput struct {
	Score        int
	Status       models.GameStatus
	NewBestScore bool
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains the current state of a game
type GetGameOutput struct {
	State *GameState
}
