package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrInvalidLevel     GameError = "invalid level"
	ErrMissingUsername  GameError = "username cannot be empty"
	ErrEmptyGuess       GameError = "guess cannot be empty"
	ErrRoundResolved    GameError = "round already resolved"
	ErrRoundInProgress  GameError = "current round is not resolved yet"
	ErrGameFinished     GameError = "game is already finished"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilCountryRepo   GameError = "country repository cannot be nil"
	ErrNilUserRepo      GameError = "user repository cannot be nil"
	ErrNilGameRepo      GameError = "game repository cannot be nil"
	ErrNilPicker        GameError = "picker cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
