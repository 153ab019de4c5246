package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/explorer/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// GetLevels returns the playable levels with their country counts
	GetLevels(ctx context.Context) (*GetLevelsOutput, error)

	// StartGame creates a new game for a user and starts its first round
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// NextRound moves a game on to a country it has not shown yet
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// SubmitGuess scores a typed guess against the current round
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// EndGame concludes a game and records the best score
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetGame returns the current state of a game
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
