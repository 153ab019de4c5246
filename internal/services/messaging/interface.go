package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/explorer/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGuessResultMessage returns the message shown after a guess
	GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error)

	// GetLevelCompleteMessage returns the message shown when a level runs out of countries
	GetLevelCompleteMessage(ctx context.Context, input *GetLevelCompleteMessageInput) (*GetLevelCompleteMessageOutput, error)

	// GetGameOverMessage returns the message shown when the last life is lost
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
