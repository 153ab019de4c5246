package account

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/explorer/internal/services/account Service

import "context"

// Service defines the interface for account operations
type Service interface {
	// Login checks the credentials of an existing user
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates a new user
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetStats returns the lifetime statistics of a user
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
