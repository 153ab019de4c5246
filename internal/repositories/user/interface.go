package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/explorer/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/explorer/internal/models"
)

// Repository defines the interface for user account persistence
type Repository interface {
	// GetUser retrieves a user by username
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// CreateUser persists a new user, failing if the username is taken
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// SaveUser persists changes to an existing user
	SaveUser(ctx context.Context, input *SaveUserInput) error
}
