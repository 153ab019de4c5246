package account

import (
	"github.com/KirkDiggler/explorer/internal/models"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
)

const (
	// MinUsernameLength is the shortest accepted username
	MinUsernameLength = 3

	// MinPasswordLength is the shortest accepted password
	MinPasswordLength = 4
)

// Config holds configuration for the account service
type Config struct {
	// HashPasswords stores new passwords as bcrypt hashes instead of plaintext
	HashPasswords bool

	// Repository dependencies
	UserRepo userRepo.Repository
}

// LoginInput contains the credentials typed on the login screen
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the logged in user
type LoginOutput struct {
	User *models.User
}

// RegisterInput contains the fields of the registration screen
type RegisterInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// RegisterOutput contains the created user
type RegisterOutput struct {
	User *models.User
}

// GetStatsInput contains parameters for retrieving statistics
type GetStatsInput struct {
	Username string
}

// GetStatsOutput contains the lifetime statistics of a user
type GetStatsOutput struct {
	BestScore      int
	GamesCompleted int
}
