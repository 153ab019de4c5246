package user

import (
	"errors"

	"github.com/KirkDiggler/explorer/internal/models"
)

const (
	// DefaultUsername is the account created with a fresh store
	DefaultUsername = "admin"

	// DefaultPassword is the password of the default account
	DefaultPassword = "admin123"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when creating a taken username
	ErrUserAlreadyExists = errors.New("user already exists")
)

// GetUserInput contains parameters for retrieving a user
type GetUserInput struct {
	Username string
}

// CreateUserInput contains parameters for creating a user
type CreateUserInput struct {
	User *models.User
}

// SaveUserInput contains parameters for saving a user
type SaveUserInput struct {
	User *models.User
}

// record is the stored form of a user; the username is the key around it
type record struct {
	Password       string `json:"password"`
	BestScore      int    `json:"pontuacao_maxima"`
	GamesCompleted int    `json:"jogos_completos"`
}

func toRecord(u *models.User) *record {
	return &record{
		Password:       u.Password,
		BestScore:      u.BestScore,
		GamesCompleted: u.GamesCompleted,
	}
}

func (r *record) toUser(username string) *models.User {
	return &models.User{
		Username:       username,
		Password:       r.Password,
		BestScore:      r.BestScore,
		GamesCompleted: r.GamesCompleted,
	}
}

func defaultRecord() *record {
	return &record{Password: DefaultPassword}
}

func validateUser(u *models.User) error {
	if u == nil {
		return errors.New("input and user cannot be nil")
	}
	if u.Username == "" {
		return errors.New("username cannot be empty")
	}
	return nil
}
