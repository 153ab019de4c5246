package account

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/explorer/internal/models"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	hashPasswords bool
	userRepo      userRepo.Repository
}

// New creates a new account service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	return &service{
		hashPasswords: cfg.HashPasswords,
		userRepo:      cfg.UserRepo,
	}, nil
}

// Login checks the credentials of an existing user
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, ErrMissingFields
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: username})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPassword(existing.Password, password) {
		return nil, ErrWrongPassword
	}

	log.Printf("User %s logged in", username)

	return &LoginOutput{User: existing}, nil
}

// Register creates a new user
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil {
		return nil, ErrMissingFields
	}

	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	confirm := strings.TrimSpace(input.ConfirmPassword)

	if username == "" || password == "" || confirm == "" {
		return nil, ErrMissingFields
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return nil, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	_, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: username})
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	stored, err := s.storedPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Username: username,
		Password: stored,
	}

	err = s.userRepo.CreateUser(ctx, &userRepo.CreateUserInput{User: newUser})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Registered user %s", username)

	return &RegisterOutput{User: newUser}, nil
}

// GetStats returns the lifetime statistics of a user
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: input.Username})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &GetStatsOutput{
		BestScore:      existing.BestScore,
		GamesCompleted: existing.GamesCompleted,
	}, nil
}

func (s *service) storedPassword(password string) (string, error) {
	if !s.hashPasswords {
		return password, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// checkPassword compares a typed password with the stored one, which may be
// plaintext or a bcrypt hash. Only values bcrypt can parse count as hashes.
func checkPassword(stored, typed string) bool {
	if _, err := bcrypt.Cost([]byte(stored)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(typed)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(typed)) == 1
}
