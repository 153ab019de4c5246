package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/explorer/internal/models"
)

// FileConfig holds configuration for the JSON file user repository
type FileConfig struct {
	// Path is the location of the users JSON file
	Path string
}

// fileRepository keeps every user in memory and rewrites the whole file on each change
type fileRepository struct {
	mu    sync.Mutex
	path  string
	users map[string]*record
}

// NewFile opens the users file, creating it with the default account if missing
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("users file path cannot be empty")
	}

	repo := &fileRepository{
		path:  cfg.Path,
		users: make(map[string]*record),
	}

	data, err := os.ReadFile(cfg.Path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Users file %s not found, creating it with the default account", cfg.Path)
		repo.users[DefaultUsername] = defaultRecord()
		if err := repo.flush(); err != nil {
			return nil, err
		}
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	if err := json.Unmarshal(data, &repo.users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users file: %w", err)
	}
	if repo.users == nil {
		repo.users = make(map[string]*record)
	}
	for username, rec := range repo.users {
		if rec == nil {
			return nil, fmt.Errorf("failed to unmarshal users file: user %q has no record", username)
		}
	}

	return repo, nil
}

// GetUser retrieves a user by username
func (r *fileRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[input.Username]
	if !ok {
		return nil, ErrUserNotFound
	}

	return rec.toUser(input.Username), nil
}

// CreateUser adds a new user and writes the file
func (r *fileRepository) CreateUser(ctx context.Context, input *CreateUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateUser(input.User); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[input.User.Username]; ok {
		return ErrUserAlreadyExists
	}

	r.users[input.User.Username] = toRecord(input.User)
	if err := r.flush(); err != nil {
		delete(r.users, input.User.Username)
		return err
	}

	return nil
}

// SaveUser updates an existing user and writes the file
func (r *fileRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := validateUser(input.User); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.users[input.User.Username]
	if !ok {
		return ErrUserNotFound
	}

	r.users[input.User.Username] = toRecord(input.User)
	if err := r.flush(); err != nil {
		r.users[input.User.Username] = previous
		return err
	}

	return nil
}

// flush writes all users to a temporary file and renames it over the original.
// Callers hold r.mu.
func (r *fileRepository) flush() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r.users); err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp users file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write users file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace users file: %w", err)
	}

	return nil
}
