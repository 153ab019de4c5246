package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/explorer/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository keeps games for the lifetime of the process
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string]*models.Game
}

// NewMemory creates an empty in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string]*models.Game),
	}
}

// SaveGame stores a copy of the game
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[input.Game.ID] = cloneGame(input.Game)

	return nil
}

// GetGame returns a copy of the stored game
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return cloneGame(game), nil
}

// DeleteGame removes a game; deleting an unknown game is not an error
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, input.GameID)

	return nil
}

func cloneGame(g *models.Game) *models.Game {
	c := *g
	c.ShownCountries = append([]string(nil), g.ShownCountries...)
	if g.Round != nil {
		round := *g.Round
		c.Round = &round
	}
	return &c
}
