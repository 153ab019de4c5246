package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/explorer/internal/common/clock"
	"github.com/KirkDiggler/explorer/internal/common/uuid"
	"github.com/KirkDiggler/explorer/internal/geoscore"
	"github.com/KirkDiggler/explorer/internal/maplink"
	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/names"
	"github.com/KirkDiggler/explorer/internal/picker"
	countryRepo "github.com/KirkDiggler/explorer/internal/repositories/country"
	gameRepo "github.com/KirkDiggler/explorer/internal/repositories/game"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	maxWrongGuesses int
	easyCountries   []string
	mediumCountries []string

	countryRepo countryRepo.Repository
	userRepo    userRepo.Repository
	gameRepo    gameRepo.Repository

	picker        picker.Picker
	clock         clock.Clock
	uuidGenerator uuid.UUID

	levelsMu sync.Mutex
	levels   map[models.Level][]string
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.CountryRepo == nil {
		return nil, ErrNilCountryRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxWrong := cfg.MaxWrongGuesses
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrongGuesses
	}

	easy := cfg.EasyCountries
	if easy == nil {
		easy = DefaultEasyCountries
	}
	medium := cfg.MediumCountries
	if medium == nil {
		medium = DefaultMediumCountries
	}

	return &service{
		maxWrongGuesses: maxWrong,
		easyCountries:   easy,
		mediumCountries: medium,
		countryRepo:     cfg.CountryRepo,
		userRepo:        cfg.UserRepo,
		gameRepo:        cfg.GameRepo,
		picker:          cfg.Picker,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// GetLevels returns the playable levels with their country counts
func (s *service) GetLevels(ctx context.Context) (*GetLevelsOutput, error) {
	pools, err := s.levelPools(ctx)
	if err != nil {
		return nil, err
	}

	levels := make([]*LevelInfo, 0, len(models.Levels))
	for _, level := range models.Levels {
		levels = append(levels, &LevelInfo{
			Level:        level,
			Name:         level.DisplayName(),
			CountryCount: len(pools[level]),
		})
	}

	return &GetLevelsOutput{Levels: levels}, nil
}

// StartGame creates a new game for a user and starts its first round
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.Username == "" {
		return nil, ErrMissingUsername
	}
	if !input.Level.IsValid() {
		return nil, ErrInvalidLevel
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:             s.uuidGenerator.NewUUID(),
		Username:       input.Username,
		Level:          input.Level,
		Status:         models.GameStatusInProgress,
		Score:          0,
		Lives:          models.MaxLives,
		ShownCountries: []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	country, _, err := s.startRound(ctx, game)
	if err != nil {
		return nil, err
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	log.Printf("User %s started a %s game %s", game.Username, game.Level, game.ID)

	return &StartGameOutput{
		State:         newState(game, country),
		LevelComplete: game.Status == models.GameStatusLevelComplete,
	}, nil
}

// NextRound moves a game on to a country it has not shown yet
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsFinished() {
		return nil, ErrGameFinished
	}
	if game.Round != nil && !game.Round.IsResolved() {
		return nil, ErrRoundInProgress
	}

	country, newBest, err := s.startRound(ctx, game)
	if err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &NextRoundOutput{
		State:         newState(game, country),
		LevelComplete: game.Status == models.GameStatusLevelComplete,
		NewBestScore:  newBest,
	}, nil
}

// SubmitGuess scores a typed guess against the current round
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil || strings.TrimSpace(input.Guess) == "" {
		return nil, ErrEmptyGuess
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if game.Status.IsFinished() {
		return nil, ErrGameFinished
	}
	if game.Round == nil || game.Round.IsResolved() {
		return nil, ErrRoundResolved
	}

	target, err := s.countryRepo.GetCountry(ctx, &countryRepo.GetCountryInput{Name: game.Round.Country})
	if err != nil {
		return nil, fmt.Errorf("failed to get current country: %w", err)
	}

	display := names.Title(strings.TrimSpace(input.Guess))
	output := &SubmitGuessOutput{Guess: display}

	guessed, err := s.countryRepo.FindCountry(ctx, &countryRepo.FindCountryInput{Query: display})
	if err != nil {
		if !errors.Is(err, countryRepo.ErrCountryNotFound) {
			return nil, fmt.Errorf("failed to find country: %w", err)
		}

		output.Outcome = GuessOutcomeUnknown
		output.State = newState(game, target)
		return output, nil
	}

	output.GuessedCountry = guessed.Name

	if guessed.Name == target.Name {
		s.applyCorrectGuess(game, output)

		if err := s.recordRoundSolved(ctx, game.Username); err != nil {
			return nil, err
		}
	} else {
		if err := s.applyWrongGuess(ctx, game, guessed, target, output); err != nil {
			return nil, err
		}
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	output.State = newState(game, target)
	return output, nil
}

// EndGame concludes a game and records the best score
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	newBest := false
	if game.Status == models.GameStatusInProgress {
		game.Status = models.GameStatusEnded
		newBest, err = s.recordBestScore(ctx, game)
		if err != nil {
			return nil, err
		}
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	log.Printf("Game %s of %s ended with %d points (%s)", game.ID, game.Username, game.Score, game.Status)

	return &EndGameOutput{
		Score:        game.Score,
		Status:       game.Status,
		NewBestScore: newBest,
	}, nil
}

// GetGame returns the current state of a game
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrGameNotFound
	}

	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	var country *models.Country
	if game.Round != nil {
		country, err = s.countryRepo.GetCountry(ctx, &countryRepo.GetCountryInput{Name: game.Round.Country})
		if err != nil {
			return nil, fmt.Errorf("failed to get current country: %w", err)
		}
	}

	return &GetGameOutput{State: newState(game, country)}, nil
}

// startRound picks an unshown country of the level, or completes the level
// when none is left
func (s *service) startRound(ctx context.Context, game *models.Game) (*models.Country, bool, error) {
	pools, err := s.levelPools(ctx)
	if err != nil {
		return nil, false, err
	}
	pool := pools[game.Level]

	var available []string
	for _, name := range pool {
		if !game.HasShown(name) {
			available = append(available, name)
		}
	}

	if len(available) == 0 {
		game.Status = models.GameStatusLevelComplete
		log.Printf("Game %s completed level %s with %d points", game.ID, game.Level, game.Score)

		newBest, err := s.recordBestScore(ctx, game)
		if err != nil {
			return nil, false, err
		}

		var country *models.Country
		if game.Round != nil {
			country, err = s.countryRepo.GetCountry(ctx, &countryRepo.GetCountryInput{Name: game.Round.Country})
			if err != nil {
				return nil, false, fmt.Errorf("failed to get current country: %w", err)
			}
		}
		return country, newBest, nil
	}

	name := available[s.picker.Pick(len(available))]
	country, err := s.countryRepo.GetCountry(ctx, &countryRepo.GetCountryInput{Name: name})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get country %s: %w", name, err)
	}

	game.ShownCountries = append(game.ShownCountries, name)
	game.Round = &models.Round{
		Number:        len(game.ShownCountries),
		Country:       name,
		Status:        models.RoundStatusInProgress,
		WrongGuesses:  0,
		CluesRevealed: 1,
		StartedAt:     s.clock.Now(),
	}

	log.Printf("Game %s round %d: %d/%d countries shown", game.ID, game.Round.Number, len(game.ShownCountries), len(pool))

	return country, false, nil
}

func (s *service) applyCorrectGuess(game *models.Game, output *SubmitGuessOutput) {
	game.Score += geoscore.ExactMatchScore
	game.Round.Status = models.RoundStatusResolved
	game.Round.WrongGuesses = 0

	output.Outcome = GuessOutcomeCorrect
	output.Points = geoscore.ExactMatchScore
}

func (s *service) applyWrongGuess(ctx context.Context, game *models.Game, guessed, target *models.Country, output *SubmitGuessOutput) error {
	km := geoscore.DistanceKm(
		geoscore.Point{Lat: guessed.Coordinates.Lat, Lng: guessed.Coordinates.Lng},
		geoscore.Point{Lat: target.Coordinates.Lat, Lng: target.Coordinates.Lng},
	)
	points := geoscore.ScoreForDistance(km)

	game.Score += points
	game.Round.WrongGuesses++

	output.Outcome = GuessOutcomeIncorrect
	output.DistanceKm = km
	output.Points = points

	if game.Round.WrongGuesses >= s.maxWrongGuesses {
		output.LocationRevealed = true
		output.MapURL = maplink.URL(target.Coordinates.Lat, target.Coordinates.Lng)
		output.LifeLost = true
		game.Round.WrongGuesses = 0

		if game.LoseLife() == 0 {
			game.Status = models.GameStatusGameOver
			output.GameOver = true
			log.Printf("Game %s is over with %d points", game.ID, game.Score)

			newBest, err := s.recordBestScore(ctx, game)
			if err != nil {
				return err
			}
			output.NewBestScore = newBest
		}
	}

	output.Clue = revealNextClue(game.Round, target)
	return nil
}

// recordRoundSolved counts a solved country in the user's statistics
func (s *service) recordRoundSolved(ctx context.Context, username string) error {
	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: username})
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", username, err)
	}

	existing.GamesCompleted++
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: existing}); err != nil {
		return fmt.Errorf("failed to save user %s: %w", username, err)
	}

	return nil
}

// recordBestScore stores the game score as the user's best if it beats it
func (s *service) recordBestScore(ctx context.Context, game *models.Game) (bool, error) {
	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{Username: game.Username})
	if err != nil {
		return false, fmt.Errorf("failed to get user %s: %w", game.Username, err)
	}

	if !existing.RecordScore(game.Score) {
		return false, nil
	}

	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: existing}); err != nil {
		return false, fmt.Errorf("failed to save user %s: %w", game.Username, err)
	}

	log.Printf("New best score for %s: %d", game.Username, game.Score)
	return true, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	if gameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (s *service) saveGame(ctx context.Context, game *models.Game) error {
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func newState(game *models.Game, country *models.Country) *GameState {
	state := &GameState{
		Game:    game,
		Country: country,
	}
	if game.Round != nil {
		state.Clues = Clues(country, game.Round.CluesRevealed)
	}
	return state
}
