package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/explorer/internal/assets"
	"github.com/KirkDiggler/explorer/internal/common/clock"
	"github.com/KirkDiggler/explorer/internal/common/uuid"
	"github.com/KirkDiggler/explorer/internal/config"
	"github.com/KirkDiggler/explorer/internal/handlers/desktop"
	"github.com/KirkDiggler/explorer/internal/picker"
	"github.com/KirkDiggler/explorer/internal/repositories/country"
	"github.com/KirkDiggler/explorer/internal/repositories/game"
	"github.com/KirkDiggler/explorer/internal/repositories/user"
	accountService "github.com/KirkDiggler/explorer/internal/services/account"
	gameService "github.com/KirkDiggler/explorer/internal/services/game"
	messagingService "github.com/KirkDiggler/explorer/internal/services/messaging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The quiz cannot run without its reference data
	countryRepo, err := country.NewFile(&country.Config{Path: cfg.Data.CountriesFile})
	if err != nil {
		switch {
		case errors.Is(err, country.ErrDataFileNotFound):
			log.Fatalf("Error: file '%s' not found!", cfg.Data.CountriesFile)
		case errors.Is(err, country.ErrMalformedDataFile):
			log.Fatalf("Error: file '%s' is malformed: %v", cfg.Data.CountriesFile, err)
		default:
			log.Fatalf("Failed to load countries: %v", err)
		}
	}

	userRepo, err := newUserRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	loader, err := assets.New(&assets.Config{Dir: cfg.Data.ImagesDir})
	if err != nil {
		log.Fatalf("Failed to create image loader: %v", err)
	}
	loader.LogAvailable()

	countryPicker := picker.New(&picker.Config{Seed: cfg.Game.RandomSeed})

	accountSvc, err := accountService.New(&accountService.Config{
		HashPasswords: cfg.Users.HashPasswords,
		UserRepo:      userRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create account service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		MaxWrongGuesses: gameService.DefaultMaxWrongGuesses,
		CountryRepo:     countryRepo,
		UserRepo:        userRepo,
		GameRepo:        game.NewMemory(),
		Picker:          countryPicker,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Resolve the levels up front so missing countries are logged at start-up
	if _, err := gameSvc.GetLevels(context.Background()); err != nil {
		log.Fatalf("Failed to configure levels: %v", err)
	}

	messagingSvc, err := messagingService.NewService(&messagingService.ServiceConfig{
		Picker: countryPicker,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	ui, err := desktop.New(&desktop.Config{
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		AccountService:   accountSvc,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Assets:           loader,
	})
	if err != nil {
		log.Fatalf("Failed to create desktop app: %v", err)
	}

	ui.Run()
	log.Println("Explorer has been shut down")
}

func newUserRepository(cfg *config.Config) (user.Repository, error) {
	if cfg.Users.Store != config.UserStoreRedis {
		log.Printf("Using user file %s", cfg.Data.UsersFile)
		return user.NewFile(&user.FileConfig{Path: cfg.Data.UsersFile})
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Using Redis user store at %s", cfg.Redis.Addr)
	return user.NewRedis(&user.RedisConfig{RedisClient: redisClient})
}
