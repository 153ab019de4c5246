package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// UserStoreFile keeps users in a JSON file
	UserStoreFile = "file"

	// UserStoreRedis keeps users in Redis
	UserStoreRedis = "redis"
)

type Config struct {
	Data struct {
		CountriesFile string `yaml:"countries_file" env:"EXPLORER_COUNTRIES_FILE" env-default:"paises.json"`
		UsersFile     string `yaml:"users_file" env:"EXPLORER_USERS_FILE" env-default:"utilizadores.json"`
		ImagesDir     string `yaml:"images_dir" env:"EXPLORER_IMAGES_DIR" env-default:"imagens"`
	} `yaml:"data"`

	Users struct {
		Store         string `yaml:"store" env:"EXPLORER_USER_STORE" env-default:"file"`
		HashPasswords bool   `yaml:"hash_passwords" env:"EXPLORER_HASH_PASSWORDS" env-default:"false"`
	} `yaml:"users"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	} `yaml:"redis"`

	Game struct {
		// RandomSeed makes country order reproducible; 0 seeds from the clock
		RandomSeed int64 `yaml:"random_seed" env:"EXPLORER_RANDOM_SEED" env-default:"0"`
	} `yaml:"game"`

	Window struct {
		Width  int `yaml:"width" env:"EXPLORER_WINDOW_WIDTH" env-default:"600"`
		Height int `yaml:"height" env:"EXPLORER_WINDOW_HEIGHT" env-default:"800"`
	} `yaml:"window"`
}

// Load reads the configuration. A .env file is loaded first if present, then
// the YAML file named by CONFIG_PATH if set, then environment variables.
func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Users.Store {
	case UserStoreFile, UserStoreRedis:
	default:
		return fmt.Errorf("unknown user store %q (want %q or %q)", c.Users.Store, UserStoreFile, UserStoreRedis)
	}

	if c.Data.CountriesFile == "" {
		return fmt.Errorf("countries file is required")
	}
	if c.Users.Store == UserStoreFile && c.Data.UsersFile == "" {
		return fmt.Errorf("users file is required")
	}
	if c.Users.Store == UserStoreRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required")
	}

	return nil
}
