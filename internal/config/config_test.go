package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "paises.json", cfg.Data.CountriesFile)
	assert.Equal(t, "utilizadores.json", cfg.Data.UsersFile)
	assert.Equal(t, "imagens", cfg.Data.ImagesDir)
	assert.Equal(t, UserStoreFile, cfg.Users.Store)
	assert.False(t, cfg.Users.HashPasswords)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 600, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("EXPLORER_COUNTRIES_FILE", "/data/countries.json")
	t.Setenv("EXPLORER_USER_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("EXPLORER_HASH_PASSWORDS", "true")
	t.Setenv("EXPLORER_RANDOM_SEED", "99")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/countries.json", cfg.Data.CountriesFile)
	assert.Equal(t, UserStoreRedis, cfg.Users.Store)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Users.HashPasswords)
	assert.Equal(t, int64(99), cfg.Game.RandomSeed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  countries_file: world.json
  images_dir: pictures
users:
  store: file
  hash_passwords: true
`), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "world.json", cfg.Data.CountriesFile)
	assert.Equal(t, "pictures", cfg.Data.ImagesDir)
	assert.Equal(t, "utilizadores.json", cfg.Data.UsersFile)
	assert.True(t, cfg.Users.HashPasswords)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("EXPLORER_USER_STORE", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
