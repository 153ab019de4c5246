package picker

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/explorer/internal/picker Picker

// Picker chooses one index out of n
type Picker interface {
	Pick(n int) int
}

// Random picks uniformly using a seedable source
type Random struct {
	random *rand.Rand
}

// Config for the random picker
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new random picker
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns an index in [0, n); it returns 0 when n < 1
func (r *Random) Pick(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}
