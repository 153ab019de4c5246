package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickStaysInRange(t *testing.T) {
	p := New(&Config{Seed: 42})
	for i := 0; i < 500; i++ {
		got := p.Pick(7)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 7)
	}
}

func TestPickSameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(100), b.Pick(100))
	}
}

func TestPickEmpty(t *testing.T) {
	p := New(nil)
	assert.Equal(t, 0, p.Pick(0))
	assert.Equal(t, 0, p.Pick(-3))
}
