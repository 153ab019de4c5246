package geoscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	lisbon = Point{Lat: 38.7223, Lng: -9.1393}
	madrid = Point{Lat: 40.4168, Lng: -3.7038}
	tokyo  = Point{Lat: 35.6762, Lng: 139.6503}
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, p := range []Point{lisbon, madrid, tokyo, {Lat: 90, Lng: 0}, {Lat: -33.9, Lng: 18.4}} {
		assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.InDelta(t, DistanceKm(lisbon, tokyo), DistanceKm(tokyo, lisbon), 1e-9)
	assert.InDelta(t, DistanceKm(madrid, lisbon), DistanceKm(lisbon, madrid), 1e-9)
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// Lisbon to Madrid is roughly 500 km
	assert.InDelta(t, 503, DistanceKm(lisbon, madrid), 5)

	// a quarter of the equator
	quarter := DistanceKm(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 90})
	assert.InDelta(t, 10007.5, quarter, 1)

	// antipodes are half the circumference
	half := DistanceKm(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 180})
	assert.InDelta(t, 20015.1, half, 1)
}

func TestScoreForDistance(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want int
	}{
		{"zero", 0, 1000},
		{"30 km", 30, 1000},
		{"band edge 50", 50, 800},
		{"600 km", 600, 800},
		{"just under 2000", 1999.9, 500},
		{"3000 km", 3000, 200},
		{"band edge 5000", 5000, 50},
		{"far away", 18000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreForDistance(tt.km))
		})
	}
}

func TestScoreForDistance_NonIncreasing(t *testing.T) {
	prev := ScoreForDistance(0)
	for km := 0.0; km <= 21000; km += 25 {
		got := ScoreForDistance(km)
		assert.LessOrEqual(t, got, prev, "score increased at %.0f km", km)
		prev = got
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "503 km", FormatDistance(502.6))
	assert.Equal(t, "0 km", FormatDistance(0))
}
