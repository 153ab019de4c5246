package geoscore

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used for all distances.
	EarthRadiusKm = 6371.0

	// ExactMatchScore is awarded when the guess is the country itself.
	ExactMatchScore = 1000
)

// Band is a distance range with a fixed award. A distance falls in the first
// band whose MaxKm it is strictly below.
type Band struct {
	MaxKm  float64
	Points int
}

// Bands is the award table, ordered by increasing distance.
var Bands = []Band{
	{MaxKm: 50, Points: 1000},
	{MaxKm: 500, Points: 800},
	{MaxKm: 2000, Points: 500},
	{MaxKm: 5000, Points: 200},
}

// FarPoints is awarded past the last band.
const FarPoints = 50

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the haversine distance (km) between two lat/lng points (degrees).
func DistanceKm(a, b Point) float64 {
	φ1 := a.Lat * math.Pi / 180.0
	φ2 := b.Lat * math.Pi / 180.0
	dφ := (b.Lat - a.Lat) * math.Pi / 180.0
	dλ := (b.Lng - a.Lng) * math.Pi / 180.0

	sinDφ := math.Sin(dφ / 2)
	sinDλ := math.Sin(dλ / 2)

	h := sinDφ*sinDφ + math.Cos(φ1)*math.Cos(φ2)*sinDλ*sinDλ
	// rounding can push h a hair past 1 for antipodal points
	if h > 1 {
		h = 1
	}
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// ScoreForDistance maps a distance in km to its band award.
func ScoreForDistance(km float64) int {
	for _, b := range Bands {
		if km < b.MaxKm {
			return b.Points
		}
	}
	return FarPoints
}

// FormatDistance formats a distance the way results are shown to the player.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.0f km", km)
}
