package models

// Coordinates is a WGS84 position in degrees
type Coordinates struct {
	// Lat is the latitude in degrees
	Lat float64

	// Lng is the longitude in degrees
	Lng float64
}

// Country is an immutable reference record loaded from the countries file
type Country struct {
	// Name is the unique key of the country, as written in the data file
	Name string

	// Continent is revealed as the first clue
	Continent string

	// Climate is revealed as the second clue
	Climate string

	// Capital is shown once the country has been guessed
	Capital string

	// Animals are representative animals; the first one is the third clue
	Animals []string

	// Coordinates is the reference point used for distance scoring
	Coordinates Coordinates
}
