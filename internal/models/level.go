package models

// Level is a named pool of countries
type Level string

const (
	// LevelEasy holds well-known countries
	LevelEasy Level = "easy"

	// LevelMedium holds countries that take some thought
	LevelMedium Level = "medium"

	// LevelHard holds every remaining country
	LevelHard Level = "hard"
)

// Levels lists the levels in menu order
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// IsValid reports whether l is a known level
func (l Level) IsValid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// DisplayName returns the label shown in the menu
func (l Level) DisplayName() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	}
	return string(l)
}
