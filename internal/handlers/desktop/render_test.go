package desktop

import (
	"testing"

	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/services/game"
	"github.com/KirkDiggler/explorer/internal/services/messaging"
)

func TestHeartsText(t *testing.T) {
	assert.Equal(t, "♥♥♥", heartsText(3, models.MaxLives))
	assert.Equal(t, "♥♡♡", heartsText(1, models.MaxLives))
	assert.Equal(t, "♡♡♡", heartsText(0, models.MaxLives))
	assert.Equal(t, "♡♡♡", heartsText(-2, models.MaxLives))
	assert.Equal(t, "♥♥♥", heartsText(7, models.MaxLives))
}

func TestClueText(t *testing.T) {
	assert.Equal(t, "CLUE 1: Continent - Europa",
		clueText(1, models.Clue{Kind: models.ClueKindContinent, Text: "Europa"}))
	assert.Equal(t, "CLUE 2: Climate - Tropical",
		clueText(2, models.Clue{Kind: models.ClueKindClimate, Text: "Tropical"}))
	assert.Equal(t, "CLUE 3: Animal - Lince-ibérico",
		clueText(3, models.Clue{Kind: models.ClueKindAnimal, Text: "Lince-ibérico"}))
}

func TestLevelButtonText(t *testing.T) {
	assert.Equal(t, "Easy (20 countries)", levelButtonText(&game.LevelInfo{Name: "Easy", CountryCount: 20}))
	assert.Equal(t, "Hard (1 country)", levelButtonText(&game.LevelInfo{Name: "Hard", CountryCount: 1}))
}

func TestStatusTexts(t *testing.T) {
	assert.Equal(t, "Points: 1800", scoreText(1800))
	assert.Equal(t, "Level: Medium", levelText("Medium"))
	assert.Equal(t, "Player: maria", userText("maria"))
	assert.Equal(t, "Welcome, maria!", welcomeText("maria"))
	assert.Equal(t, "Best score: 5000 | Countries found: 7", statsText(5000, 7))
	assert.Equal(t, "Default account: admin / admin123", defaultAccountHint())
	assert.Equal(t, "Show world map", mapToggleText(false))
	assert.Equal(t, "Show country picture", mapToggleText(true))
}

func TestToneImportance(t *testing.T) {
	assert.Equal(t, widget.SuccessImportance, toneImportance(messaging.ToneCelebration))
	assert.Equal(t, widget.DangerImportance, toneImportance(messaging.ToneEncouraging))
	assert.Equal(t, widget.WarningImportance, toneImportance(messaging.ToneWarning))
	assert.Equal(t, widget.MediumImportance, toneImportance(messaging.ToneNeutral))
}
