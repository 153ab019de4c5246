package desktop

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/widget"

	"github.com/KirkDiggler/explorer/internal/models"
	userRepo "github.com/KirkDiggler/explorer/internal/repositories/user"
	"github.com/KirkDiggler/explorer/internal/services/game"
	"github.com/KirkDiggler/explorer/internal/services/messaging"
)

const (
	fullHeart   = "♥"
	brokenHeart = "♡"
)

func heartsText(lives, total int) string {
	if lives < 0 {
		lives = 0
	}
	if lives > total {
		lives = total
	}
	return strings.Repeat(fullHeart, lives) + strings.Repeat(brokenHeart, total-lives)
}

func clueKindText(kind models.ClueKind) string {
	switch kind {
	case models.ClueKindContinent:
		return "Continent"
	case models.ClueKindClimate:
		return "Climate"
	case models.ClueKindAnimal:
		return "Animal"
	}
	return string(kind)
}

func clueText(number int, clue models.Clue) string {
	return fmt.Sprintf("CLUE %d: %s - %s", number, clueKindText(clue.Kind), clue.Text)
}

func scoreText(score int) string {
	return fmt.Sprintf("Points: %d", score)
}

func levelText(name string) string {
	return fmt.Sprintf("Level: %s", name)
}

func userText(username string) string {
	return fmt.Sprintf("Player: %s", username)
}

func welcomeText(username string) string {
	return fmt.Sprintf("Welcome, %s!", username)
}

func statsText(best, completed int) string {
	return fmt.Sprintf("Best score: %d | Countries found: %d", best, completed)
}

func levelButtonText(info *game.LevelInfo) string {
	noun := "countries"
	if info.CountryCount == 1 {
		noun = "country"
	}
	return fmt.Sprintf("%s (%d %s)", info.Name, info.CountryCount, noun)
}

func mapToggleText(visible bool) string {
	if visible {
		return "Show country picture"
	}
	return "Show world map"
}

func defaultAccountHint() string {
	return fmt.Sprintf("Default account: %s / %s", userRepo.DefaultUsername, userRepo.DefaultPassword)
}

func toneImportance(tone messaging.MessageTone) widget.Importance {
	switch tone {
	case messaging.ToneCelebration:
		return widget.SuccessImportance
	case messaging.ToneEncouraging:
		return widget.DangerImportance
	case messaging.ToneWarning:
		return widget.WarningImportance
	}
	return widget.MediumImportance
}
