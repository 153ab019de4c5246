package desktop

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/KirkDiggler/explorer/internal/services/account"
	"github.com/KirkDiggler/explorer/internal/services/game"
)

func (a *App) showMenu() {
	a.screen = nil
	ctx := context.Background()

	stats, err := a.accountService.GetStats(ctx, &account.GetStatsInput{Username: a.username})
	if err != nil {
		a.showError(err)
		a.showLogin()
		return
	}

	levels, err := a.gameService.GetLevels(ctx)
	if err != nil {
		a.showError(err)
		return
	}

	buttons := container.NewVBox()
	for _, info := range levels.Levels {
		info := info
		button := widget.NewButton(levelButtonText(info), func() { a.startGame(info) })
		if info.CountryCount == 0 {
			button.Disable()
		}
		buttons.Add(button)
	}

	logout := widget.NewButton("Log out", func() { a.showLogin() })
	logout.Importance = widget.DangerImportance

	a.window.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(welcomeText(a.username), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(statsText(stats.BestScore, stats.GamesCompleted), fyne.TextAlignCenter, fyne.TextStyle{}),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Choose a level", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		buttons,
		widget.NewSeparator(),
		logout,
	)))
}

func (a *App) startGame(info *game.LevelInfo) {
	output, err := a.gameService.StartGame(context.Background(), &game.StartGameInput{
		Username: a.username,
		Level:    info.Level,
	})
	if err != nil {
		a.showError(err)
		return
	}

	screen := newGameScreen(a, output.State, info.Name)
	a.screen = screen
	if output.LevelComplete {
		screen.finishLevel(false)
		return
	}

	a.window.SetContent(screen.content())
	screen.showRound(output.State)
}
