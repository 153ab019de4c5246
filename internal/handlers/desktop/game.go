package desktop

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/KirkDiggler/explorer/internal/assets"
	"github.com/KirkDiggler/explorer/internal/maplink"
	"github.com/KirkDiggler/explorer/internal/models"
	"github.com/KirkDiggler/explorer/internal/services/game"
	"github.com/KirkDiggler/explorer/internal/services/messaging"
)

// clueSlots is the number of clue lines on the game screen
const clueSlots = 3

// gameScreen holds the widgets and state of a running game
type gameScreen struct {
	app       *App
	gameID    string
	levelName string
	state     *game.GameState

	// mapVisible is set while the world map replaces the country picture
	mapVisible bool

	// notice is the end of game dialog, closing it returns to the menu
	notice dialog.Dialog

	userLabel   *widget.Label
	levelLabel  *widget.Label
	scoreLabel  *widget.Label
	heartsLabel *widget.Label
	picture     *canvas.Image
	placeholder *widget.Label
	clueLabels  [clueSlots]*widget.Label
	entry       *widget.Entry
	result      *widget.Label

	back      *widget.Button
	mapToggle *widget.Button
	enlarge   *widget.Button
	verify    *widget.Button
	next      *widget.Button
}

func newGameScreen(a *App, state *game.GameState, levelName string) *gameScreen {
	g := &gameScreen{
		app:         a,
		gameID:      state.Game.ID,
		levelName:   levelName,
		state:       state,
		userLabel:   widget.NewLabelWithStyle(userText(a.username), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		levelLabel:  widget.NewLabel(""),
		scoreLabel:  widget.NewLabel(""),
		heartsLabel: widget.NewLabel(""),
		picture:     canvas.NewImageFromImage(nil),
		placeholder: widget.NewLabel(""),
		entry:       widget.NewEntry(),
		result:      widget.NewLabel(""),
	}

	g.picture.FillMode = canvas.ImageFillContain
	g.picture.SetMinSize(fyne.NewSize(assets.DisplayWidth, assets.DisplayHeight))
	g.placeholder.Alignment = fyne.TextAlignCenter
	g.placeholder.Wrapping = fyne.TextWrapWord
	g.placeholder.Hide()

	for i := range g.clueLabels {
		g.clueLabels[i] = widget.NewLabel("")
		g.clueLabels[i].Wrapping = fyne.TextWrapWord
	}

	g.entry.SetPlaceHolder("Which country is this?")
	g.entry.OnSubmitted = func(string) { g.submitGuess() }
	g.result.Alignment = fyne.TextAlignCenter
	g.result.Wrapping = fyne.TextWrapWord

	g.back = widget.NewButton("Back to menu", g.backToMenu)
	g.mapToggle = widget.NewButton(mapToggleText(false), g.toggleMap)
	g.enlarge = widget.NewButton("Enlarge map", g.enlargeMap)
	g.enlarge.Disable()
	g.verify = widget.NewButton("Check", g.submitGuess)
	g.verify.Importance = widget.HighImportance
	g.next = widget.NewButton("Next country", g.nextRound)
	g.next.Importance = widget.SuccessImportance
	g.next.Hide()

	return g
}

func (g *gameScreen) content() fyne.CanvasObject {
	clues := container.NewVBox()
	for _, label := range g.clueLabels {
		clues.Add(label)
	}

	return container.NewVScroll(container.NewVBox(
		container.NewBorder(nil, nil, g.userLabel, g.back),
		container.NewHBox(g.levelLabel, g.scoreLabel, g.heartsLabel),
		widget.NewSeparator(),
		container.NewStack(g.picture, g.placeholder),
		container.NewHBox(g.mapToggle, g.enlarge),
		widget.NewSeparator(),
		clues,
		widget.NewLabel("Your answer:"),
		g.entry,
		g.verify,
		g.result,
		g.next,
	))
}

// showRound resets the screen for the round in state
func (g *gameScreen) showRound(state *game.GameState) {
	g.state = state
	g.mapVisible = false
	g.mapToggle.SetText(mapToggleText(false))
	g.enlarge.Disable()

	g.setPicture(g.countryPicture())
	g.refreshStatus()

	g.result.SetText("")
	g.entry.SetText("")
	g.entry.Enable()
	g.verify.Enable()
	g.next.Hide()
	g.app.window.Canvas().Focus(g.entry)
}

func (g *gameScreen) refreshStatus() {
	current := g.state.Game
	g.levelLabel.SetText(levelText(g.levelName))
	g.scoreLabel.SetText(scoreText(current.Score))
	g.heartsLabel.SetText(heartsText(current.Lives, models.MaxLives))

	for i, label := range g.clueLabels {
		if i < len(g.state.Clues) {
			label.SetText(clueText(i+1, g.state.Clues[i]))
		} else {
			label.SetText("")
		}
	}
}

func (g *gameScreen) submitGuess() {
	text := g.entry.Text
	if strings.TrimSpace(text) == "" {
		return
	}

	ctx := context.Background()
	output, err := g.app.gameService.SubmitGuess(ctx, &game.SubmitGuessInput{
		GameID: g.gameID,
		Guess:  text,
	})
	if err != nil {
		g.setResult(g.app.errorText(err), messaging.ToneNeutral)
		return
	}

	g.state = output.State
	g.refreshStatus()

	msg, err := g.app.messagingService.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		Outcome:          output.Outcome,
		Guess:            output.Guess,
		GuessedCountry:   output.GuessedCountry,
		Country:          output.State.Country.Name,
		Capital:          output.State.Country.Capital,
		DistanceKm:       output.DistanceKm,
		Points:           output.Points,
		LocationRevealed: output.LocationRevealed,
	})
	if err != nil {
		log.Printf("Failed to build guess message: %v", err)
	} else {
		g.setResult(msg.Message, msg.Tone)
	}

	if output.Outcome == game.GuessOutcomeCorrect {
		g.entry.Disable()
		g.verify.Disable()
		g.next.Show()
	} else {
		g.entry.SetText("")
		g.app.window.Canvas().Focus(g.entry)
	}

	if output.LocationRevealed {
		g.app.openURL(output.MapURL)
		g.showLocation(output.MapURL)
	}

	if output.GameOver {
		g.finishGameOver(output.NewBestScore)
	}
}

func (g *gameScreen) nextRound() {
	output, err := g.app.gameService.NextRound(context.Background(), &game.NextRoundInput{GameID: g.gameID})
	if err != nil {
		g.setResult(g.app.errorText(err), messaging.ToneNeutral)
		return
	}

	g.state = output.State
	if output.LevelComplete {
		g.finishLevel(output.NewBestScore)
		return
	}

	g.showRound(output.State)
}

func (g *gameScreen) finishLevel(newBest bool) {
	g.entry.Disable()
	g.verify.Disable()
	g.next.Hide()

	msg, err := g.app.messagingService.GetLevelCompleteMessage(context.Background(), &messaging.GetLevelCompleteMessageInput{
		LevelName:    g.levelName,
		Score:        g.state.Game.Score,
		NewBestScore: newBest,
	})
	if err != nil {
		log.Printf("Failed to build level complete message: %v", err)
		g.backToMenu()
		return
	}

	g.showThenMenu(msg.Title, msg.Message)
}

func (g *gameScreen) finishGameOver(newBest bool) {
	g.entry.Disable()
	g.verify.Disable()

	msg, err := g.app.messagingService.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
		Score:        g.state.Game.Score,
		NewBestScore: newBest,
	})
	if err != nil {
		log.Printf("Failed to build game over message: %v", err)
		g.backToMenu()
		return
	}

	g.showThenMenu(msg.Title, msg.Message)
}

func (g *gameScreen) showThenMenu(title, message string) {
	g.notice = dialog.NewInformation(title, message, g.app.window)
	g.notice.SetOnClosed(g.backToMenu)
	g.notice.Show()
}

// backToMenu ends the game, recording the best score, and shows the level menu
func (g *gameScreen) backToMenu() {
	_, err := g.app.gameService.EndGame(context.Background(), &game.EndGameInput{GameID: g.gameID})
	if err != nil && !errors.Is(err, game.ErrGameNotFound) {
		g.app.showError(err)
	}
	g.app.showMenu()
}

func (g *gameScreen) toggleMap() {
	g.mapVisible = !g.mapVisible
	g.mapToggle.SetText(mapToggleText(g.mapVisible))

	if g.mapVisible {
		g.setPicture(g.app.assets.LoadWorldMap())
		g.enlarge.Enable()
		return
	}

	g.setPicture(g.countryPicture())
	g.enlarge.Disable()
}

func (g *gameScreen) enlargeMap() {
	pic := g.app.assets.LoadWorldMapEnlarged()
	if pic.IsPlaceholder() {
		dialog.ShowInformation("Error", pic.Placeholder, g.app.window)
		return
	}

	img := canvas.NewImageFromImage(pic.Image)
	img.FillMode = canvas.ImageFillOriginal

	w := g.app.fyneApp.NewWindow("World map - enlarged")
	closeButton := widget.NewButton("Close", w.Close)
	w.SetContent(container.NewBorder(nil, closeButton, nil, nil, container.NewScroll(img)))

	bounds := pic.Image.Bounds()
	w.Resize(fyne.NewSize(float32(bounds.Dx()+20), float32(bounds.Dy()+60)))
	w.Show()
}

// showLocation shows the revealed map link with a QR code to open it on a phone
func (g *gameScreen) showLocation(link string) {
	items := container.NewVBox(
		widget.NewLabel("The exact location was opened in your browser."),
	)

	if u, err := url.Parse(link); err == nil {
		items.Add(widget.NewHyperlink(link, u))
	}

	qr, err := maplink.QRImage(link, maplink.DefaultQRSize)
	if err != nil {
		log.Printf("Failed to build QR code: %v", err)
	} else {
		img := canvas.NewImageFromImage(qr)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(200, 200))
		items.Add(widget.NewLabel("Scan to open it on your phone:"))
		items.Add(img)
	}

	dialog.ShowCustom("Exact location", "Close", items, g.app.window)
}

func (g *gameScreen) countryPicture() *assets.Picture {
	if g.state.Country == nil {
		return &assets.Picture{Source: assets.SourcePlaceholder, Placeholder: "[No country selected]"}
	}
	return g.app.assets.LoadCountry(g.state.Country.Name)
}

func (g *gameScreen) setPicture(pic *assets.Picture) {
	if pic.IsPlaceholder() {
		g.picture.Image = nil
		g.picture.Hide()
		g.placeholder.SetText(pic.Placeholder)
		g.placeholder.Show()
		return
	}

	g.placeholder.Hide()
	g.picture.Image = pic.Image
	g.picture.Show()
	g.picture.Refresh()
}

func (g *gameScreen) setResult(text string, tone messaging.MessageTone) {
	g.result.Importance = toneImportance(tone)
	g.result.SetText(text)
}
