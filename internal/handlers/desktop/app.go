package desktop

import (
	"context"
	"errors"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/KirkDiggler/explorer/internal/assets"
	"github.com/KirkDiggler/explorer/internal/services/account"
	"github.com/KirkDiggler/explorer/internal/services/game"
	"github.com/KirkDiggler/explorer/internal/services/messaging"
)

const (
	// AppID identifies the application to the desktop
	AppID = "com.kirkdiggler.explorer"

	// DefaultTitle is the main window title
	DefaultTitle = "Virtual Explorer"

	DefaultWidth  = 600
	DefaultHeight = 800
)

// App is the desktop front end of the quiz
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	accountService   account.Service
	gameService      game.Service
	messagingService messaging.Service
	assets           *assets.Loader

	// username of the logged in player, empty on the login screens
	username string

	// screen currently shown while a game is running
	screen *gameScreen
}

// Config holds the configuration for the desktop app
type Config struct {
	Title  string
	Width  int
	Height int

	// FyneApp is created when nil
	FyneApp fyne.App

	// Services
	AccountService   account.Service
	GameService      game.Service
	MessagingService messaging.Service

	// Assets resolves the pictures shown during a round
	Assets *assets.Loader
}

// New creates the desktop app and its main window
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.AccountService == nil {
		return nil, errors.New("account service cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Assets == nil {
		return nil, errors.New("assets cannot be nil")
	}

	fyneApp := cfg.FyneApp
	if fyneApp == nil {
		fyneApp = app.NewWithID(AppID)
	}

	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	window := fyneApp.NewWindow(title)
	window.Resize(fyne.NewSize(float32(width), float32(height)))

	return &App{
		fyneApp:          fyneApp,
		window:           window,
		accountService:   cfg.AccountService,
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		assets:           cfg.Assets,
	}, nil
}

// Run shows the login screen and blocks until the window is closed
func (a *App) Run() {
	a.showLogin()
	a.window.ShowAndRun()
	log.Println("Window closed")
}

// Window returns the main window
func (a *App) Window() fyne.Window {
	return a.window
}

// errorText turns an error into the text shown to the player
func (a *App) errorText(err error) string {
	output, msgErr := a.messagingService.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return err.Error()
	}
	return output.Message
}

func (a *App) showError(err error) {
	log.Printf("Error: %v", err)
	dialog.ShowInformation("Error", a.errorText(err), a.window)
}

// openURL opens link in the default browser
func (a *App) openURL(link string) {
	u, err := url.Parse(link)
	if err != nil {
		log.Printf("Invalid map link %s: %v", link, err)
		return
	}
	if err := a.fyneApp.OpenURL(u); err != nil {
		log.Printf("Failed to open %s: %v", link, err)
	}
}
