package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/explorer/internal/geoscore"
	"github.com/KirkDiggler/explorer/internal/picker"
	"github.com/KirkDiggler/explorer/internal/services/account"
	"github.com/KirkDiggler/explorer/internal/services/game"
)

// service implements the Service interface
type service struct {
	picker picker.Picker
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var p picker.Picker
	if config != nil && config.Picker != nil {
		p = config.Picker
	} else {
		p = picker.New(nil)
	}

	return &service{
		picker: p,
	}, nil
}

// GetGuessResultMessage returns the message shown after a guess
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Outcome {
	case game.GuessOutcomeCorrect:
		praise := s.choose([]string{
			"Well done, explorer!",
			"You know your world!",
			"Spot on!",
			"Another one for the passport!",
		})
		return &GetGuessResultMessageOutput{
			Title:   "Correct!",
			Message: fmt.Sprintf("*** CORRECT! ***\nIt was %s!\nCapital: %s\n%s", input.Country, input.Capital, praise),
			Tone:    ToneCelebration,
		}, nil

	case game.GuessOutcomeIncorrect:
		var b strings.Builder
		fmt.Fprintf(&b, "It's not %s!\nDistance: %s\n(+%d points)", input.GuessedCountry, geoscore.FormatDistance(input.DistanceKm), input.Points)

		tone := ToneEncouraging
		if input.LocationRevealed {
			b.WriteString("\nThe exact location was opened in your browser!")
			tone = ToneWarning
		} else {
			b.WriteString("\n")
			b.WriteString(s.choose(warmthPhrases(input.Points)))
		}

		return &GetGuessResultMessageOutput{
			Title:   "Not quite",
			Message: b.String(),
			Tone:    tone,
		}, nil

	case game.GuessOutcomeUnknown:
		return &GetGuessResultMessageOutput{
			Title:   "Unknown country",
			Message: fmt.Sprintf("'%s' is not on the list!\nTip: check the spelling", input.Guess),
			Tone:    ToneWarning,
		}, nil
	}

	return nil, fmt.Errorf("unknown guess outcome %q", input.Outcome)
}

// GetLevelCompleteMessage returns the message shown when a level runs out of countries
func (s *service) GetLevelCompleteMessage(ctx context.Context, input *GetLevelCompleteMessageInput) (*GetLevelCompleteMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("Congratulations! You completed the %s level!\nFinal score: %d", input.LevelName, input.Score)
	if input.NewBestScore {
		message += "\nNew best score!"
	}

	return &GetLevelCompleteMessageOutput{
		Title:   "Level complete",
		Message: message,
	}, nil
}

// GetGameOverMessage returns the message shown when the last life is lost
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("You lost all your lives! Game Over!\nFinal score: %d", input.Score)
	if input.NewBestScore {
		message += "\nStill, that is a new best score!"
	} else {
		message += "\n" + s.choose([]string{
			"The world is big. Try again!",
			"Every explorer gets lost sometimes.",
			"Pack your bags and have another go!",
		})
	}

	return &GetGameOverMessageOutput{
		Title:   "Game Over",
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var accountErr account.AccountError
	if errors.As(input.Err, &accountErr) {
		return &GetErrorMessageOutput{Message: capitalize(accountErr.Error()), Tone: ToneWarning}, nil
	}

	var message string
	switch {
	case errors.Is(input.Err, game.ErrRoundResolved):
		message = "You already found this country. Press Next country!"
	case errors.Is(input.Err, game.ErrRoundInProgress):
		message = "Find the current country first!"
	case errors.Is(input.Err, game.ErrGameFinished):
		message = "This game is over. Go back to the menu to play again."
	case errors.Is(input.Err, game.ErrGameNotFound):
		message = "This game no longer exists. Go back to the menu."
	default:
		message = "Something went wrong: " + input.Err.Error()
	}

	return &GetErrorMessageOutput{Message: message, Tone: ToneNeutral}, nil
}

// warmthPhrases returns phrases matching how close a wrong guess was
func warmthPhrases(points int) []string {
	switch {
	case points >= 800:
		return []string{"So close!", "Almost there!", "You are right next door!"}
	case points >= 500:
		return []string{"Getting warmer!", "Right region, keep going!"}
	case points >= 200:
		return []string{"Still quite far.", "Keep looking, check the clues!"}
	default:
		return []string{"Way off! Read the clues again.", "Other side of the world!"}
	}
}

func (s *service) choose(messages []string) string {
	return messages[s.picker.Pick(len(messages))]
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
