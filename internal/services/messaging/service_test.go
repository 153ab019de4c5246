package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pickerMocks "github.com/KirkDiggler/explorer/internal/picker/mocks"
	"github.com/KirkDiggler/explorer/internal/services/account"
	"github.com/KirkDiggler/explorer/internal/services/game"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockPicker *pickerMocks.MockPicker
	service    Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPicker = pickerMocks.NewMockPicker(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Picker: s.mockPicker})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MessagingServiceTestSuite) TestCorrectGuess() {
	s.mockPicker.EXPECT().Pick(4).Return(1)

	output, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		Outcome: game.GuessOutcomeCorrect,
		Guess:   "Portugal",
		Country: "Portugal",
		Capital: "Lisboa",
	})
	s.Require().NoError(err)
	s.Equal(ToneCelebration, output.Tone)
	s.Equal("*** CORRECT! ***\nIt was Portugal!\nCapital: Lisboa\nYou know your world!", output.Message)
}

func (s *MessagingServiceTestSuite) TestIncorrectGuess() {
	s.mockPicker.EXPECT().Pick(3).Return(0)

	output, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		Outcome:        game.GuessOutcomeIncorrect,
		Guess:          "Espanha",
		GuessedCountry: "Espanha",
		DistanceKm:     401.6,
		Points:         800,
	})
	s.Require().NoError(err)
	s.Equal(ToneEncouraging, output.Tone)
	s.Equal("It's not Espanha!\nDistance: 402 km\n(+800 points)\nSo close!", output.Message)
}

func (s *MessagingServiceTestSuite) TestIncorrectGuessWithLocationRevealed() {
	output, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		Outcome:          game.GuessOutcomeIncorrect,
		GuessedCountry:   "Japão",
		DistanceKm:       11000,
		Points:           50,
		LocationRevealed: true,
	})
	s.Require().NoError(err)
	s.Equal(ToneWarning, output.Tone)
	s.Contains(output.Message, "(+50 points)")
	s.Contains(output.Message, "exact location was opened")
}

func (s *MessagingServiceTestSuite) TestUnknownGuess() {
	output, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{
		Outcome: game.GuessOutcomeUnknown,
		Guess:   "Atlântida",
	})
	s.Require().NoError(err)
	s.Equal("'Atlântida' is not on the list!\nTip: check the spelling", output.Message)
}

func (s *MessagingServiceTestSuite) TestUnknownOutcome() {
	_, err := s.service.GetGuessResultMessage(s.ctx, &GetGuessResultMessageInput{Outcome: "maybe"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestLevelComplete() {
	output, err := s.service.GetLevelCompleteMessage(s.ctx, &GetLevelCompleteMessageInput{
		LevelName:    "Easy",
		Score:        20000,
		NewBestScore: true,
	})
	s.Require().NoError(err)
	s.Equal("Congratulations! You completed the Easy level!\nFinal score: 20000\nNew best score!", output.Message)
}

func (s *MessagingServiceTestSuite) TestGameOver() {
	s.mockPicker.EXPECT().Pick(3).Return(2)

	output, err := s.service.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{Score: 1250})
	s.Require().NoError(err)
	s.Equal("Game Over", output.Title)
	s.Equal("You lost all your lives! Game Over!\nFinal score: 1250\nPack your bags and have another go!", output.Message)
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"account error", account.ErrWrongPassword, "Wrong password"},
		{"wrapped game error", fmt.Errorf("submit: %w", game.ErrRoundResolved), "You already found this country. Press Next country!"},
		{"finished", game.ErrGameFinished, "This game is over. Go back to the menu to play again."},
		{"other", errors.New("disk full"), "Something went wrong: disk full"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
			s.Require().NoError(err)
			s.Equal(tc.want, output.Message)
		})
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
