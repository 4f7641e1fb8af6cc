package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/totpal/internal/services/game"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestHelpUsesConfiguredPrefixes() {
	svc, err := NewService(&ServiceConfig{
		CommandPrefix: "!liars",
		GuessPrefix:   "!accuse",
	})
	s.Require().NoError(err)

	output, err := svc.GetHelpMessage(s.ctx, &GetHelpMessageInput{})
	s.Require().NoError(err)
	s.Contains(output.Message, "!liars")
	s.Contains(output.Message, "!accuse")
	s.Contains(output.Message, "--cleargame")
}

func (s *MessagingServiceTestSuite) TestInstructions() {
	output, err := s.svc.GetInstructionsMessage(s.ctx, &GetInstructionsMessageInput{})
	s.Require().NoError(err)
	s.Contains(output.Message, "Core rules")
	s.Contains(output.Message, "Optional rules")
}

func (s *MessagingServiceTestSuite) TestRevealMessage() {
	output, err := s.svc.GetRevealMessage(s.ctx, &GetRevealMessageInput{
		Article: "Great Molasses Flood",
	})
	s.Require().NoError(err)
	s.Equal("The article is: Great Molasses Flood", output.Announcement)
	s.Contains(output.FollowUp, "!guess")
}

func (s *MessagingServiceTestSuite) TestGuessOutcomeCorrect() {
	output, err := s.svc.GetGuessOutcomeMessage(s.ctx, &GetGuessOutcomeMessageInput{
		Correct:        true,
		GuesserID:      "guesser-id",
		AccusedID:      "liar-2",
		SelectedLiarID: "liar-2",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "correctly")
	s.Contains(output.Message, "<@guesser-id>")
	s.Contains(output.Message, "<@liar-2>")
}

func (s *MessagingServiceTestSuite) TestGuessOutcomeWrong() {
	output, err := s.svc.GetGuessOutcomeMessage(s.ctx, &GetGuessOutcomeMessageInput{
		Correct:        false,
		GuesserID:      "guesser-id",
		AccusedID:      "liar-1",
		SelectedLiarID: "liar-2",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "incorrectly")
	s.Contains(output.Message, "The correct answer was <@liar-2>")
	s.Contains(output.Message, "<@liar-1> wins")
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	cases := map[error]string{
		game.ErrGameInProgress:   "Only one game",
		game.ErrPlayerBusy:       "active in another game",
		game.ErrNotEnoughPlayers: "at least 4 players",
		game.ErrNotGuesser:       "not the guesser",
		game.ErrGameNotRevealed:  "not been revealed",
		game.ErrDuplicateArticle: "already selected",
		game.ErrPlayerNotInGame:  "not in an active game",
		errors.New("boom"):       "Something went wrong",
	}

	for err, want := range cases {
		output, msgErr := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: err})
		s.Require().NoError(msgErr)
		s.Contains(output.Message, want)
	}
}
