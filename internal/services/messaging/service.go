package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/totpal/internal/services/game"
)

const (
	defaultCommandPrefix = "!totpal"
	defaultGuessPrefix   = "!guess"
)

const helpTemplate = `%[1]s is the master command. Follow it by at least 4 mentions to start a game, or follow it by a flag to issue other commands.

Valid flags:
    -h or --help lists the functions of this bot and how to use it
    -cg or --cleargame clears the current active game in this server (this happens automatically at the end of a game, but this flag is there in case it gets stuck)
    -i or --instructions explains how to play the game

Once you start a game, the bot will direct message the contestants asking for their articles. They should reply with only the title of the article, not a link.
If any of the contestants do not have direct messages enabled for the server, the bot will freeze up and you will need to clear the game before starting again.
(Note: sometimes the Discord API sends mentions in the wrong order, so the wrong person may end up guesser. There isn't anything we can do about this.)

Once the guesser is ready, they guess by putting a message in the chat starting with %[2]s and tagging the person they are guessing.`

const instructionsText = `**Core rules** (how the game has to work):
There is one guesser.
There are three or more contestants.
The guesser should be whoever you tag first when starting a game.

Each of the contestants picks a Wikipedia article. The bot picks one of the articles at random, and it is then every contestant's job to convince the guesser that it is their article.
The contestant whose article it actually is does this by listing facts from the article. The other contestants do this by making up plausible-sounding nonsense.

At the end of questioning, the guesser guesses whose article it is. If they guess correctly, both they and whoever they picked win. If they guess incorrectly, the person they picked wins.

**Optional rules** (the game can be run other ways but we find this works best):
Don't pick an article that both you and the guesser know about. It is a good strategy for victory but leads to short rounds that aren't fun for anybody.
Pick a random article. The desktop version of Wikipedia has a random article button; keep hitting it until you find something you like.
As guesser, go to each person and get the very basics before interrogating more thoroughly.`

// service implements the Service interface
type service struct {
	commandPrefix string
	guessPrefix   string
}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (Service, error) {
	commandPrefix := defaultCommandPrefix
	guessPrefix := defaultGuessPrefix
	if cfg != nil && cfg.CommandPrefix != "" {
		commandPrefix = cfg.CommandPrefix
	}
	if cfg != nil && cfg.GuessPrefix != "" {
		guessPrefix = cfg.GuessPrefix
	}

	return &service{
		commandPrefix: commandPrefix,
		guessPrefix:   guessPrefix,
	}, nil
}

// GetHelpMessage returns the bot usage text
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	return &GetHelpMessageOutput{
		Message: fmt.Sprintf(helpTemplate, s.commandPrefix, s.guessPrefix),
	}, nil
}

// GetInstructionsMessage returns the game rules text
func (s *service) GetInstructionsMessage(ctx context.Context, input *GetInstructionsMessageInput) (*GetInstructionsMessageOutput, error) {
	return &GetInstructionsMessageOutput{
		Message: instructionsText,
	}, nil
}

// GetArticleRequestMessage returns the DM sent to each liar at game start
func (s *service) GetArticleRequestMessage(ctx context.Context, input *GetArticleRequestMessageInput) (*GetArticleRequestMessageOutput, error) {
	return &GetArticleRequestMessageOutput{
		Message: "Please reply with the title of your Wikipedia article (not a link to it)",
	}, nil
}

// GetStartAckMessage returns the channel acknowledgement after a game starts
func (s *service) GetStartAckMessage(ctx context.Context, input *GetStartAckMessageInput) (*GetStartAckMessageOutput, error) {
	return &GetStartAckMessageOutput{
		Message: "Waiting on the contestants to reply with their articles",
	}, nil
}

// GetRevealMessage returns the reveal announcement and the guess-syntax
// follow-up
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil || input.Article == "" {
		return nil, errors.New("input and article cannot be empty")
	}

	return &GetRevealMessageOutput{
		Announcement: fmt.Sprintf("The article is: %s", input.Article),
		FollowUp:     fmt.Sprintf("Guess in the format \"%s [tag your guess]\"", s.guessPrefix),
	}, nil
}

// GetGuessOutcomeMessage returns the win/lose announcement
func (s *service) GetGuessOutcomeMessage(ctx context.Context, input *GetGuessOutcomeMessageInput) (*GetGuessOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Correct {
		return &GetGuessOutcomeMessageOutput{
			Message: fmt.Sprintf("You guessed correctly! <@%s> and <@%s> win!",
				input.GuesserID, input.SelectedLiarID),
		}, nil
	}

	return &GetGuessOutcomeMessageOutput{
		Message: fmt.Sprintf("You guessed incorrectly. The correct answer was <@%s>. <@%s> wins!",
			input.SelectedLiarID, input.AccusedID),
	}, nil
}

// GetErrorMessage returns a user-friendly message for a game service error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var message string
	switch {
	case errors.Is(input.Err, game.ErrGameInProgress):
		message = "Only one game can be active in a server at a time"
	case errors.Is(input.Err, game.ErrPlayerBusy):
		message = "Cannot start a game with a player active in another game"
	case errors.Is(input.Err, game.ErrNotEnoughPlayers):
		message = fmt.Sprintf("A game requires at least 4 players: 1 guesser and 3 contestants. Format as \"%s [tag guesser] [tag contestants]\"", s.commandPrefix)
	case errors.Is(input.Err, game.ErrNotGuesser):
		message = "You are not the guesser in this game"
	case errors.Is(input.Err, game.ErrGameNotRevealed):
		message = "The article has not been revealed yet; wait for every contestant to submit"
	case errors.Is(input.Err, game.ErrDuplicateArticle):
		message = "Someone else has already selected this article"
	case errors.Is(input.Err, game.ErrPlayerNotInGame):
		message = "You are not in an active game"
	default:
		message = "Something went wrong, please try again"
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}
