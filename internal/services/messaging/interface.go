package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHelpMessage returns the bot usage text
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetInstructionsMessage returns the game rules text
	GetInstructionsMessage(ctx context.Context, input *GetInstructionsMessageInput) (*GetInstructionsMessageOutput, error)

	// GetArticleRequestMessage returns the DM sent to each liar at game start
	GetArticleRequestMessage(ctx context.Context, input *GetArticleRequestMessageInput) (*GetArticleRequestMessageOutput, error)

	// GetStartAckMessage returns the channel acknowledgement after a game starts
	GetStartAckMessage(ctx context.Context, input *GetStartAckMessageInput) (*GetStartAckMessageOutput, error)

	// GetRevealMessage returns the reveal announcement and the guess-syntax
	// follow-up
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetGuessOutcomeMessage returns the win/lose announcement
	GetGuessOutcomeMessage(ctx context.Context, input *GetGuessOutcomeMessageInput) (*GetGuessOutcomeMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a game service error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
