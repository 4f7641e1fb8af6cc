package messaging

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// CommandPrefix is the text command that starts a game, e.g. "!totpal"
	CommandPrefix string

	// GuessPrefix is the text command that submits a guess, e.g. "!guess"
	GuessPrefix string
}

// GetHelpMessageInput contains parameters for getting the help text
type GetHelpMessageInput struct{}

// GetHelpMessageOutput contains the help text
type GetHelpMessageOutput struct {
	Message string
}

// GetInstructionsMessageInput contains parameters for getting the rules text
type GetInstructionsMessageInput struct{}

// GetInstructionsMessageOutput contains the rules text
type GetInstructionsMessageOutput struct {
	Message string
}

// GetArticleRequestMessageInput contains parameters for the article request DM
type GetArticleRequestMessageInput struct{}

// GetArticleRequestMessageOutput contains the article request DM
type GetArticleRequestMessageOutput struct {
	Message string
}

// GetStartAckMessageInput contains parameters for the start acknowledgement
type GetStartAckMessageInput struct {
	// LiarCount is the number of liars the bot is waiting on
	LiarCount int
}

// GetStartAckMessageOutput contains the start acknowledgement
type GetStartAckMessageOutput struct {
	Message string
}

// GetRevealMessageInput contains parameters for the reveal announcement
type GetRevealMessageInput struct {
	// Article is the selected article title
	Article string
}

// GetRevealMessageOutput contains the reveal announcement and follow-up
type GetRevealMessageOutput struct {
	// Announcement names the selected article
	Announcement string

	// FollowUp explains the guess syntax
	FollowUp string
}

// GetGuessOutcomeMessageInput contains parameters for the outcome announcement
type GetGuessOutcomeMessageInput struct {
	// Correct is true when the accusation matched the selected liar
	Correct bool

	// GuesserID is the guesser's Discord user ID
	GuesserID string

	// AccusedID is the accused player's Discord user ID
	AccusedID string

	// SelectedLiarID is the selected liar's Discord user ID
	SelectedLiarID string
}

// GetGuessOutcomeMessageOutput contains the outcome announcement
type GetGuessOutcomeMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the game service error to translate
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the user-facing text
	Message string
}
