package game

import "errors"

// Define errors
var (
	// ErrGameInProgress is returned when a guild already has an active game
	ErrGameInProgress = errors.New("a game is already active in this server")

	// ErrPlayerBusy is returned when a mentioned player is already in a game
	ErrPlayerBusy = errors.New("player is active in another game")

	// ErrNotEnoughPlayers is returned when a start request has fewer than
	// three liars
	ErrNotEnoughPlayers = errors.New("game requires at least 4 players: 1 guesser and 3 liars")

	// ErrGameNotFound is returned when no game exists for the lookup
	ErrGameNotFound = errors.New("game not found")

	// ErrPlayerNotInGame is returned when the player is not tracked by any game
	ErrPlayerNotInGame = errors.New("player not in an active game")

	// ErrNotGuesser is returned when someone other than the guesser guesses
	ErrNotGuesser = errors.New("player is not the guesser")

	// ErrDuplicateArticle is returned when another liar already holds the
	// submitted article
	ErrDuplicateArticle = errors.New("article already selected by another player")

	// ErrGameNotRevealed is returned when a guess arrives before the reveal
	ErrGameNotRevealed = errors.New("game has not revealed an article yet")

	// Constructor validation errors
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilGameRepo   = errors.New("game repository cannot be nil")
	ErrNilPlayerRepo = errors.New("player repository cannot be nil")
	ErrNilPicker     = errors.New("picker cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
	ErrNilUUID       = errors.New("UUID generator cannot be nil")
)
