package game

import (
	"github.com/KirkDiggler/totpal/internal/common/clock"
	"github.com/KirkDiggler/totpal/internal/common/uuid"
	"github.com/KirkDiggler/totpal/internal/models"
	"github.com/KirkDiggler/totpal/internal/picker"
	gameRepo "github.com/KirkDiggler/totpal/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/totpal/internal/repositories/player"
)

// MinLiars is the smallest liar set a game can start with
const MinLiars = 3

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Picker        picker.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerInput identifies a mentioned Discord user
type PlayerInput struct {
	// ID is the Discord user ID
	ID string

	// Name is the display name of the user
	Name string
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// GuildID is the Discord server the game is bound to
	GuildID string

	// ChannelID is the channel the start command arrived in
	ChannelID string

	// Guesser is the first mentioned user
	Guesser *PlayerInput

	// Liars are the remaining mentioned users, in mention order
	Liars []*PlayerInput
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Game is the newly created game
	Game *models.Game
}

// SubmitArticleInput contains parameters for submitting an article
type SubmitArticleInput struct {
	// PlayerID is the Discord user ID of the submitting liar
	PlayerID string

	// Article is the submitted article title
	Article string
}

// SubmitArticleOutput contains the result of submitting an article
type SubmitArticleOutput struct {
	// Accepted is true when the article was stored
	Accepted bool

	// Revealed is true when this submission completed the set and
	// triggered the reveal
	Revealed bool

	// Game is the game after the submission
	Game *models.Game
}

// ResolveGuessInput contains parameters for resolving a guess
type ResolveGuessInput struct {
	// PlayerID is the Discord user ID of the sender
	PlayerID string

	// AccusedID is the Discord user ID of the accused liar
	AccusedID string
}

// ResolveGuessOutput contains the result of resolving a guess
type ResolveGuessOutput struct {
	// Correct is true when the accused was the selected liar
	Correct bool

	// GuesserID is the guesser who made the accusation
	GuesserID string

	// AccusedID is the accused player
	AccusedID string

	// SelectedLiarID is the liar whose article was revealed
	SelectedLiarID string

	// SelectedArticle is the article that was revealed
	SelectedArticle string
}

// ClearGameInput contains parameters for clearing a guild's game
type ClearGameInput struct {
	// GuildID is the Discord server to clear
	GuildID string
}

// ClearGameOutput contains the result of clearing a game
type ClearGameOutput struct {
	// Cleared is true when a game existed and was removed
	Cleared bool
}

// GetGameByGuildInput contains parameters for looking up a guild's game
type GetGameByGuildInput struct {
	GuildID string
}

// GetGameByGuildOutput contains the result of looking up a guild's game
type GetGameByGuildOutput struct {
	Game *models.Game
}

// GetGameByPlayerInput contains parameters for looking up a player's game
type GetGameByPlayerInput struct {
	PlayerID string
}

// GetGameByPlayerOutput contains the result of looking up a player's game
type GetGameByPlayerOutput struct {
	Game *models.Game
}
