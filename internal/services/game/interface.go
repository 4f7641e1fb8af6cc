package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// StartGame creates a new game in a guild with one guesser and at
	// least three liars
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitArticle records a liar's article and triggers the reveal once
	// every liar has submitted
	SubmitArticle(ctx context.Context, input *SubmitArticleInput) (*SubmitArticleOutput, error)

	// ResolveGuess compares the guesser's accusation against the selected
	// liar and tears the game down
	ResolveGuess(ctx context.Context, input *ResolveGuessInput) (*ResolveGuessOutput, error)

	// ClearGame removes a guild's game and frees its players
	ClearGame(ctx context.Context, input *ClearGameInput) (*ClearGameOutput, error)

	// GetGameByGuild returns the active game for a guild
	GetGameByGuild(ctx context.Context, input *GetGameByGuildInput) (*GetGameByGuildOutput, error)

	// GetGameByPlayer returns the game a player is currently in
	GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*GetGameByPlayerOutput, error)
}
