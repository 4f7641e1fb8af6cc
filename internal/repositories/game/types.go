package game

import "github.com/KirkDiggler/totpal/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByGuildInput contains parameters for retrieving a guild's game
type GetGameByGuildInput struct {
	GuildID string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	Game *models.Game
}
