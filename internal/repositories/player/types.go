package player

import "github.com/KirkDiggler/totpal/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// UpdatePlayerGameInput contains parameters for updating a player's game
type UpdatePlayerGameInput struct {
	PlayerID string
	GameID   string
}
