package player

import (
	"context"

	"github.com/KirkDiggler/totpal/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/totpal/internal/repositories/player Repository

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// UpdatePlayerGame updates a player's current game. An empty game ID
	// frees the player.
	UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error
}
