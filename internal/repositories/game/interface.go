package game

import (
	"context"

	"github.com/KirkDiggler/totpal/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/totpal/internal/repositories/game Repository

// Repository defines the interface for game persistence. A guild maps to at
// most one game; SaveGame and DeleteGame keep the guild index in step with
// the game record.
type Repository interface {
	// SaveGame persists a game and indexes it under its guild
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByGuild retrieves the active game for a guild
	GetGameByGuild(ctx context.Context, input *GetGameByGuildInput) (*models.Game, error)

	// DeleteGame removes a game and its guild index entry
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
