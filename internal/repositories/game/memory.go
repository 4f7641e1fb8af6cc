package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/totpal/internal/models"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// memoryRepository implements the Repository interface with in-process maps.
// This is the default backend; all state is lost when the process exits.
type memoryRepository struct {
	mu      sync.RWMutex
	games   map[string]*models.Game // game ID -> game
	byGuild map[string]string       // guild ID -> game ID
}

// NewMemory creates a new in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games:   make(map[string]*models.Game),
		byGuild: make(map[string]string),
	}
}

// SaveGame stores a game and indexes it under its guild
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[input.Game.ID] = copyGame(input.Game)
	if input.Game.GuildID != "" {
		r.byGuild[input.Game.GuildID] = input.Game.ID
	}

	return nil
}

// GetGame retrieves a game by ID
func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return copyGame(game), nil
}

// GetGameByGuild retrieves the active game for a guild
func (r *memoryRepository) GetGameByGuild(ctx context.Context, input *GetGameByGuildInput) (*models.Game, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	gameID, ok := r.byGuild[input.GuildID]
	if !ok {
		return nil, ErrGameNotFound
	}

	game, ok := r.games[gameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	return copyGame(game), nil
}

// DeleteGame removes a game and its guild index entry
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, input.Game.ID)
	if r.byGuild[input.Game.GuildID] == input.Game.ID {
		delete(r.byGuild, input.Game.GuildID)
	}

	return nil
}

// copyGame returns a deep copy so callers never alias the stored game
func copyGame(g *models.Game) *models.Game {
	clone := *g
	clone.LiarIDs = append([]string(nil), g.LiarIDs...)
	clone.Articles = make(map[string]string, len(g.Articles))
	for k, v := range g.Articles {
		clone.Articles[k] = v
	}
	return &clone
}
