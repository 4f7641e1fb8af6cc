package player

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/totpal/internal/models"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// memoryRepository implements the Repository interface with an in-process map
type memoryRepository struct {
	mu      sync.RWMutex
	players map[string]*models.Player
}

// NewMemory creates a new in-memory player repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		players: make(map[string]*models.Player),
	}
}

// SavePlayer stores a player
func (r *memoryRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *input.Player
	r.players[input.Player.ID] = &clone

	return nil
}

// GetPlayer retrieves a player by ID
func (r *memoryRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[input.PlayerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	clone := *p
	return &clone, nil
}

// UpdatePlayerGame updates a player's current game
func (r *memoryRepository) UpdatePlayerGame(ctx context.Context, input *UpdatePlayerGameInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[input.PlayerID]
	if !ok {
		return ErrPlayerNotFound
	}

	p.CurrentGameID = input.GameID

	return nil
}
