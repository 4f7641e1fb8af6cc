package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/totpal/internal/common/clock"
	"github.com/KirkDiggler/totpal/internal/common/uuid"
	"github.com/KirkDiggler/totpal/internal/models"
	"github.com/KirkDiggler/totpal/internal/picker"
	gameRepo "github.com/KirkDiggler/totpal/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/totpal/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	picker     picker.Picker
	clock      clock.Clock
	uuid       uuid.UUID

	// mu serializes every operation. Discordgo dispatches handlers on
	// separate goroutines, and create/clear touch the game and player
	// stores together; the lock keeps the two in lockstep so a lookup
	// never sees one updated without the other.
	mu sync.Mutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		playerRepo: cfg.PlayerRepo,
		picker:     cfg.Picker,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
	}, nil
}

// StartGame creates a new game in a guild with one guesser and at least
// three liars
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.Guesser == nil {
		return nil, errors.New("input and guesser cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(input.Liars) < MinLiars {
		return nil, ErrNotEnoughPlayers
	}

	// Only one game can be active in a guild at a time
	existing, err := s.gameRepo.GetGameByGuild(ctx, &gameRepo.GetGameByGuildInput{
		GuildID: input.GuildID,
	})
	if err == nil && existing != nil {
		return nil, ErrGameInProgress
	}
	if err != nil && !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, err
	}

	// No mentioned player may already be in a game, here or in any other
	// guild. A user mentioned twice counts as busy too.
	mentioned := append([]*PlayerInput{input.Guesser}, input.Liars...)
	seen := make(map[string]bool, len(mentioned))
	for _, m := range mentioned {
		if seen[m.ID] {
			return nil, ErrPlayerBusy
		}
		seen[m.ID] = true

		p, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: m.ID,
		})
		if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, err
		}
		if err == nil && p.CurrentGameID != "" {
			return nil, ErrPlayerBusy
		}
	}

	now := s.clock.Now()

	game := &models.Game{
		ID:        s.uuid.NewUUID(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		GuesserID: input.Guesser.ID,
		Articles:  make(map[string]string, len(input.Liars)),
		Phase:     models.GamePhaseCollecting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, liar := range input.Liars {
		game.LiarIDs = append(game.LiarIDs, liar.ID)
		game.Articles[liar.ID] = ""
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	for _, m := range mentioned {
		err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
			Player: &models.Player{
				ID:            m.ID,
				Name:          m.Name,
				CurrentGameID: game.ID,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return &StartGameOutput{Game: game}, nil
}

// SubmitArticle records a liar's article and triggers the reveal once every
// liar has submitted
func (s *service) SubmitArticle(ctx context.Context, input *SubmitArticleInput) (*SubmitArticleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.gameForPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	// Only liars hold submission slots; a DM from the guesser is stray
	if !game.HasLiar(input.PlayerID) {
		return nil, ErrPlayerNotInGame
	}

	// Late deliveries after the reveal are ignored
	if game.Phase.IsRevealed() {
		return &SubmitArticleOutput{Game: game}, nil
	}

	if input.Article == "" {
		return &SubmitArticleOutput{Game: game}, nil
	}

	// First writer wins on duplicate text
	for liarID, article := range game.Articles {
		if liarID != input.PlayerID && article != "" && article == input.Article {
			return nil, ErrDuplicateArticle
		}
	}

	// Resubmission overwrites the liar's own slot
	game.Articles[input.PlayerID] = input.Article
	game.UpdatedAt = s.clock.Now()

	revealed := false
	if game.SubmittedCount() == len(game.LiarIDs) {
		idx := s.picker.PickIndex(len(game.LiarIDs))
		game.SelectedLiarID = game.LiarIDs[idx]
		game.SelectedArticle = game.Articles[game.SelectedLiarID]
		game.Phase = models.GamePhaseRevealed
		revealed = true
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	return &SubmitArticleOutput{
		Accepted: true,
		Revealed: revealed,
		Game:     game,
	}, nil
}

// ResolveGuess compares the guesser's accusation against the selected liar
// and tears the game down regardless of the outcome
func (s *service) ResolveGuess(ctx context.Context, input *ResolveGuessInput) (*ResolveGuessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.gameForPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if game.GuesserID != input.PlayerID {
		return nil, ErrNotGuesser
	}

	if !game.Phase.IsRevealed() {
		return nil, ErrGameNotRevealed
	}

	output := &ResolveGuessOutput{
		Correct:         input.AccusedID == game.SelectedLiarID,
		GuesserID:       game.GuesserID,
		AccusedID:       input.AccusedID,
		SelectedLiarID:  game.SelectedLiarID,
		SelectedArticle: game.SelectedArticle,
	}

	if err := s.removeGame(ctx, game); err != nil {
		return nil, err
	}

	return output, nil
}

// ClearGame removes a guild's game and frees its players. Clearing a guild
// with no game is a no-op.
func (s *service) ClearGame(ctx context.Context, input *ClearGameInput) (*ClearGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.gameRepo.GetGameByGuild(ctx, &gameRepo.GetGameByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return &ClearGameOutput{Cleared: false}, nil
		}
		return nil, err
	}

	if err := s.removeGame(ctx, game); err != nil {
		return nil, err
	}

	return &ClearGameOutput{Cleared: true}, nil
}

// GetGameByGuild returns the active game for a guild
func (s *service) GetGameByGuild(ctx context.Context, input *GetGameByGuildInput) (*GetGameByGuildOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.gameRepo.GetGameByGuild(ctx, &gameRepo.GetGameByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return &GetGameByGuildOutput{Game: game}, nil
}

// GetGameByPlayer returns the game a player is currently in
func (s *service) GetGameByPlayer(ctx context.Context, input *GetGameByPlayerInput) (*GetGameByPlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.gameForPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetGameByPlayerOutput{Game: game}, nil
}

// gameForPlayer resolves a player ID to their current game. Callers must
// hold s.mu.
func (s *service) gameForPlayer(ctx context.Context, playerID string) (*models.Game, error) {
	p, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotInGame
		}
		return nil, err
	}
	if p.CurrentGameID == "" {
		return nil, ErrPlayerNotInGame
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: p.CurrentGameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrPlayerNotInGame
		}
		return nil, err
	}

	return game, nil
}

// removeGame frees every participant and deletes the game. Callers must
// hold s.mu.
func (s *service) removeGame(ctx context.Context, game *models.Game) error {
	for _, playerID := range game.PlayerIDs() {
		err := s.playerRepo.UpdatePlayerGame(ctx, &playerRepo.UpdatePlayerGameInput{
			PlayerID: playerID,
			GameID:   "",
		})
		if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return err
		}
	}

	return s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{Game: game})
}
