package models

import (
	"time"
)

// GamePhase represents the current state of a game
type GamePhase string

const (
	// GamePhaseCollecting indicates the bot is still collecting articles from liars
	GamePhaseCollecting GamePhase = "collecting"

	// GamePhaseRevealed indicates an article has been selected and announced
	GamePhaseRevealed GamePhase = "revealed"
)

// IsCollecting returns true while article submissions are still open
func (p GamePhase) IsCollecting() bool {
	return p == GamePhaseCollecting
}

// IsRevealed returns true once the article has been announced
func (p GamePhase) IsRevealed() bool {
	return p == GamePhaseRevealed
}

// Game represents one round of the liar-guessing game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// GuildID is the Discord server the game is bound to
	GuildID string

	// ChannelID is the Discord channel where the game was started
	ChannelID string

	// GuesserID is the Discord user ID of the guesser
	GuesserID string

	// LiarIDs contains the Discord user IDs of the liars, in mention order
	LiarIDs []string

	// Articles maps each liar ID to their submitted article title.
	// An empty string means the liar has not submitted yet.
	Articles map[string]string

	// Phase is the current state of the game
	Phase GamePhase

	// SelectedLiarID is the liar whose article was chosen. Empty until revealed.
	SelectedLiarID string

	// SelectedArticle is the chosen article title. Empty until revealed.
	SelectedArticle string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// HasLiar returns true if the given player is one of the game's liars
func (g *Game) HasLiar(playerID string) bool {
	for _, id := range g.LiarIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// SubmittedCount returns the number of liars holding a non-empty article
func (g *Game) SubmittedCount() int {
	count := 0
	for _, id := range g.LiarIDs {
		if g.Articles[id] != "" {
			count++
		}
	}
	return count
}

// PlayerIDs returns every participant in the game, guesser first
func (g *Game) PlayerIDs() []string {
	ids := make([]string, 0, len(g.LiarIDs)+1)
	ids = append(ids, g.GuesserID)
	ids = append(ids, g.LiarIDs...)
	return ids
}
