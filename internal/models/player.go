package models

// Player represents a Discord user tracked by the bot
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// CurrentGameID is the ID of the game the player is currently in.
	// Empty when the player is free.
	CurrentGameID string
}
