package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/totpal/internal/services/game"
	"github.com/KirkDiggler/totpal/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	// CommandPrefix starts a game or carries a flag
	CommandPrefix = "!totpal"

	// GuessPrefix submits the guesser's accusation
	GuessPrefix = "!guess"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	gameService      game.Service
	messagingService messaging.Service
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Game service
	GameService game.Service

	// Messaging service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// The bot reads plain text commands in guild channels and article
	// submissions in DMs
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:          session,
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	// Register the message handler
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}
