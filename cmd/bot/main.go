package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/totpal/internal/common/clock"
	"github.com/KirkDiggler/totpal/internal/common/uuid"
	"github.com/KirkDiggler/totpal/internal/handlers/discord"
	"github.com/KirkDiggler/totpal/internal/picker"
	gameRepo "github.com/KirkDiggler/totpal/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/totpal/internal/repositories/player"
	gameService "github.com/KirkDiggler/totpal/internal/services/game"
	"github.com/KirkDiggler/totpal/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
)

// config is loaded from the environment (and .env when present)
type config struct {
	// DiscordToken is the bot token
	DiscordToken string `envconfig:"DISCORD_TOKEN" required:"true"`

	// RedisAddr selects the Redis-backed stores when set. When empty the
	// bot keeps all game state in memory.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	// RedisPassword is the optional Redis password
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
}

func main() {
	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repositories
	var (
		games   gameRepo.Repository
		players playerRepo.Repository
	)

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		var err error
		games, err = gameRepo.NewRedis(&gameRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create game repository: %v", err)
		}

		players, err = playerRepo.NewRedis(&playerRepo.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create player repository: %v", err)
		}
	} else {
		games = gameRepo.NewMemory()
		players = playerRepo.NewMemory()
	}

	// Initialize the game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      games,
		PlayerRepo:    players,
		Picker:        picker.New(&picker.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize the messaging service
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		CommandPrefix: discord.CommandPrefix,
		GuessPrefix:   discord.GuessPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		GameService:      gameSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
