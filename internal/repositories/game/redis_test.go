package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/totpal/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 12, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testGame() *models.Game {
	return &models.Game{
		ID:        "test-game-id",
		GuildID:   "test-guild-id",
		ChannelID: "test-channel-id",
		GuesserID: "guesser-id",
		LiarIDs:   []string{"liar-1", "liar-2", "liar-3"},
		Articles: map[string]string{
			"liar-1": "",
			"liar-2": "",
			"liar-3": "",
		},
		Phase:     models.GamePhaseCollecting,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-game-id", retrieved.ID)
	s.Equal("test-guild-id", retrieved.GuildID)
	s.Equal("guesser-id", retrieved.GuesserID)
	s.Equal([]string{"liar-1", "liar-2", "liar-3"}, retrieved.LiarIDs)
	s.Equal(models.GamePhaseCollecting, retrieved.Phase)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "missing-game-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetGameByGuild() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGameByGuild(context.Background(), &GetGameByGuildInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Equal("test-game-id", retrieved.ID)

	_, err = s.repo.GetGameByGuild(context.Background(), &GetGameByGuildInput{
		GuildID: "other-guild-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveGameUpdatesExisting() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	game.Articles["liar-1"] = "Great Molasses Flood"
	game.Phase = models.GamePhaseRevealed
	game.SelectedLiarID = "liar-1"
	game.SelectedArticle = "Great Molasses Flood"

	err = s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Equal(models.GamePhaseRevealed, retrieved.Phase)
	s.Equal("liar-1", retrieved.SelectedLiarID)
	s.Equal("Great Molasses Flood", retrieved.SelectedArticle)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{
		GameID: "test-game-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)

	// The guild index entry is removed with the game
	_, err = s.repo.GetGameByGuild(context.Background(), &GetGameByGuildInput{
		GuildID: "test-guild-id",
	})
	s.Require().ErrorIs(err, ErrGameNotFound)
}
