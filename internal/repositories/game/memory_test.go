package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/totpal/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.testNow = time.Date(2025, 6, 12, 20, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestSaveGetDeleteRoundTrip() {
	game := &models.Game{
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

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	byID, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Equal("test-guild-id", byID.GuildID)

	byGuild, err := s.repo.GetGameByGuild(context.Background(), &GetGameByGuildInput{GuildID: "test-guild-id"})
	s.Require().NoError(err)
	s.Equal("test-game-id", byGuild.ID)

	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{Game: game})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().ErrorIs(err, ErrGameNotFound)

	_, err = s.repo.GetGameByGuild(context.Background(), &GetGameByGuildInput{GuildID: "test-guild-id"})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *MemoryRepositoryTestSuite) TestGetGameReturnsCopy() {
	game := &models.Game{
		ID:      "test-game-id",
		GuildID: "test-guild-id",
		LiarIDs: []string{"liar-1", "liar-2", "liar-3"},
		Articles: map[string]string{
			"liar-1": "",
			"liar-2": "",
			"liar-3": "",
		},
		Phase: models.GamePhaseCollecting,
	}

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	first, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)

	// Mutating the returned game must not leak into the stored copy
	first.Articles["liar-1"] = "Exploding Whale"
	first.Phase = models.GamePhaseRevealed

	second, err := s.repo.GetGame(context.Background(), &GetGameInput{GameID: "test-game-id"})
	s.Require().NoError(err)
	s.Equal("", second.Articles["liar-1"])
	s.Equal(models.GamePhaseCollecting, second.Phase)
}
