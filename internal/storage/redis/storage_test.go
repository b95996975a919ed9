package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blockgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) save(id string, mode model.GameMode, score int) {
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.ScoreRecord{
		ID:     model.ScoreID(id),
		Player: "alice",
		Mode:   mode,
		Score:  score,
	}))
}

func (s *StorageSuite) TestSaveAndGetScore() {
	completed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	record := &model.ScoreRecord{
		ID:           "score-1",
		Player:       "alice",
		Mode:         model.ModeClassic,
		Score:        1200,
		Level:        3,
		LinesCleared: 22,
		PiecesPlaced: 61,
		Duration:     90 * time.Second,
		CompletedAt:  completed,
	}

	err := s.storage.SaveScore(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetScore(s.ctx, "score-1")
	s.Require().NoError(err)
	s.Equal(record.Player, retrieved.Player)
	s.Equal(record.Score, retrieved.Score)
	s.Equal(record.Duration, retrieved.Duration)
	s.True(completed.Equal(retrieved.CompletedAt))
}

func (s *StorageSuite) TestGetScoreNotFound() {
	_, err := s.storage.GetScore(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestSaveScoreIndexesByMode() {
	s.save("score-1", model.ModeTimed, 400)

	s.True(s.mini.Exists(scoreKey("score-1")))
	members, err := s.mini.ZMembers(leaderboardKey(model.ModeTimed))
	s.Require().NoError(err)
	s.Equal([]string{"score-1"}, members)
	s.False(s.mini.Exists(leaderboardKey(model.ModeClassic)))
}

func (s *StorageSuite) TestDeleteScoreRemovesIndexEntry() {
	s.save("score-1", model.ModeClassic, 100)

	err := s.storage.DeleteScore(s.ctx, "score-1")
	s.Require().NoError(err)

	_, err = s.storage.GetScore(s.ctx, "score-1")
	s.ErrorIs(err, model.ErrScoreNotFound)
	s.False(s.mini.Exists(leaderboardKey(model.ModeClassic)))

	s.NoError(s.storage.DeleteScore(s.ctx, "score-1"))
}

func (s *StorageSuite) TestTopScoresOrdering() {
	s.save("a", model.ModeClassic, 300)
	s.save("b", model.ModeClassic, 900)
	s.save("c", model.ModeClassic, 300)
	s.save("d", model.ModeTimed, 5000)

	records, err := s.storage.TopScores(s.ctx, model.ModeClassic, 10)
	s.Require().NoError(err)

	s.Require().Len(records, 3)
	s.Equal(model.ScoreID("b"), records[0].ID)
	s.Equal(model.ScoreID("c"), records[1].ID)
	s.Equal(model.ScoreID("a"), records[2].ID)
}

func (s *StorageSuite) TestTopScoresLimit() {
	for i, id := range []string{"a", "b", "c", "d"} {
		s.save(id, model.ModeTimed, i*100)
	}

	records, err := s.storage.TopScores(s.ctx, model.ModeTimed, 2)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(300, records[0].Score)
	s.Equal(200, records[1].Score)

	records, err = s.storage.TopScores(s.ctx, model.ModeTimed, 0)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *StorageSuite) TestTopScoresDropsExpiredRecords() {
	cfg := DefaultConfig()
	cfg.ScoreTTL = time.Minute
	s.storage = NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)

	s.save("old", model.ModeClassic, 900)
	s.mini.FastForward(2 * time.Minute)
	s.save("new", model.ModeClassic, 100)

	records, err := s.storage.TopScores(s.ctx, model.ModeClassic, 10)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.ScoreID("new"), records[0].ID)

	members, err := s.mini.ZMembers(leaderboardKey(model.ModeClassic))
	s.Require().NoError(err)
	s.Equal([]string{"new"}, members)
}
