package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) save(id string, mode model.GameMode, score int) {
	s.Require().NoError(s.storage.SaveScore(s.ctx, &model.ScoreRecord{
		ID:          model.ScoreID(id),
		Player:      "alice",
		Mode:        mode,
		Score:       score,
		CompletedAt: time.Now(),
	}))
}

func (s *StorageSuite) TestSaveAndGetScore() {
	record := &model.ScoreRecord{
		ID:           "score-1",
		Player:       "alice",
		Mode:         model.ModeClassic,
		Score:        1200,
		Level:        3,
		LinesCleared: 22,
		Duration:     90 * time.Second,
	}

	err := s.storage.SaveScore(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetScore(s.ctx, "score-1")
	s.Require().NoError(err)
	s.Equal(*record, *retrieved)
}

func (s *StorageSuite) TestSavedRecordIsCopied() {
	record := &model.ScoreRecord{ID: "score-1", Mode: model.ModeClassic, Score: 100}
	s.Require().NoError(s.storage.SaveScore(s.ctx, record))
	record.Score = 999

	retrieved, err := s.storage.GetScore(s.ctx, "score-1")
	s.Require().NoError(err)
	s.Equal(100, retrieved.Score)
}

func (s *StorageSuite) TestGetScoreNotFound() {
	_, err := s.storage.GetScore(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestDeleteScore() {
	s.save("score-1", model.ModeClassic, 100)

	err := s.storage.DeleteScore(s.ctx, "score-1")
	s.Require().NoError(err)

	_, err = s.storage.GetScore(s.ctx, "score-1")
	s.ErrorIs(err, model.ErrScoreNotFound)
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

func (s *StorageSuite) TestTopScoresEmptyMode() {
	records, err := s.storage.TopScores(s.ctx, model.ModeClassic, 10)
	s.Require().NoError(err)
	s.Empty(records)
}
