package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	scores map[model.ScoreID]*model.ScoreRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		scores: make(map[model.ScoreID]*model.ScoreRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveScore(ctx context.Context, record *model.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *record
	s.scores[record.ID] = &stored
	return nil
}

func (s *Storage) GetScore(ctx context.Context, id model.ScoreID) (*model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.scores[id]
	if !ok {
		return nil, model.ErrScoreNotFound
	}
	result := *record
	return &result, nil
}

func (s *Storage) DeleteScore(ctx context.Context, id model.ScoreID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scores, id)
	return nil
}

func (s *Storage) TopScores(ctx context.Context, mode model.GameMode, limit int) ([]*model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*model.ScoreRecord
	for _, record := range s.scores {
		if record.Mode != mode {
			continue
		}
		r := *record
		records = append(records, &r)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].ID > records[j].ID
	})

	if limit >= 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
