package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/storage"
)

const (
	// ScoreIDLength is the length of generated score IDs
	ScoreIDLength = 12
	// ScoreIDAlphabet is the characters used in score IDs
	ScoreIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultLimit is the number of entries returned when no limit is given
	DefaultLimit = 10
	// MaxLimit caps the number of entries a single query can return
	MaxLimit = 100
	// MaxPlayerNameLength caps stored player names
	MaxPlayerNameLength = 32

	// AnonymousPlayer is recorded when no player name is given
	AnonymousPlayer = "anonymous"
)

// Service records finished games and serves the high-score tables
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new LeaderboardService
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Record stores the summary of a finished game for the named player
func (s *Service) Record(ctx context.Context, player string, summary model.GameSummary) (*model.ScoreRecord, error) {
	if _, err := model.ParseGameMode(string(summary.Mode)); err != nil {
		return nil, err
	}

	id, err := s.newID(ctx)
	if err != nil {
		return nil, err
	}

	record := &model.ScoreRecord{
		ID:           id,
		Player:       normalizePlayer(player),
		Mode:         summary.Mode,
		Score:        summary.Score,
		Level:        summary.Level,
		LinesCleared: summary.LinesCleared,
		PiecesPlaced: summary.PiecesPlaced,
		Duration:     summary.Duration(),
		CompletedAt:  s.clock.Now(),
	}

	if err := s.storage.SaveScore(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	s.logger.Info("score recorded",
		slog.String("score_id", string(record.ID)),
		slog.String("player", record.Player),
		slog.String("mode", string(record.Mode)),
		slog.Int("score", record.Score),
	)
	return record, nil
}

// Top returns the best scores for a mode. A limit of zero or less means DefaultLimit.
func (s *Service) Top(ctx context.Context, mode model.GameMode, limit int) ([]*model.ScoreRecord, error) {
	if _, err := model.ParseGameMode(string(mode)); err != nil {
		return nil, err
	}
	records, err := s.storage.TopScores(ctx, mode, ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*model.ScoreRecord{}
	}
	return records, nil
}

// Get returns a single recorded score
func (s *Service) Get(ctx context.Context, id model.ScoreID) (*model.ScoreRecord, error) {
	return s.storage.GetScore(ctx, id)
}

// Delete removes a recorded score. Unknown IDs return ErrScoreNotFound.
func (s *Service) Delete(ctx context.Context, id model.ScoreID) error {
	record, err := s.storage.GetScore(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteScore(ctx, id); err != nil {
		return err
	}
	s.logger.Info("score deleted",
		slog.String("score_id", string(id)),
		slog.String("player", record.Player),
	)
	return nil
}

func (s *Service) newID(ctx context.Context) (model.ScoreID, error) {
	for {
		id := model.ScoreID(s.random.String(ScoreIDLength, ScoreIDAlphabet))
		_, err := s.storage.GetScore(ctx, id)
		if errors.Is(err, model.ErrScoreNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// ClampLimit maps a requested limit into [1, MaxLimit]
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

func normalizePlayer(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousPlayer
	}
	if r := []rune(name); len(r) > MaxPlayerNameLength {
		name = string(r[:MaxPlayerNameLength])
	}
	return name
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, player string, summary model.GameSummary) (*model.ScoreRecord, error)
	Top(ctx context.Context, mode model.GameMode, limit int) ([]*model.ScoreRecord, error)
	Get(ctx context.Context, id model.ScoreID) (*model.ScoreRecord, error)
	Delete(ctx context.Context, id model.ScoreID) error
}

var _ ServiceInterface = (*Service)(nil)
