package storage

import (
	"context"

	"github.com/mcoot/blockgame-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Score operations
	SaveScore(ctx context.Context, record *model.ScoreRecord) error
	GetScore(ctx context.Context, id model.ScoreID) (*model.ScoreRecord, error)
	DeleteScore(ctx context.Context, id model.ScoreID) error

	// TopScores returns up to limit records for a mode, highest score first.
	// Equal scores are ordered by ID, descending.
	TopScores(ctx context.Context, mode model.GameMode, limit int) ([]*model.ScoreRecord, error)
}
