package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
)

// recordTimeout bounds how long a finished game waits on storage
const recordTimeout = 5 * time.Second

// Recorder is an engine event sink that stores every finished game
type Recorder struct {
	engine.NopSink

	service ServiceInterface
	player  string
	logger  *slog.Logger

	last *model.ScoreRecord
}

var _ engine.EventSink = (*Recorder)(nil)

// NewRecorder creates a Recorder that files games under player
func NewRecorder(service ServiceInterface, player string, logger *slog.Logger) *Recorder {
	return &Recorder{
		service: service,
		player:  player,
		logger:  logger,
	}
}

// GameDidEnd stores the summary. Failures are logged; the game is already over.
func (r *Recorder) GameDidEnd(summary model.GameSummary) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	record, err := r.service.Record(ctx, r.player, summary)
	if err != nil {
		r.logger.Error("failed to record score",
			slog.String("player", r.player),
			slog.Int("score", summary.Score),
			slog.String("error", err.Error()),
		)
		return
	}
	r.last = record
}

// Last returns the most recently stored record, or nil
func (r *Recorder) Last() *model.ScoreRecord {
	return r.last
}
