package request

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mcoot/blockgame-go/internal/model"
)

// MaxDurationMs bounds a submitted game's length to one day
const MaxDurationMs = int64(24 * time.Hour / time.Millisecond)

// SubmitScoreRequest is the request body for recording a finished game
type SubmitScoreRequest struct {
	Player       string `json:"player"`
	Mode         string `json:"mode"`
	Score        int    `json:"score"`
	Level        int    `json:"level"`
	LinesCleared int    `json:"lines_cleared"`
	PiecesPlaced int    `json:"pieces_placed"`
	DurationMs   int64  `json:"duration_ms"`
}

// SubmitScoreFromSummary builds a request from a finished game
func SubmitScoreFromSummary(player string, summary model.GameSummary) SubmitScoreRequest {
	return SubmitScoreRequest{
		Player:       player,
		Mode:         string(summary.Mode),
		Score:        summary.Score,
		Level:        summary.Level,
		LinesCleared: summary.LinesCleared,
		PiecesPlaced: summary.PiecesPlaced,
		DurationMs:   summary.Duration().Milliseconds(),
	}
}

// Summary validates the request and converts it to a game summary ending at end
func (r SubmitScoreRequest) Summary(end time.Time) (model.GameSummary, error) {
	mode, err := model.ParseGameMode(r.Mode)
	if err != nil {
		return model.GameSummary{}, err
	}
	if r.Score < 0 || r.LinesCleared < 0 || r.PiecesPlaced < 0 || r.DurationMs < 0 {
		return model.GameSummary{}, fmt.Errorf("%w: counts must not be negative", model.ErrInvalidScore)
	}
	if r.Level < 1 {
		return model.GameSummary{}, fmt.Errorf("%w: level must be at least 1", model.ErrInvalidScore)
	}
	if r.DurationMs > MaxDurationMs {
		return model.GameSummary{}, fmt.Errorf("%w: duration must be at most %d ms", model.ErrInvalidScore, MaxDurationMs)
	}
	return model.GameSummary{
		Mode:         mode,
		Score:        r.Score,
		Level:        r.Level,
		LinesCleared: r.LinesCleared,
		PiecesPlaced: r.PiecesPlaced,
		StartedAt:    end.Add(-time.Duration(r.DurationMs) * time.Millisecond),
		EndedAt:      end,
	}, nil
}

// ScoreQuery holds the query parameters of the high-score table
type ScoreQuery struct {
	Mode  model.GameMode
	Limit int
}

// ParseScoreQuery reads ?mode= and ?limit=. Mode defaults to classic and a
// missing limit is returned as zero.
func ParseScoreQuery(r *http.Request) (ScoreQuery, error) {
	q := ScoreQuery{Mode: model.ModeClassic}

	if raw := r.URL.Query().Get("mode"); raw != "" {
		mode, err := model.ParseGameMode(raw)
		if err != nil {
			return ScoreQuery{}, err
		}
		q.Mode = mode
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return ScoreQuery{}, fmt.Errorf("limit must be a non-negative integer")
		}
		q.Limit = limit
	}
	return q, nil
}
