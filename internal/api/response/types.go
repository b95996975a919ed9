package response

import (
	"time"

	"github.com/mcoot/blockgame-go/internal/model"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}

// Score represents a recorded game in API responses
type Score struct {
	ID           string    `json:"id"`
	Player       string    `json:"player"`
	Mode         string    `json:"mode"`
	Score        int       `json:"score"`
	Level        int       `json:"level"`
	LinesCleared int       `json:"lines_cleared"`
	PiecesPlaced int       `json:"pieces_placed"`
	DurationMs   int64     `json:"duration_ms"`
	CompletedAt  time.Time `json:"completed_at"`
}

// ScoreFromModel converts a model.ScoreRecord to a response Score
func ScoreFromModel(r *model.ScoreRecord) Score {
	return Score{
		ID:           string(r.ID),
		Player:       r.Player,
		Mode:         string(r.Mode),
		Score:        r.Score,
		Level:        r.Level,
		LinesCleared: r.LinesCleared,
		PiecesPlaced: r.PiecesPlaced,
		DurationMs:   r.Duration.Milliseconds(),
		CompletedAt:  r.CompletedAt,
	}
}

// ScoreList is the response for the high-score table
type ScoreList struct {
	Mode   string  `json:"mode"`
	Scores []Score `json:"scores"`
}

// ScoreListFromModel converts a ranked slice of records
func ScoreListFromModel(mode model.GameMode, records []*model.ScoreRecord) ScoreList {
	scores := make([]Score, len(records))
	for i, r := range records {
		scores[i] = ScoreFromModel(r)
	}
	return ScoreList{Mode: string(mode), Scores: scores}
}
