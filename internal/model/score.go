package model

import "time"

// ScoreID uniquely identifies a recorded score
type ScoreID string

// ScoreRecord is a finished game stored on the leaderboard
type ScoreRecord struct {
	ID           ScoreID
	Player       string
	Mode         GameMode
	Score        int
	Level        int
	LinesCleared int
	PiecesPlaced int
	Duration     time.Duration
	CompletedAt  time.Time
}
