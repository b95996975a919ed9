package model

import (
	"fmt"
	"time"
)

// Phase is the engine's position in the spawn/fall/lock cycle
type Phase string

const (
	PhaseIdle         Phase = "idle"          // No game begun yet
	PhaseSpawning     Phase = "spawning"      // Promoting the next shape
	PhaseFalling      Phase = "falling"       // A shape is under player control
	PhaseLocking      Phase = "locking"       // Falling shape is being committed to the board
	PhaseLineClearing Phase = "line_clearing" // Completed rows are being removed
	PhaseGameOver     Phase = "game_over"     // Terminal
)

// GameMode selects how a session ends
type GameMode string

const (
	ModeClassic GameMode = "classic" // Ends when the board fills
	ModeTimed   GameMode = "timed"   // Also ends when the scheduler's time limit runs out
)

// ParseGameMode validates a mode name
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeClassic, ModeTimed:
		return GameMode(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidMode)
	}
}

// ValidGameModes returns all valid mode names
func ValidGameModes() []GameMode {
	return []GameMode{ModeClassic, ModeTimed}
}

// GameState is the state of a single game session
type GameState struct {
	Board        *Board
	FallingShape *Shape // nil outside the falling phase
	NextShape    *Shape // Preview shape
	Phase        Phase
	Mode         GameMode

	// Progress
	Score             int
	Level             int
	TotalLinesCleared int
	PiecesPlaced      int
	TickInterval      time.Duration

	// Timing
	StartedAt time.Time
	EndedAt   time.Time
}

// TickIntervalMillis returns the current tick interval in milliseconds
func (s *GameState) TickIntervalMillis() int {
	return int(s.TickInterval / time.Millisecond)
}

// IsOver returns true once the game has reached its terminal phase
func (s *GameState) IsOver() bool {
	return s.Phase == PhaseGameOver
}

// Summary returns the final figures of the session
func (s *GameState) Summary() GameSummary {
	return GameSummary{
		Mode:         s.Mode,
		Score:        s.Score,
		Level:        s.Level,
		LinesCleared: s.TotalLinesCleared,
		PiecesPlaced: s.PiecesPlaced,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
	}
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	Mode         GameMode
	Score        int
	Level        int
	LinesCleared int
	PiecesPlaced int
	StartedAt    time.Time
	EndedAt      time.Time
}

// Duration returns how long the game lasted
func (s GameSummary) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
