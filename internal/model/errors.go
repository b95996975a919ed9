package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")

	// Engine errors
	ErrGameNotStarted = errors.New("game has not been started")
	ErrGameOver       = errors.New("game is over")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidMode   = errors.New("invalid game mode")

	// Leaderboard errors
	ErrScoreNotFound = errors.New("score not found")
	ErrInvalidScore  = errors.New("invalid score submission")
)
