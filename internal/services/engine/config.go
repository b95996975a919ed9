package engine

import (
	"fmt"

	"github.com/mcoot/blockgame-go/internal/model"
)

// Config holds board geometry and session settings for an Engine
type Config struct {
	Width  int
	Height int

	// Spawn anchor for new falling shapes. A negative SpawnColumn centres the
	// shape on the board.
	SpawnColumn int
	SpawnRow    int

	// Mode is recorded on the game state; timed-mode countdowns belong to the scheduler
	Mode model.GameMode

	// StartingLayout is placed on every fresh board before the first shape spawns
	StartingLayout []model.Block
}

// DefaultConfig returns a standard 10x20 classic game
func DefaultConfig() Config {
	return Config{
		Width:       model.DefaultBoardWidth,
		Height:      model.DefaultBoardHeight,
		SpawnColumn: -1,
		SpawnRow:    0,
		Mode:        model.ModeClassic,
	}
}

// Validate checks that a shape can spawn on the configured board
func (c Config) Validate() error {
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("board must be at least 4x4, got %dx%d: %w", c.Width, c.Height, model.ErrInvalidConfig)
	}
	if c.SpawnColumn >= c.Width || c.SpawnRow < 0 || c.SpawnRow >= c.Height {
		return fmt.Errorf("spawn (%d,%d) outside board: %w", c.SpawnColumn, c.SpawnRow, model.ErrInvalidConfig)
	}
	if _, err := model.ParseGameMode(string(c.Mode)); err != nil {
		return err
	}
	return c.validateLayout()
}

// validateLayout checks the starting blocks fit the board without overlapping
// and leave no row complete
func (c Config) validateLayout() error {
	if len(c.StartingLayout) == 0 {
		return nil
	}
	board := model.NewBoard(c.Width, c.Height)
	for _, b := range c.StartingLayout {
		if b.Column() < 0 || b.Column() >= c.Width || b.Row() < 0 || b.Row() >= c.Height {
			return fmt.Errorf("starting block at %s outside board: %w", b.Coordinate, model.ErrInvalidConfig)
		}
		if err := board.Place(b); err != nil {
			return fmt.Errorf("starting block at %s overlaps another: %w", b.Coordinate, model.ErrInvalidConfig)
		}
	}
	for row := 0; row < c.Height; row++ {
		if board.IsRowComplete(row) {
			return fmt.Errorf("starting layout fills row %d: %w", row, model.ErrInvalidConfig)
		}
	}
	return nil
}

// SpawnCoordinate returns the anchor at which new shapes appear
func (c Config) SpawnCoordinate() model.Coordinate {
	col := c.SpawnColumn
	if col < 0 {
		col = c.Width/2 - 1
	}
	return model.Coordinate{Column: col, Row: c.SpawnRow}
}
