package scoring

import (
	"fmt"
	"time"

	"github.com/mcoot/blockgame-go/internal/model"
)

// Config holds the tunable point table, level threshold and tick-speed curve
type Config struct {
	// LinePoints[n] is the base award for clearing n lines at once; index 0 must be 0
	LinePoints []int
	// LinesPerLevel is the number of cleared lines needed for each level
	LinesPerLevel int

	// InitialTickInterval is the tick cadence at level 1
	InitialTickInterval time.Duration
	// CoarseTickStep is subtracted on level-up while the result stays at or above it
	CoarseTickStep time.Duration
	// FineTickStep is subtracted once the coarse step would overshoot
	FineTickStep time.Duration
	// TickFloor is the interval the curve never goes below
	TickFloor time.Duration
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		LinePoints:          []int{0, 100, 300, 500, 800},
		LinesPerLevel:       10,
		InitialTickInterval: 600 * time.Millisecond,
		CoarseTickStep:      100 * time.Millisecond,
		FineTickStep:        50 * time.Millisecond,
		TickFloor:           50 * time.Millisecond,
	}
}

// Validate checks the config is internally consistent
func (c Config) Validate() error {
	if len(c.LinePoints) < 2 || c.LinePoints[0] != 0 {
		return fmt.Errorf("line points must start at 0 and cover at least one line: %w", model.ErrInvalidConfig)
	}
	for n := 1; n < len(c.LinePoints); n++ {
		if c.LinePoints[n] <= c.LinePoints[n-1] {
			return fmt.Errorf("line points must be strictly increasing: %w", model.ErrInvalidConfig)
		}
		if n > 1 && c.LinePoints[n] <= n*c.LinePoints[1] {
			return fmt.Errorf("clearing %d lines must beat %d single clears: %w", n, n, model.ErrInvalidConfig)
		}
	}
	if c.LinesPerLevel <= 0 {
		return fmt.Errorf("lines per level must be positive: %w", model.ErrInvalidConfig)
	}
	if c.TickFloor <= 0 || c.InitialTickInterval < c.TickFloor {
		return fmt.Errorf("tick interval must be at least the floor and the floor positive: %w", model.ErrInvalidConfig)
	}
	if c.CoarseTickStep <= 0 || c.FineTickStep <= 0 {
		return fmt.Errorf("tick steps must be positive: %w", model.ErrInvalidConfig)
	}
	return nil
}

// LineClearOutcome describes the effect of one line clear on the game's progress
type LineClearOutcome struct {
	Points       int
	LevelsGained int
}

// Service applies the scoring policy to a game state
type Service struct {
	cfg Config
}

// New creates a new ScoringService
func New(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	points := make([]int, len(cfg.LinePoints))
	copy(points, cfg.LinePoints)
	cfg.LinePoints = points
	return &Service{cfg: cfg}, nil
}

// Config returns the active tuning
func (s *Service) Config() Config {
	return s.cfg
}

// InitialTickInterval returns the tick cadence for a new game
func (s *Service) InitialTickInterval() time.Duration {
	return s.cfg.InitialTickInterval
}

// BasePoints returns the award for clearing the given number of lines at level 1.
// Counts past the table extend it by its last increment.
func (s *Service) BasePoints(lines int) int {
	if lines <= 0 {
		return 0
	}
	last := len(s.cfg.LinePoints) - 1
	if lines <= last {
		return s.cfg.LinePoints[lines]
	}
	step := s.cfg.LinePoints[last] - s.cfg.LinePoints[last-1]
	return s.cfg.LinePoints[last] + (lines-last)*step
}

// PointsFor returns the award for clearing the given number of lines at a level
func (s *Service) PointsFor(lines, level int) int {
	if level < 1 {
		level = 1
	}
	return s.BasePoints(lines) * level
}

// LevelForLines returns the level reached after clearing the given total
func (s *Service) LevelForLines(totalLines int) int {
	if totalLines < 0 {
		totalLines = 0
	}
	return 1 + totalLines/s.cfg.LinesPerLevel
}

// NextTickInterval returns the tick interval after one level-up: the coarse
// step while the interval is at least that step, otherwise the fine step while
// above the floor. The result never increases and is clamped to the floor.
func (s *Service) NextTickInterval(current time.Duration) time.Duration {
	next := current
	switch {
	case current >= s.cfg.CoarseTickStep:
		next = current - s.cfg.CoarseTickStep
	case current > s.cfg.TickFloor:
		next = current - s.cfg.FineTickStep
	}
	if next < s.cfg.TickFloor {
		next = s.cfg.TickFloor
	}
	return next
}

// ApplyLineClear awards points for clearing lines, advances the level for
// every threshold crossed and steps the tick interval once per level gained.
func (s *Service) ApplyLineClear(state *model.GameState, lines int) LineClearOutcome {
	if lines <= 0 {
		return LineClearOutcome{}
	}

	points := s.PointsFor(lines, state.Level)
	state.Score += points
	state.TotalLinesCleared += lines

	gained := 0
	for target := s.LevelForLines(state.TotalLinesCleared); state.Level < target; {
		state.Level++
		state.TickInterval = s.NextTickInterval(state.TickInterval)
		gained++
	}

	return LineClearOutcome{Points: points, LevelsGained: gained}
}

// Interface for dependency injection
type ServiceInterface interface {
	InitialTickInterval() time.Duration
	PointsFor(lines, level int) int
	LevelForLines(totalLines int) int
	NextTickInterval(current time.Duration) time.Duration
	ApplyLineClear(state *model.GameState, lines int) LineClearOutcome
}

var _ ServiceInterface = (*Service)(nil)
