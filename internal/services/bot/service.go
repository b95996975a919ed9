package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
	"github.com/mcoot/blockgame-go/internal/services/scheduler"
)

const (
	// DefaultMaxPieces ends a bot game that would otherwise run forever
	DefaultMaxPieces = 1000
	// MaxBotIterations is a safety limit for the PlayGame loop
	MaxBotIterations = 100000
)

// Strategy names
const (
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

// DefaultStrategies returns the built-in strategies keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		StrategyRandom: NewRandomStrategy(rnd),
		StrategyGreedy: NewGreedyStrategy(DefaultWeights()),
	}
}

// Service plays whole games without a human at the keyboard
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// Strategies returns the registered strategy names in order
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plan turns a placement into runner commands for shape, ending in a hard drop
func Plan(shape *model.Shape, p Placement) []scheduler.Command {
	var cmds []scheduler.Command
	for i := 0; i < p.Rotations%model.NumRotations; i++ {
		cmds = append(cmds, scheduler.CommandRotate)
	}

	delta := p.Column - shape.Anchor.Column
	move := scheduler.CommandRight
	if delta < 0 {
		move = scheduler.CommandLeft
		delta = -delta
	}
	for i := 0; i < delta; i++ {
		cmds = append(cmds, move)
	}
	return append(cmds, scheduler.CommandDrop)
}

// PlayGame starts the runner's game and plays it with the named strategy until
// game over. A game still going after maxPieces shapes is ended.
func (s *Service) PlayGame(
	ctx context.Context,
	eng engine.EngineInterface,
	runner *scheduler.Runner,
	strategyName string,
	maxPieces int,
) (model.GameSummary, error) {
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return model.GameSummary{}, fmt.Errorf("unknown bot strategy: %s", strategyName)
	}
	if maxPieces <= 0 {
		maxPieces = DefaultMaxPieces
	}

	if err := runner.Start(); err != nil {
		return model.GameSummary{}, err
	}

	for i := 0; !eng.State().IsOver(); i++ {
		if i >= MaxBotIterations {
			return model.GameSummary{}, fmt.Errorf("bot exceeded %d iterations", MaxBotIterations)
		}
		if err := ctx.Err(); err != nil {
			return model.GameSummary{}, err
		}

		state := eng.State()
		if state.PiecesPlaced >= maxPieces {
			s.logger.Debug("piece limit reached", slog.Int("pieces", state.PiecesPlaced))
			if err := eng.EndGame(); err != nil {
				return model.GameSummary{}, err
			}
			break
		}

		cmds := []scheduler.Command{scheduler.CommandDrop}
		if placement, ok := strategy.ChoosePlacement(state); ok {
			cmds = Plan(state.FallingShape, placement)
		}
		for _, cmd := range cmds {
			if _, err := runner.Apply(cmd); err != nil {
				return model.GameSummary{}, err
			}
		}
	}

	summary := eng.State().Summary()
	s.logger.Info("bot game finished",
		slog.String("strategy", strategyName),
		slog.Int("score", summary.Score),
		slog.Int("lines", summary.LinesCleared),
		slog.Int("pieces", summary.PiecesPlaced),
	)
	return summary, nil
}
