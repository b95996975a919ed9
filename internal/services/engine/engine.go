package engine

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/scoring"
)

// Engine runs a single game session. It is not safe for concurrent use; the
// scheduler serialises every command onto one goroutine.
type Engine struct {
	cfg     Config
	scoring scoring.ServiceInterface
	clock   clock.Clock
	random  random.Random
	sink    EventSink
	logger  *slog.Logger

	state *model.GameState
}

// New creates a new Engine. A nil sink is replaced with NopSink.
func New(
	cfg Config,
	scoringService scoring.ServiceInterface,
	clk clock.Clock,
	rnd random.Random,
	sink EventSink,
	logger *slog.Logger,
) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}
	layout := make([]model.Block, len(cfg.StartingLayout))
	copy(layout, cfg.StartingLayout)
	cfg.StartingLayout = layout

	return &Engine{
		cfg:     cfg,
		scoring: scoringService,
		clock:   clk,
		random:  rnd,
		sink:    sink,
		logger:  logger,
		state:   &model.GameState{Phase: model.PhaseIdle, Mode: cfg.Mode},
	}, nil
}

// Config returns the engine's configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the live game state. Callers must treat it as read-only.
func (e *Engine) State() *model.GameState {
	return e.state
}

// BeginGame replaces any previous session with a fresh one and spawns the first shape
func (e *Engine) BeginGame() error {
	board := model.NewBoard(e.cfg.Width, e.cfg.Height)
	for _, b := range e.cfg.StartingLayout {
		if err := board.Place(b); err != nil {
			return fmt.Errorf("failed to place starting layout: %w", err)
		}
	}

	e.state = &model.GameState{
		Board:        board,
		Phase:        model.PhaseSpawning,
		Mode:         e.cfg.Mode,
		Level:        1,
		TickInterval: e.scoring.InitialTickInterval(),
		StartedAt:    e.clock.Now(),
	}
	e.state.NextShape = e.randomShape()

	e.logger.Info("game began",
		slog.String("mode", string(e.state.Mode)),
		slog.Int("width", board.Width),
		slog.Int("height", board.Height),
	)

	// Consumers render the first falling shape from GameDidBegin, so promote it first
	spawned := e.promoteNext()
	e.sink.GameDidBegin(e.state)
	if !spawned {
		e.finish("spawn blocked")
	}
	return nil
}

// NewShape promotes the preview shape to the spawn point and picks a new
// preview. If the spawn point is blocked the game ends and falling is nil.
func (e *Engine) NewShape() (falling, next *model.Shape, err error) {
	if err := e.checkPlaying(); err != nil {
		return nil, nil, err
	}
	e.spawn()
	return e.state.FallingShape, e.state.NextShape, nil
}

// MoveShapeLeft shifts the falling shape one column left if the board allows it
func (e *Engine) MoveShapeLeft() error {
	return e.tryMove(
		func(s *model.Shape) { s.Translate(-1, 0) },
		func(s *model.Shape) { s.Translate(1, 0) },
	)
}

// MoveShapeRight shifts the falling shape one column right if the board allows it
func (e *Engine) MoveShapeRight() error {
	return e.tryMove(
		func(s *model.Shape) { s.Translate(1, 0) },
		func(s *model.Shape) { s.Translate(-1, 0) },
	)
}

// RotateShape rotates the falling shape clockwise if the board allows it
func (e *Engine) RotateShape() error {
	return e.tryMove((*model.Shape).Rotate, (*model.Shape).RotateBack)
}

// LetShapeFall advances the falling shape one row, locking it when it cannot move
func (e *Engine) LetShapeFall() error {
	if err := e.checkPlaying(); err != nil {
		return err
	}
	if e.state.FallingShape == nil {
		return nil
	}

	if e.fallOne() {
		e.sink.GameShapeDidMove(e.state)
		return nil
	}
	return e.settle()
}

// DropShape moves the falling shape straight to its resting row and locks it
func (e *Engine) DropShape() error {
	if err := e.checkPlaying(); err != nil {
		return err
	}
	if e.state.FallingShape == nil {
		return nil
	}

	e.sink.GameShapeDidDrop(e.state)

	moved := false
	for e.fallOne() {
		moved = true
	}
	if moved {
		e.sink.GameShapeDidMove(e.state)
	}
	return e.settle()
}

// RemoveCompletedLines clears any full rows and scores them
func (e *Engine) RemoveCompletedLines() (model.LineClearResult, error) {
	if err := e.checkPlaying(); err != nil {
		return model.LineClearResult{}, err
	}
	return e.clearLines(), nil
}

// RemoveAllBlocks empties the board and returns what was on it. It is also
// allowed once the game is over so the final board can be animated away.
func (e *Engine) RemoveAllBlocks() ([]model.Block, error) {
	if e.state.Phase == model.PhaseIdle || e.state.Board == nil {
		return nil, model.ErrGameNotStarted
	}
	return e.state.Board.RemoveAllBlocks(), nil
}

// EndGame stops the session. Calling it again after the game is over does nothing.
func (e *Engine) EndGame() error {
	if e.state.Phase == model.PhaseIdle {
		return model.ErrGameNotStarted
	}
	e.finish("ended")
	return nil
}

func (e *Engine) checkPlaying() error {
	switch e.state.Phase {
	case model.PhaseIdle:
		return model.ErrGameNotStarted
	case model.PhaseGameOver:
		return model.ErrGameOver
	}
	return nil
}

// tryMove applies op to the falling shape and undoes it when the result does not fit
func (e *Engine) tryMove(op, undo func(*model.Shape)) error {
	if err := e.checkPlaying(); err != nil {
		return err
	}
	shape := e.state.FallingShape
	if shape == nil {
		return nil
	}

	op(shape)
	if !e.state.Board.IsValidPosition(shape) {
		undo(shape)
		return nil
	}
	e.sink.GameShapeDidMove(e.state)
	return nil
}

func (e *Engine) fallOne() bool {
	shape := e.state.FallingShape
	shape.Translate(0, 1)
	if e.state.Board.IsValidPosition(shape) {
		return true
	}
	shape.Translate(0, -1)
	return false
}

// settle locks the falling shape, clears lines and spawns the next shape
func (e *Engine) settle() error {
	e.state.Phase = model.PhaseLocking
	if err := e.state.Board.Lock(e.state.FallingShape); err != nil {
		return fmt.Errorf("failed to lock %s: %w", e.state.FallingShape, err)
	}
	e.state.PiecesPlaced++
	e.sink.GameShapeDidLand(e.state)

	e.clearLines()
	e.spawn()
	return nil
}

func (e *Engine) clearLines() model.LineClearResult {
	previous := e.state.Phase
	e.state.Phase = model.PhaseLineClearing
	result := e.state.Board.RemoveCompletedLines()
	if result.Count() == 0 {
		e.state.Phase = previous
		return result
	}

	outcome := e.scoring.ApplyLineClear(e.state, result.Count())
	for i := 0; i < outcome.LevelsGained; i++ {
		e.logger.Debug("level up",
			slog.Int("level", e.state.Level),
			slog.Int("tick_ms", e.state.TickIntervalMillis()),
		)
		e.sink.GameDidLevelUp(e.state)
	}
	e.sink.GameDidClearLines(e.state, result)
	e.state.Phase = previous
	return result
}

func (e *Engine) spawn() {
	if !e.promoteNext() {
		e.finish("spawn blocked")
	}
}

// promoteNext moves the preview shape to the spawn point and reports whether it fits
func (e *Engine) promoteNext() bool {
	e.state.Phase = model.PhaseSpawning
	falling := e.state.NextShape
	if falling == nil {
		falling = e.randomShape()
	}
	falling.MoveTo(e.cfg.SpawnCoordinate())
	e.state.NextShape = e.randomShape()

	if !e.state.Board.IsValidPosition(falling) {
		e.state.FallingShape = nil
		return false
	}
	e.state.FallingShape = falling
	e.state.Phase = model.PhaseFalling
	return true
}

func (e *Engine) finish(reason string) {
	if e.state.Phase == model.PhaseGameOver {
		return
	}
	e.state.Phase = model.PhaseGameOver
	e.state.FallingShape = nil
	e.state.EndedAt = e.clock.Now()

	summary := e.state.Summary()
	e.logger.Info("game ended",
		slog.String("reason", reason),
		slog.Int("score", summary.Score),
		slog.Int("level", summary.Level),
		slog.Int("lines", summary.LinesCleared),
		slog.Duration("duration", summary.Duration()),
	)
	e.sink.GameDidEnd(summary)
}

func (e *Engine) randomShape() *model.Shape {
	t := model.ShapeType(e.random.Intn(model.NumShapeTypes))
	return model.NewShape(t, e.cfg.SpawnCoordinate())
}

// Interface for dependency injection
type EngineInterface interface {
	BeginGame() error
	NewShape() (falling, next *model.Shape, err error)
	MoveShapeLeft() error
	MoveShapeRight() error
	RotateShape() error
	LetShapeFall() error
	DropShape() error
	RemoveCompletedLines() (model.LineClearResult, error)
	RemoveAllBlocks() ([]model.Block, error)
	EndGame() error
	State() *model.GameState
}

var _ EngineInterface = (*Engine)(nil)
