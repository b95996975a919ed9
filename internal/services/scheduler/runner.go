package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/blockgame-go/internal/dependencies/clock"
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
)

// Config holds scheduler settings
type Config struct {
	// TimeLimit is the length of a timed-mode game
	TimeLimit time.Duration
}

// DefaultConfig returns the standard one-minute timed game
func DefaultConfig() Config {
	return Config{TimeLimit: 60 * time.Second}
}

// Validate checks the config
func (c Config) Validate() error {
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive: %w", model.ErrInvalidConfig)
	}
	return nil
}

// Runner drives an engine from a tick timer and a stream of player commands.
// All engine calls happen on the goroutine running Run.
type Runner struct {
	engine engine.EngineInterface
	clock  clock.Clock
	cfg    Config
	logger *slog.Logger

	paused   bool
	pausedAt time.Time
	deadline time.Time

	onStep func()
}

// New creates a new Runner
func New(eng engine.EngineInterface, clk clock.Clock, cfg Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		engine: eng,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// OnStep registers fn to run on the runner goroutine after the game starts
// and after every tick or command. It is how front ends redraw.
func (r *Runner) OnStep(fn func()) {
	r.onStep = fn
}

func (r *Runner) notify() {
	if r.onStep != nil {
		r.onStep()
	}
}

// Run begins the game if needed and processes ticks and commands until the
// game ends, a quit command arrives, the command channel closes or ctx is done.
func (r *Runner) Run(ctx context.Context, commands <-chan Command) error {
	if err := r.Start(); err != nil {
		return err
	}

	r.notify()

	timer := time.NewTimer(r.engine.State().TickInterval)
	defer timer.Stop()

	for !r.engine.State().IsOver() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				return nil
			}
			quit, err := r.Apply(cmd)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			r.notify()
			if cmd == CommandSoftDrop {
				timer.Reset(r.engine.State().TickInterval)
			}

		case <-timer.C:
			if err := r.Tick(); err != nil {
				return err
			}
			r.notify()
			timer.Reset(r.engine.State().TickInterval)
		}
	}
	return nil
}

// Start begins the game if it has not begun and arms the timed-mode deadline
func (r *Runner) Start() error {
	state := r.engine.State()
	if state.Phase == model.PhaseIdle {
		if err := r.engine.BeginGame(); err != nil {
			return err
		}
		state = r.engine.State()
	}
	r.paused = false
	if state.Mode == model.ModeTimed {
		r.deadline = state.StartedAt.Add(r.cfg.TimeLimit)
	} else {
		r.deadline = time.Time{}
	}
	return nil
}

// Tick advances the falling shape one row unless paused
func (r *Runner) Tick() error {
	if r.paused || r.engine.State().IsOver() {
		return nil
	}
	if r.checkDeadline() {
		return nil
	}
	if err := r.engine.LetShapeFall(); err != nil {
		return err
	}
	r.checkDeadline()
	return nil
}

// Apply executes one command. It reports whether the player asked to quit.
func (r *Runner) Apply(cmd Command) (quit bool, err error) {
	switch cmd {
	case CommandQuit:
		r.logger.Debug("quit requested")
		return true, nil
	case CommandPause:
		r.togglePause()
		return false, nil
	}

	if r.paused || r.engine.State().IsOver() {
		return false, nil
	}
	if r.checkDeadline() {
		return false, nil
	}

	switch cmd {
	case CommandLeft:
		err = r.engine.MoveShapeLeft()
	case CommandRight:
		err = r.engine.MoveShapeRight()
	case CommandRotate:
		err = r.engine.RotateShape()
	case CommandDrop:
		err = r.engine.DropShape()
	case CommandSoftDrop:
		err = r.engine.LetShapeFall()
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, err
}

// Finished reports whether the game has reached game over
func (r *Runner) Finished() bool {
	return r.engine.State().IsOver()
}

// Paused reports whether the runner is holding the game
func (r *Runner) Paused() bool {
	return r.paused
}

// Remaining returns the time left in a timed game, or zero for other modes
func (r *Runner) Remaining() time.Duration {
	if r.deadline.IsZero() {
		return 0
	}
	now := r.clock.Now()
	if r.paused {
		now = r.pausedAt
	}
	if remaining := r.deadline.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

func (r *Runner) togglePause() {
	if r.engine.State().IsOver() {
		return
	}
	if !r.paused {
		r.paused = true
		r.pausedAt = r.clock.Now()
		r.logger.Debug("game paused")
		return
	}
	r.paused = false
	if !r.deadline.IsZero() {
		r.deadline = r.deadline.Add(r.clock.Now().Sub(r.pausedAt))
	}
	r.logger.Debug("game resumed")
}

// checkDeadline ends a timed game whose limit has passed
func (r *Runner) checkDeadline() bool {
	if r.deadline.IsZero() || r.clock.Now().Before(r.deadline) {
		return false
	}
	r.logger.Info("time limit reached", slog.Duration("limit", r.cfg.TimeLimit))
	if err := r.engine.EndGame(); err != nil {
		r.logger.Error("failed to end game", slog.String("error", err.Error()))
	}
	return true
}
