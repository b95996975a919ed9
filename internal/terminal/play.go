package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/blockgame-go/internal/services/scheduler"
)

// Screen is the part of tcell.Screen a game session needs
type Screen interface {
	Canvas
	PollEvent() tcell.Event
	Sync()
}

// Play runs one session on screen. Key presses become runner commands; when
// the game ends the final board stays up until a quit key arrives.
func Play(ctx context.Context, screen Screen, runner *scheduler.Runner, renderer *Renderer, logger *slog.Logger) error {
	runner.OnStep(renderer.Redraw)
	renderer.Track(runner.Remaining, runner.Paused)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	commands := make(chan scheduler.Command, 16)
	go pumpEvents(ctx, screen, commands)

	if err := runner.Run(ctx, commands); err != nil {
		return err
	}
	renderer.Redraw()

	// A quit during play returns straight away; a finished game waits for one
	if !runner.Finished() {
		return nil
	}
	logger.Debug("waiting for quit after game over")
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-commands:
			if cmd == scheduler.CommandQuit {
				return nil
			}
		}
	}
}

// pumpEvents forwards mapped key presses until ctx ends or the screen closes
func pumpEvents(ctx context.Context, screen Screen, commands chan<- scheduler.Command) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			cmd, ok := CommandForKey(ev.Key(), ev.Rune())
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}
}
