package engine

import (
	"context"
	"log/slog"

	"github.com/mcoot/blockgame-go/internal/model"
)

// EventSink receives the engine's notifications. Calls are synchronous and
// made from inside the engine command that caused them; a sink must not call
// back into the engine.
type EventSink interface {
	GameDidBegin(state *model.GameState)
	GameDidEnd(summary model.GameSummary)
	GameDidLevelUp(state *model.GameState)
	GameShapeDidDrop(state *model.GameState)
	GameShapeDidLand(state *model.GameState)
	GameShapeDidMove(state *model.GameState)
	GameDidClearLines(state *model.GameState, result model.LineClearResult)
}

// NopSink ignores every event. Embed it to implement only some methods.
type NopSink struct{}

var _ EventSink = NopSink{}

func (NopSink) GameDidBegin(*model.GameState)                             {}
func (NopSink) GameDidEnd(model.GameSummary)                              {}
func (NopSink) GameDidLevelUp(*model.GameState)                           {}
func (NopSink) GameShapeDidDrop(*model.GameState)                         {}
func (NopSink) GameShapeDidLand(*model.GameState)                         {}
func (NopSink) GameShapeDidMove(*model.GameState)                         {}
func (NopSink) GameDidClearLines(*model.GameState, model.LineClearResult) {}

// MultiSink forwards every event to each sink in order
type MultiSink []EventSink

var _ EventSink = MultiSink(nil)

func (m MultiSink) GameDidBegin(state *model.GameState) {
	for _, s := range m {
		s.GameDidBegin(state)
	}
}

func (m MultiSink) GameDidEnd(summary model.GameSummary) {
	for _, s := range m {
		s.GameDidEnd(summary)
	}
}

func (m MultiSink) GameDidLevelUp(state *model.GameState) {
	for _, s := range m {
		s.GameDidLevelUp(state)
	}
}

func (m MultiSink) GameShapeDidDrop(state *model.GameState) {
	for _, s := range m {
		s.GameShapeDidDrop(state)
	}
}

func (m MultiSink) GameShapeDidLand(state *model.GameState) {
	for _, s := range m {
		s.GameShapeDidLand(state)
	}
}

func (m MultiSink) GameShapeDidMove(state *model.GameState) {
	for _, s := range m {
		s.GameShapeDidMove(state)
	}
}

func (m MultiSink) GameDidClearLines(state *model.GameState, result model.LineClearResult) {
	for _, s := range m {
		s.GameDidClearLines(state, result)
	}
}

// LogSink writes every event to a structured logger at debug level
type LogSink struct {
	logger *slog.Logger
}

var _ EventSink = (*LogSink)(nil)

// NewLogSink creates a LogSink
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (l *LogSink) log(event model.EventType, state *model.GameState, attrs ...slog.Attr) {
	base := []slog.Attr{
		slog.String("event", string(event)),
		slog.Int("score", state.Score),
		slog.Int("level", state.Level),
	}
	if state.FallingShape != nil {
		base = append(base, slog.String("shape", state.FallingShape.String()))
	}
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "game event", append(base, attrs...)...)
}

func (l *LogSink) GameDidBegin(state *model.GameState) {
	l.log(model.EventGameBegan, state, slog.String("mode", string(state.Mode)))
}

func (l *LogSink) GameDidEnd(summary model.GameSummary) {
	l.logger.Debug("game event",
		slog.String("event", string(model.EventGameEnded)),
		slog.Int("score", summary.Score),
		slog.Int("level", summary.Level),
		slog.Int("lines", summary.LinesCleared),
	)
}

func (l *LogSink) GameDidLevelUp(state *model.GameState) {
	l.log(model.EventLevelUp, state, slog.Int("tick_ms", state.TickIntervalMillis()))
}

func (l *LogSink) GameShapeDidDrop(state *model.GameState) {
	l.log(model.EventShapeDropped, state)
}

func (l *LogSink) GameShapeDidLand(state *model.GameState) {
	l.log(model.EventShapeLanded, state)
}

func (l *LogSink) GameShapeDidMove(state *model.GameState) {
	l.log(model.EventShapeMoved, state)
}

func (l *LogSink) GameDidClearLines(state *model.GameState, result model.LineClearResult) {
	l.log(model.EventLinesCleared, state,
		slog.Int("lines", result.Count()),
		slog.Int("fallen", len(result.FallenBlocks)),
	)
}
