package sound

import (
	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
)

// Cue identifies a short sound effect
type Cue int

const (
	CueDrop Cue = iota
	CueLand
	CueClear
	CueFourLines
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueDrop:
		return "drop"
	case CueLand:
		return "land"
	case CueClear:
		return "clear"
	case CueFourLines:
		return "four_lines"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	}
	return "unknown"
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(cue Cue)
}

// Cues is an engine event sink that turns game events into sound cues
type Cues struct {
	engine.NopSink

	player Player
}

var _ engine.EventSink = (*Cues)(nil)

// NewCues creates a Cues sink that plays through player
func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

func (c *Cues) GameShapeDidDrop(*model.GameState) {
	c.player.Play(CueDrop)
}

func (c *Cues) GameShapeDidLand(*model.GameState) {
	c.player.Play(CueLand)
}

func (c *Cues) GameDidClearLines(_ *model.GameState, result model.LineClearResult) {
	if result.Count() >= 4 {
		c.player.Play(CueFourLines)
		return
	}
	c.player.Play(CueClear)
}

func (c *Cues) GameDidLevelUp(*model.GameState) {
	c.player.Play(CueLevelUp)
}

func (c *Cues) GameDidEnd(model.GameSummary) {
	c.player.Play(CueGameOver)
}
