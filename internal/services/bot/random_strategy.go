package bot

import (
	"github.com/mcoot/blockgame-go/internal/dependencies/random"
	"github.com/mcoot/blockgame-go/internal/model"
)

// RandomStrategy drops each shape at a random reachable placement
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePlacement picks uniformly among the candidates
func (s *RandomStrategy) ChoosePlacement(state *model.GameState) (Placement, bool) {
	if state.FallingShape == nil || state.Board == nil {
		return Placement{}, false
	}
	candidates := Candidates(state.Board, state.FallingShape)
	if len(candidates) == 0 {
		return Placement{}, false
	}
	return candidates[s.random.Intn(len(candidates))].Placement, true
}
