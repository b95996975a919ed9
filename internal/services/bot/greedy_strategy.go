package bot

import "github.com/mcoot/blockgame-go/internal/model"

// Weights scores a board after a placement. Higher totals are better.
type Weights struct {
	AggregateHeight float64
	CompleteLines   float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights are tuned for the standard board
func DefaultWeights() Weights {
	return Weights{
		AggregateHeight: -0.510066,
		CompleteLines:   0.760666,
		Holes:           -0.35663,
		Bumpiness:       -0.184483,
	}
}

// GreedyStrategy looks one shape ahead and keeps the board low and flat
type GreedyStrategy struct {
	weights Weights
}

// NewGreedyStrategy creates a GreedyStrategy with the given weights
func NewGreedyStrategy(weights Weights) *GreedyStrategy {
	return &GreedyStrategy{weights: weights}
}

// ChoosePlacement returns the best scoring candidate. Ties go to the first found.
func (s *GreedyStrategy) ChoosePlacement(state *model.GameState) (Placement, bool) {
	if state.FallingShape == nil || state.Board == nil {
		return Placement{}, false
	}

	var (
		best      Placement
		bestScore float64
		found     bool
	)
	for _, c := range Candidates(state.Board, state.FallingShape) {
		score := s.Evaluate(state.Board, c.Resting)
		if !found || score > bestScore {
			best, bestScore, found = c.Placement, score, true
		}
	}
	return best, found
}

// Evaluate scores the board as it would be with resting locked and full rows removed
func (s *GreedyStrategy) Evaluate(board *model.Board, resting *model.Shape) float64 {
	grid := board.Rows()
	for _, c := range resting.Coordinates() {
		if c.Row >= 0 && c.Row < board.Height && c.Column >= 0 && c.Column < board.Width {
			grid[c.Row][c.Column] = resting.Color()
		}
	}

	kept := make([][]model.Color, 0, board.Height)
	lines := 0
	for _, row := range grid {
		if rowFull(row) {
			lines++
			continue
		}
		kept = append(kept, row)
	}
	// Pad the cleared rows back in at the top
	for len(kept) < board.Height {
		kept = append([][]model.Color{make([]model.Color, board.Width)}, kept...)
	}

	heights := make([]int, board.Width)
	holes := 0
	for col := 0; col < board.Width; col++ {
		seenTop := false
		for row := 0; row < board.Height; row++ {
			filled := kept[row][col] != model.ColorNone
			switch {
			case filled && !seenTop:
				heights[col] = board.Height - row
				seenTop = true
			case !filled && seenTop:
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumpiness += abs(h - heights[col-1])
		}
	}

	return s.weights.AggregateHeight*float64(aggregate) +
		s.weights.CompleteLines*float64(lines) +
		s.weights.Holes*float64(holes) +
		s.weights.Bumpiness*float64(bumpiness)
}

func rowFull(row []model.Color) bool {
	for _, c := range row {
		if c == model.ColorNone {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
