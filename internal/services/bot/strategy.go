package bot

import "github.com/mcoot/blockgame-go/internal/model"

// Placement is where a strategy wants the falling shape to land: the number of
// clockwise turns from its current orientation and the target anchor column
type Placement struct {
	Rotations int
	Column    int
}

// Strategy defines how a bot chooses where each shape goes
type Strategy interface {
	// ChoosePlacement picks a landing spot for the falling shape. It returns
	// false when no placement fits.
	ChoosePlacement(state *model.GameState) (Placement, bool)
}

// Candidate is a reachable placement and the shape at its resting position
type Candidate struct {
	Placement Placement
	Resting   *model.Shape
}

// Candidates lists every distinct resting position for shape on board that can
// be reached by turning it in place, sliding it sideways and dropping it.
// Placements that rest on identical cells are reported once, with the fewest turns.
func Candidates(board *model.Board, shape *model.Shape) []Candidate {
	var out []Candidate
	seen := map[[model.BlocksPerShape]model.Coordinate]bool{}

	turned := shape.Clone()
	for rotations := 0; rotations < model.NumRotations; rotations++ {
		if rotations > 0 {
			turned.Rotate()
			if !board.IsValidPosition(turned) {
				break
			}
		}

		for _, col := range reachableColumns(board, turned) {
			resting := turned.Clone()
			resting.Translate(col-turned.Anchor.Column, 0)
			for {
				resting.Translate(0, 1)
				if !board.IsValidPosition(resting) {
					resting.Translate(0, -1)
					break
				}
			}

			key := resting.Coordinates()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Candidate{
				Placement: Placement{Rotations: rotations, Column: col},
				Resting:   resting,
			})
		}
	}
	return out
}

// reachableColumns walks shape left then right from where it is, stopping at
// the first blocked column each way
func reachableColumns(board *model.Board, shape *model.Shape) []int {
	start := shape.Anchor.Column
	cols := []int{start}

	probe := shape.Clone()
	for {
		probe.Translate(-1, 0)
		if !board.IsValidPosition(probe) {
			break
		}
		cols = append(cols, probe.Anchor.Column)
	}

	probe = shape.Clone()
	for {
		probe.Translate(1, 0)
		if !board.IsValidPosition(probe) {
			break
		}
		cols = append(cols, probe.Anchor.Column)
	}
	return cols
}
