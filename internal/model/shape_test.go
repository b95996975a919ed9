package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ShapeSuite struct {
	suite.Suite
}

func TestShapeSuite(t *testing.T) {
	suite.Run(t, new(ShapeSuite))
}

func (s *ShapeSuite) TestNewShapeDerivesBlocksFromAnchor() {
	shape := NewShape(ShapeT, Coordinate{Column: 4, Row: 0})

	s.Equal(0, shape.Rotation)
	s.Equal([BlocksPerShape]Coordinate{
		{Column: 5, Row: 0},
		{Column: 4, Row: 1},
		{Column: 5, Row: 1},
		{Column: 6, Row: 1},
	}, shape.Coordinates())
	for _, b := range shape.Blocks() {
		s.Equal(ColorPurple, b.Color)
	}
}

func (s *ShapeSuite) TestEveryRotationHasFourDistinctBlocks() {
	for _, t := range AllShapeTypes() {
		for r := 0; r < NumRotations; r++ {
			seen := map[Coordinate]bool{}
			for _, off := range t.Offsets(r) {
				s.False(seen[off], "%s rotation %d repeats offset %v", t, r, off)
				seen[off] = true
				s.GreaterOrEqual(off.Column, 0)
				s.Less(off.Column, 4)
				s.GreaterOrEqual(off.Row, 0)
				s.Less(off.Row, 4)
			}
		}
	}
}

func (s *ShapeSuite) TestFourRotationsReturnToStart() {
	for _, t := range AllShapeTypes() {
		shape := NewShape(t, Coordinate{Column: 3, Row: 5})
		startOffsets := shape.Offsets()
		startCoords := shape.Coordinates()

		for i := 0; i < NumRotations; i++ {
			shape.Rotate()
		}

		s.Equal(0, shape.Rotation, t.String())
		s.Equal(startOffsets, shape.Offsets(), t.String())
		s.Equal(startCoords, shape.Coordinates(), t.String())
	}
}

func (s *ShapeSuite) TestRotateBackUndoesRotate() {
	for _, t := range AllShapeTypes() {
		shape := NewShape(t, Coordinate{Column: 2, Row: 2})
		before := shape.Coordinates()

		shape.Rotate()
		shape.RotateBack()

		s.Equal(before, shape.Coordinates(), t.String())
		s.Equal(0, shape.Rotation)
	}
}

func (s *ShapeSuite) TestRotateBackFromZeroWraps() {
	shape := NewShape(ShapeL, Coordinate{})
	shape.RotateBack()
	s.Equal(3, shape.Rotation)
}

func (s *ShapeSuite) TestTranslateMovesEveryBlock() {
	shape := NewShape(ShapeS, Coordinate{Column: 4, Row: 0})
	before := shape.Coordinates()

	shape.Translate(-1, 2)

	s.Equal(Coordinate{Column: 3, Row: 2}, shape.Anchor)
	after := shape.Coordinates()
	for i := range before {
		s.Equal(before[i].Column-1, after[i].Column)
		s.Equal(before[i].Row+2, after[i].Row)
	}
}

func (s *ShapeSuite) TestMoveToRepositionsAnchor() {
	shape := NewShape(ShapeI, Coordinate{Column: 12, Row: 1})
	shape.MoveTo(Coordinate{Column: 3, Row: 0})

	s.Equal([BlocksPerShape]Coordinate{
		{Column: 3, Row: 1},
		{Column: 4, Row: 1},
		{Column: 5, Row: 1},
		{Column: 6, Row: 1},
	}, shape.Coordinates())
}

func (s *ShapeSuite) TestCloneIsIndependent() {
	shape := NewShape(ShapeJ, Coordinate{Column: 1, Row: 1})
	clone := shape.Clone()

	clone.Translate(1, 0)
	clone.Rotate()

	s.Equal(Coordinate{Column: 1, Row: 1}, shape.Anchor)
	s.Equal(0, shape.Rotation)
	s.NotEqual(shape.Coordinates(), clone.Coordinates())
}

func (s *ShapeSuite) TestOShapeIsRotationInvariant() {
	shape := NewShape(ShapeO, Coordinate{Column: 4, Row: 0})
	before := shape.Coordinates()
	shape.Rotate()
	s.Equal(before, shape.Coordinates())
}

func (s *ShapeSuite) TestLowestRow() {
	shape := NewShape(ShapeI, Coordinate{Column: 0, Row: 0})
	s.Equal(1, shape.LowestRow())
	shape.Rotate()
	s.Equal(3, shape.LowestRow())
}

func (s *ShapeSuite) TestParseShapeType() {
	for _, t := range AllShapeTypes() {
		parsed, err := ParseShapeType(t.String())
		s.Require().NoError(err)
		s.Equal(t, parsed)
	}

	_, err := ParseShapeType("X")
	s.ErrorIs(err, ErrInvalidConfig)
}

func (s *ShapeSuite) TestShapeColorsAreDistinct() {
	seen := map[Color]ShapeType{}
	for _, t := range AllShapeTypes() {
		c := t.Color()
		s.NotEqual(ColorNone, c)
		_, dup := seen[c]
		s.False(dup, "color %s reused by %s", c, t)
		seen[c] = t
	}
}
