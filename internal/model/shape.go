package model

import "fmt"

// ShapeType identifies one of the seven tetrominoes
type ShapeType int

const (
	ShapeI ShapeType = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// NumShapeTypes is the number of distinct tetrominoes
const NumShapeTypes = 7

// NumRotations is the number of rotation states per shape
const NumRotations = 4

// BlocksPerShape is the number of blocks in every shape
const BlocksPerShape = 4

var shapeNames = [NumShapeTypes]string{"I", "J", "L", "O", "S", "T", "Z"}

var shapeColors = [NumShapeTypes]Color{
	ShapeI: ColorCyan,
	ShapeJ: ColorBlue,
	ShapeL: ColorOrange,
	ShapeO: ColorYellow,
	ShapeS: ColorGreen,
	ShapeT: ColorPurple,
	ShapeZ: ColorRed,
}

// rotationTable holds the block offsets from the anchor for every shape and
// rotation, clockwise from the spawn orientation. Offsets are {Column, Row}
// within a 4x4 box whose top-left corner is the anchor.
var rotationTable = [NumShapeTypes][NumRotations][BlocksPerShape]Coordinate{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
}

// AllShapeTypes returns every shape type in table order
func AllShapeTypes() []ShapeType {
	return []ShapeType{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}

// IsValid reports whether t is one of the seven known shapes
func (t ShapeType) IsValid() bool {
	return t >= ShapeI && t <= ShapeZ
}

// Color returns the color used for every block of this shape type
func (t ShapeType) Color() Color {
	if !t.IsValid() {
		return ColorNone
	}
	return shapeColors[t]
}

func (t ShapeType) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("shape(%d)", int(t))
	}
	return shapeNames[t]
}

// Offsets returns the anchor-relative offsets for the given rotation
func (t ShapeType) Offsets(rotation int) [BlocksPerShape]Coordinate {
	return rotationTable[t][normalizeRotation(rotation)]
}

// ParseShapeType converts a single-letter name ("I", "J", ...) to a ShapeType
func ParseShapeType(name string) (ShapeType, error) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q: %w", name, ErrInvalidConfig)
}

// Shape is a tetromino positioned on (or being tested against) a board.
// Its blocks are always derived from the anchor and the rotation table.
type Shape struct {
	Type     ShapeType
	Rotation int
	Anchor   Coordinate
	blocks   [BlocksPerShape]Block
}

// NewShape creates a shape in its spawn orientation at the given anchor
func NewShape(t ShapeType, anchor Coordinate) *Shape {
	s := &Shape{
		Type:   t,
		Anchor: anchor,
	}
	s.recompute()
	return s
}

// Blocks returns the shape's four blocks in board coordinates
func (s *Shape) Blocks() [BlocksPerShape]Block {
	return s.blocks
}

// Coordinates returns the board coordinates of the shape's blocks
func (s *Shape) Coordinates() [BlocksPerShape]Coordinate {
	var coords [BlocksPerShape]Coordinate
	for i, b := range s.blocks {
		coords[i] = b.Coordinate
	}
	return coords
}

// Offsets returns the block offsets relative to the anchor
func (s *Shape) Offsets() [BlocksPerShape]Coordinate {
	return s.Type.Offsets(s.Rotation)
}

// Color returns the color of the shape's blocks
func (s *Shape) Color() Color {
	return s.Type.Color()
}

// Rotate turns the shape clockwise by one step. No wall kicks are tried;
// the caller validates and reverts.
func (s *Shape) Rotate() {
	s.Rotation = normalizeRotation(s.Rotation + 1)
	s.recompute()
}

// RotateBack turns the shape counter-clockwise by one step
func (s *Shape) RotateBack() {
	s.Rotation = normalizeRotation(s.Rotation - 1)
	s.recompute()
}

// Translate moves the shape by the given deltas
func (s *Shape) Translate(deltaColumn, deltaRow int) {
	s.Anchor = s.Anchor.Offset(deltaColumn, deltaRow)
	s.recompute()
}

// MoveTo places the shape's anchor at the given coordinate
func (s *Shape) MoveTo(anchor Coordinate) {
	s.Anchor = anchor
	s.recompute()
}

// Clone returns an independent copy of the shape
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}

// LowestRow returns the largest row index occupied by the shape
func (s *Shape) LowestRow() int {
	lowest := s.blocks[0].Row()
	for _, b := range s.blocks[1:] {
		if b.Row() > lowest {
			lowest = b.Row()
		}
	}
	return lowest
}

func (s *Shape) String() string {
	return fmt.Sprintf("%s@%s/r%d", s.Type, s.Anchor, s.Rotation)
}

func (s *Shape) recompute() {
	color := s.Type.Color()
	for i, off := range s.Type.Offsets(s.Rotation) {
		s.blocks[i] = Block{
			Coordinate: s.Anchor.Offset(off.Column, off.Row),
			Color:      color,
		}
	}
}

func normalizeRotation(r int) int {
	r %= NumRotations
	if r < 0 {
		r += NumRotations
	}
	return r
}
