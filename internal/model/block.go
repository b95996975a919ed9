package model

import "fmt"

// Coordinate identifies a cell on the board
type Coordinate struct {
	Column int // 0-indexed from left
	Row    int // 0-indexed from top
}

// Offset returns the coordinate shifted by the given deltas
func (c Coordinate) Offset(deltaColumn, deltaRow int) Coordinate {
	return Coordinate{Column: c.Column + deltaColumn, Row: c.Row + deltaRow}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Color identifies the color of a block
type Color int

const (
	ColorNone Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
)

var colorNames = map[Color]string{
	ColorNone:   "none",
	ColorCyan:   "cyan",
	ColorBlue:   "blue",
	ColorOrange: "orange",
	ColorYellow: "yellow",
	ColorGreen:  "green",
	ColorPurple: "purple",
	ColorRed:    "red",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// Block is a single colored cell. A block belongs either to a falling
// shape or to the board, never both.
type Block struct {
	Coordinate Coordinate
	Color      Color
}

// Column returns the block's column
func (b Block) Column() int {
	return b.Coordinate.Column
}

// Row returns the block's row
func (b Block) Row() int {
	return b.Coordinate.Row
}
