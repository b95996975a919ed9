package model

// Default board dimensions
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 20
)

// Board is the grid of locked blocks. The falling shape is never stored here.
type Board struct {
	Width  int
	Height int
	Cells  [][]*Block // Row-major: Cells[row][col], nil means empty
}

// NewBoard creates an empty board of the given size
func NewBoard(width, height int) *Board {
	cells := make([][]*Block, height)
	for i := range cells {
		cells[i] = make([]*Block, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// FallenBlock records a locked block moving down during a line collapse
type FallenBlock struct {
	Block         Block // Block as it was before the collapse
	NewCoordinate Coordinate
}

// LineClearResult is the outcome of removing completed lines
type LineClearResult struct {
	LinesRemoved [][]Block // Bottom-most removed row first
	FallenBlocks []FallenBlock
}

// Count returns the number of lines removed
func (r LineClearResult) Count() int {
	return len(r.LinesRemoved)
}

// InBounds returns true if the coordinate lies on the board
func (b *Board) InBounds(c Coordinate) bool {
	return c.Column >= 0 && c.Column < b.Width && c.Row >= 0 && c.Row < b.Height
}

// Get returns the block at the given coordinate, or nil if empty or out of bounds
func (b *Board) Get(c Coordinate) *Block {
	if !b.InBounds(c) {
		return nil
	}
	return b.Cells[c.Row][c.Column]
}

// IsEmpty returns true if the coordinate is on the board and unoccupied
func (b *Board) IsEmpty(c Coordinate) bool {
	return b.InBounds(c) && b.Cells[c.Row][c.Column] == nil
}

// IsValidPosition returns true if every block of the shape is on the board
// and sits on an empty cell
func (b *Board) IsValidPosition(shape *Shape) bool {
	for _, block := range shape.Blocks() {
		if !b.IsEmpty(block.Coordinate) {
			return false
		}
	}
	return true
}

// Place puts a single block on the board
func (b *Board) Place(block Block) error {
	if !b.InBounds(block.Coordinate) {
		return ErrInvalidPosition
	}
	if b.Cells[block.Row()][block.Column()] != nil {
		return ErrCellOccupied
	}
	placed := block
	b.Cells[block.Row()][block.Column()] = &placed
	return nil
}

// Lock copies the shape's blocks onto the board. Nothing is written unless
// every target cell is valid and empty.
func (b *Board) Lock(shape *Shape) error {
	for _, block := range shape.Blocks() {
		if !b.InBounds(block.Coordinate) {
			return ErrInvalidPosition
		}
		if b.Cells[block.Row()][block.Column()] != nil {
			return ErrCellOccupied
		}
	}
	for _, block := range shape.Blocks() {
		placed := block
		b.Cells[block.Row()][block.Column()] = &placed
	}
	return nil
}

// IsRowComplete returns true if every column in the row is occupied
func (b *Board) IsRowComplete(row int) bool {
	if row < 0 || row >= b.Height {
		return false
	}
	for col := 0; col < b.Width; col++ {
		if b.Cells[row][col] == nil {
			return false
		}
	}
	return true
}

// RemoveCompletedLines clears every complete row and drops the blocks above
// each cleared row by one row per cleared row beneath them.
func (b *Board) RemoveCompletedLines() LineClearResult {
	result := LineClearResult{}

	// removedBelow[row] is the number of cleared rows strictly below row
	removedBelow := make([]int, b.Height)
	cleared := 0
	for row := b.Height - 1; row >= 0; row-- {
		removedBelow[row] = cleared
		if !b.IsRowComplete(row) {
			continue
		}
		line := make([]Block, 0, b.Width)
		for col := 0; col < b.Width; col++ {
			line = append(line, *b.Cells[row][col])
			b.Cells[row][col] = nil
		}
		result.LinesRemoved = append(result.LinesRemoved, line)
		cleared++
	}

	if cleared == 0 {
		return result
	}

	// Walk bottom-up so a destination row is always vacated before it is filled
	for row := b.Height - 1; row >= 0; row-- {
		shift := removedBelow[row]
		if shift == 0 {
			continue
		}
		for col := 0; col < b.Width; col++ {
			block := b.Cells[row][col]
			if block == nil {
				continue
			}
			newCoord := Coordinate{Column: col, Row: row + shift}
			result.FallenBlocks = append(result.FallenBlocks, FallenBlock{
				Block:         *block,
				NewCoordinate: newCoord,
			})
			b.Cells[row][col] = nil
			b.Cells[newCoord.Row][col] = &Block{Coordinate: newCoord, Color: block.Color}
		}
	}

	return result
}

// RemoveAllBlocks empties the board and returns every block that was on it
func (b *Board) RemoveAllBlocks() []Block {
	var removed []Block
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if block := b.Cells[row][col]; block != nil {
				removed = append(removed, *block)
				b.Cells[row][col] = nil
			}
		}
	}
	return removed
}

// BlockCount returns the number of occupied cells
func (b *Board) BlockCount() int {
	count := 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cells[row][col] != nil {
				count++
			}
		}
	}
	return count
}

// Rows returns a copy of the board's occupied cells as colors, row-major
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.Height)
	for row := range rows {
		rows[row] = make([]Color, b.Width)
		for col := 0; col < b.Width; col++ {
			if block := b.Cells[row][col]; block != nil {
				rows[row][col] = block.Color
			}
		}
	}
	return rows
}
