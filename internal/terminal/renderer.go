package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/blockgame-go/internal/model"
	"github.com/mcoot/blockgame-go/internal/services/engine"
)

// Canvas is the part of tcell.Screen the renderer draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Layout offsets. Each board cell is two terminal columns wide.
const (
	wellLeft    = 1
	wellTop     = 1
	cellWidth   = 2
	sidebarGap  = 3
	previewRows = 4
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var blockColors = map[model.Color]tcell.Color{
	model.ColorCyan:   tcell.ColorAqua,
	model.ColorBlue:   tcell.ColorBlue,
	model.ColorOrange: tcell.ColorOrange,
	model.ColorYellow: tcell.ColorYellow,
	model.ColorGreen:  tcell.ColorLime,
	model.ColorPurple: tcell.ColorFuchsia,
	model.ColorRed:    tcell.ColorRed,
}

// StyleFor returns the style a block of the given color is drawn with
func StyleFor(c model.Color) tcell.Style {
	color, ok := blockColors[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(color).Background(color)
}

// Renderer draws the game whenever the engine reports a change
type Renderer struct {
	engine.NopSink

	canvas Canvas
	state  *model.GameState

	remaining func() time.Duration
	paused    func() bool
	summary   *model.GameSummary
}

var _ engine.EventSink = (*Renderer)(nil)

// NewRenderer creates a Renderer for canvas
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Track supplies the runner's timer and pause status for the sidebar. Either may be nil.
func (r *Renderer) Track(remaining func() time.Duration, paused func() bool) {
	r.remaining = remaining
	r.paused = paused
}

func (r *Renderer) GameDidBegin(state *model.GameState) {
	r.state = state
	r.summary = nil
	r.Redraw()
}

func (r *Renderer) GameDidEnd(summary model.GameSummary) {
	r.summary = &summary
	r.Redraw()
}

func (r *Renderer) GameShapeDidLand(state *model.GameState) {
	r.state = state
	r.Redraw()
}

func (r *Renderer) GameShapeDidMove(state *model.GameState) {
	r.state = state
	r.Redraw()
}

func (r *Renderer) GameDidClearLines(state *model.GameState, _ model.LineClearResult) {
	r.state = state
	r.Redraw()
}

// Redraw repaints the whole screen from the last seen state
func (r *Renderer) Redraw() {
	r.canvas.Clear()
	if r.state == nil || r.state.Board == nil {
		r.canvas.Show()
		return
	}

	board := r.state.Board
	r.drawWell(board)
	for row, colors := range board.Rows() {
		for col, color := range colors {
			if color != model.ColorNone {
				r.drawCell(model.Coordinate{Column: col, Row: row}, color)
			}
		}
	}
	if shape := r.state.FallingShape; shape != nil {
		for _, b := range shape.Blocks() {
			r.drawCell(b.Coordinate, b.Color)
		}
	}
	r.drawSidebar(board.Width)

	switch {
	case r.summary != nil:
		r.drawBanner(board, "GAME OVER")
	case r.paused != nil && r.paused():
		r.drawBanner(board, "PAUSED")
	}
	r.canvas.Show()
}

func (r *Renderer) drawWell(board *model.Board) {
	right := wellLeft + board.Width*cellWidth
	bottom := wellTop + board.Height
	for y := wellTop; y < bottom; y++ {
		r.canvas.SetContent(wellLeft-1, y, '│', nil, styleBorder)
		r.canvas.SetContent(right, y, '│', nil, styleBorder)
	}
	for x := wellLeft; x < right; x++ {
		r.canvas.SetContent(x, wellTop-1, '─', nil, styleBorder)
		r.canvas.SetContent(x, bottom, '─', nil, styleBorder)
	}
	r.canvas.SetContent(wellLeft-1, wellTop-1, '┌', nil, styleBorder)
	r.canvas.SetContent(right, wellTop-1, '┐', nil, styleBorder)
	r.canvas.SetContent(wellLeft-1, bottom, '└', nil, styleBorder)
	r.canvas.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *Renderer) drawCell(c model.Coordinate, color model.Color) {
	x := wellLeft + c.Column*cellWidth
	y := wellTop + c.Row
	style := StyleFor(color)
	for i := 0; i < cellWidth; i++ {
		r.canvas.SetContent(x+i, y, '█', nil, style)
	}
}

func (r *Renderer) drawSidebar(boardWidth int) {
	x := wellLeft + boardWidth*cellWidth + sidebarGap
	y := wellTop

	r.drawText(x, y, "NEXT", styleLabel)
	if next := r.state.NextShape; next != nil {
		for _, off := range next.Offsets() {
			style := StyleFor(next.Color())
			for i := 0; i < cellWidth; i++ {
				r.canvas.SetContent(x+off.Column*cellWidth+i, y+1+off.Row, '█', nil, style)
			}
		}
	}
	y += previewRows + 2

	lines := []stat{
		{"SCORE", fmt.Sprintf("%d", r.state.Score)},
		{"LEVEL", fmt.Sprintf("%d", r.state.Level)},
		{"LINES", fmt.Sprintf("%d", r.state.TotalLinesCleared)},
	}
	if r.state.Mode == model.ModeTimed && r.remaining != nil {
		lines = append(lines, stat{"TIME", formatRemaining(r.remaining())})
	}
	for _, l := range lines {
		r.drawText(x, y, l.label, styleLabel)
		r.drawText(x, y+1, l.value, styleText)
		y += 3
	}

	r.drawText(x, y, "←→ move  ↑ rotate", styleLabel)
	r.drawText(x, y+1, "↓ soft drop  space drop", styleLabel)
	r.drawText(x, y+2, "p pause  q quit", styleLabel)
}

type stat struct {
	label string
	value string
}

func (r *Renderer) drawBanner(board *model.Board, text string) {
	y := wellTop + board.Height/2
	x := wellLeft + (board.Width*cellWidth-len(text))/2
	if x < wellLeft {
		x = wellLeft
	}
	r.drawText(x, y, text, styleAlert)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.canvas.SetContent(x, y, ch, nil, style)
		x++
	}
}

func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
