package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/bobbyscolumns/internal/columns"
	"github.com/samdwyer/bobbyscolumns/internal/palette"
)

const (
	// Title is drawn on the first line of the screen.
	Title = "BOBBY'S COLUMNS"
	// StartPrompt is shown on the title screen.
	StartPrompt = "[ Press Enter to start ]"
	// GameOverBanner is shown when the board overflows.
	GameOverBanner = "GAME OVER"
	// RestartPrompt is shown under the game over banner.
	RestartPrompt = "Press Enter to play again, q to quit"

	boardLeft = 1 // Column of the left border
	boardTop  = 2 // Row of the top border
	cellWidth = 2 // Terminal columns per board cell
)

// Canvas is the drawing surface the renderer writes to. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Renderer handles drawing game snapshots to a canvas.
type Renderer struct {
	canvas  Canvas
	palette *palette.Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, p *palette.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: p}
}

// Render draws the board and any prompts for the snapshot's phase.
func (r *Renderer) Render(snap columns.Snapshot) {
	r.canvas.Clear()

	r.drawText(Title, boardLeft, 0, r.palette.TextStyle().Bold(true))
	r.drawBorder(snap.Width, snap.Height)

	// Rows arrive top row first; draw them in that order.
	for y, row := range snap.Rows {
		for x, cell := range row {
			sx, sy := CellOrigin(x+1, y+1)
			style := r.palette.CellStyle(cell)
			for i := range cellWidth {
				r.canvas.SetContent(sx+i, sy, ' ', style)
			}
		}
	}

	below := boardTop + snap.Height + 2
	switch {
	case snap.ShowStartPrompt():
		r.drawText(StartPrompt, boardLeft, below, r.palette.TextStyle())
	case snap.Phase.Kind == columns.GameOver:
		r.drawText(GameOverBanner, boardLeft, below, r.palette.TextStyle().Bold(true).Foreground(tcell.ColorRed))
		r.drawText(RestartPrompt, boardLeft, below+1, r.palette.TextStyle())
	}

	r.canvas.Show()
}

// CellOrigin returns the screen position of the left half of board cell (x, y).
func CellOrigin(x, y int) (int, int) {
	return boardLeft + 1 + (x-1)*cellWidth, boardTop + y
}

// drawBorder frames a board of width × height cells.
func (r *Renderer) drawBorder(width, height int) {
	style := r.palette.BorderStyle()
	right := boardLeft + 1 + width*cellWidth
	bottom := boardTop + height + 1

	for x := boardLeft + 1; x < right; x++ {
		r.canvas.SetContent(x, boardTop, tcell.RuneHLine, style)
		r.canvas.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := boardTop + 1; y < bottom; y++ {
		r.canvas.SetContent(boardLeft, y, tcell.RuneVLine, style)
		r.canvas.SetContent(right, y, tcell.RuneVLine, style)
	}
	r.canvas.SetContent(boardLeft, boardTop, tcell.RuneULCorner, style)
	r.canvas.SetContent(right, boardTop, tcell.RuneURCorner, style)
	r.canvas.SetContent(boardLeft, bottom, tcell.RuneLLCorner, style)
	r.canvas.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// drawText writes msg starting at (x, y).
func (r *Renderer) drawText(msg string, x, y int, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}
