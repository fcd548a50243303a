package palette

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/bobbyscolumns/internal/board"
)

// Scheme is the raw colour scheme as stored in JSON.
type Scheme struct {
	Name       string            `json:"name"`
	Background string            `json:"background"` // Screen background
	Empty      string            `json:"empty"`      // Unoccupied board cells
	Border     string            `json:"border"`     // Board frame
	Text       string            `json:"text"`       // Title and prompts
	Blocks     map[string]string `json:"blocks"`     // Keyed by board.Block name
}

// Palette holds parsed colours ready for rendering.
type Palette struct {
	Name       string
	Background tcell.Color
	Empty      tcell.Color
	Border     tcell.Color
	Text       tcell.Color
	blocks     map[board.Block]tcell.Color
}

// New parses every colour in the scheme. Each board.Block must have an entry.
func New(s Scheme) (*Palette, error) {
	p := &Palette{
		Name:   s.Name,
		blocks: make(map[board.Block]tcell.Color, len(board.Blocks)),
	}

	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", s.Background, &p.Background},
		{"empty", s.Empty, &p.Empty},
		{"border", s.Border, &p.Border},
		{"text", s.Text, &p.Text},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q %s: %w", s.Name, f.name, err)
		}
		*f.dst = c
	}

	for _, b := range board.Blocks {
		hex, ok := s.Blocks[b.String()]
		if !ok {
			return nil, fmt.Errorf("palette %q has no colour for block %s", s.Name, b)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %q block %s: %w", s.Name, b, err)
		}
		p.blocks[b] = c
	}

	return p, nil
}

// CellStyle returns the style for drawing a board cell.
func (p *Palette) CellStyle(cell board.Cell) tcell.Style {
	bg := p.Empty
	if b, ok := cell.Block(); ok {
		bg = p.blocks[b]
	}
	return tcell.StyleDefault.Background(bg).Foreground(p.Text)
}

// BorderStyle returns the style for the board frame.
func (p *Palette) BorderStyle() tcell.Style {
	return tcell.StyleDefault.Background(p.Background).Foreground(p.Border)
}

// TextStyle returns the style for titles and prompts.
func (p *Palette) TextStyle() tcell.Style {
	return tcell.StyleDefault.Background(p.Background).Foreground(p.Text)
}
