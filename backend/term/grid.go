// Package term hosts the overlay in a terminal. Draw lists are rasterized
// onto a character grid where one cell covers one glyph of the built-in
// font.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/overlay/draw"
)

// Cell size in overlay pixels.
const (
	cellW = draw.GlyphWidth
	cellH = draw.GlyphHeight
)

// Cell is one character of the grid.
type Cell struct {
	Ch rune
	FG draw.Color
	BG draw.Color
}

// Grid is a character raster of a draw list.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid creates a blank grid of w by h cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Resize changes the grid size and clears it.
func (g *Grid) Resize(w, h int) {
	g.W, g.H = max(w, 0), max(h, 0)
	g.cells = make([]Cell, g.W*g.H)
	g.Clear()
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Ch: ' '}
	}
}

// PixelSize returns the overlay display size the grid covers.
func (g *Grid) PixelSize() draw.Vec2 {
	return draw.Vec2{X: float32(g.W) * cellW, Y: float32(g.H) * cellH}
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Cell{}
	}
	return g.cells[y*g.W+x]
}

func (g *Grid) cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return nil
	}
	return &g.cells[y*g.W+x]
}

// cellRect converts a pixel rectangle to the half-open range of cells whose
// centres it contains. Text rows round the same way, so a rectangle that
// only grazes a row leaves that row alone.
func cellRect(r draw.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(float64(r.X/cellW) - 0.5))
	y0 = int(math.Ceil(float64(r.Y/cellH) - 0.5))
	x1 = int(math.Ceil(float64((r.X+r.W)/cellW) - 0.5))
	y1 = int(math.Ceil(float64((r.Y+r.H)/cellH) - 0.5))
	return
}

// Raster clears the grid and paints dl onto it.
func (g *Grid) Raster(dl *draw.List) {
	g.Clear()
	if dl == nil {
		return
	}
	for _, c := range dl.Cmds() {
		switch c.Kind {
		case draw.CmdRect:
			g.fill(c.Rect.Intersect(c.Clip), c.Color)
		case draw.CmdRectOutline:
			g.outline(c.Rect, c.Clip, c.Color)
		case draw.CmdText:
			g.text(c)
		}
	}
}

func (g *Grid) fill(r draw.Rect, col draw.Color) {
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := g.cell(x, y); c != nil {
				c.BG = col
				c.Ch = ' '
			}
		}
	}
}

func (g *Grid) outline(r, clip draw.Rect, col draw.Color) {
	x0, y0, x1, y1 := cellRect(r)
	cx0, cy0, cx1, cy1 := cellRect(clip)
	for y := max(y0, cy0); y < min(y1, cy1); y++ {
		for x := max(x0, cx0); x < min(x1, cx1); x++ {
			var ch rune
			switch {
			case (y == y0 || y == y1-1) && (x == x0 || x == x1-1):
				ch = '+'
			case y == y0 || y == y1-1:
				ch = '-'
			case x == x0 || x == x1-1:
				ch = '|'
			default:
				continue
			}
			if c := g.cell(x, y); c != nil {
				c.Ch = ch
				c.FG = col
			}
		}
	}
}

func (g *Grid) text(cmd draw.Cmd) {
	cx0, cy0, cx1, cy1 := cellRect(cmd.Clip)
	x := int(math.Round(float64(cmd.Rect.X / cellW)))
	y := int(math.Round(float64(cmd.Rect.Y / cellH)))
	if y < cy0 || y >= cy1 {
		return
	}
	for _, r := range cmd.Text {
		if x >= cx0 && x < cx1 {
			if c := g.cell(x, y); c != nil {
				c.Ch = r
				c.FG = cmd.Color
			}
		}
		x++
	}
}

// PlainText returns the grid characters, one line per row, with trailing
// blanks trimmed.
func (g *Grid) PlainText() string {
	var b strings.Builder
	for y := range g.H {
		var row strings.Builder
		for x := range g.W {
			row.WriteRune(g.cells[y*g.W+x].Ch)
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		if y < g.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the grid as styled terminal output.
func (g *Grid) Render() string {
	var b strings.Builder
	var run strings.Builder
	for y := range g.H {
		row := g.cells[y*g.W : (y+1)*g.W]
		for x := 0; x < len(row); {
			fg, bg := row[x].FG, row[x].BG
			run.Reset()
			for x < len(row) && row[x].FG == fg && row[x].BG == bg {
				run.WriteRune(row[x].Ch)
				x++
			}
			b.WriteString(style(fg, bg).Render(run.String()))
		}
		if y < g.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func style(fg, bg draw.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg.Visible() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Visible() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	return s
}
