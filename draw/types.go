// Package draw provides the frame-scoped drawing surface used by the
// bundled panels and backends. A List records high-level commands; each
// backend turns them into pixels or terminal cells.
package draw

import "fmt"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset shrinks the rectangle by d on every side. Never goes negative.
func (r Rect) Inset(d float32) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Intersect returns the overlap of two rectangles (zero size if disjoint).
func (r Rect) Intersect(other Rect) Rect {
	x0 := maxf(r.X, other.X)
	y0 := maxf(r.Y, other.Y)
	x1 := minf(r.X+r.W, other.X+other.W)
	y1 := minf(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Color is an RGBA color packed as 0xAABBGGRR, the byte order OpenGL reads
// for normalized uint8x4 vertex attributes.
type Color uint32

const (
	White       Color = 0xFFFFFFFF
	Black       Color = 0xFF000000
	Red         Color = 0xFF0000FF
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFFFF0000
	Yellow      Color = 0xFF00FFFF
	Gray        Color = 0xFF808080
	DarkGray    Color = 0xFF404040
	LightGray   Color = 0xFFC0C0C0
	Transparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Hex parses "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Color, error) {
	var r, g, b, a uint8 = 0, 0, 0, 0xFF
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return 0, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	return RGBA(r, g, b, a), nil
}

// RGBA extracts the components of a packed color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Visible returns false for fully transparent colors.
func (c Color) Visible() bool {
	return c&0xFF000000 != 0
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
