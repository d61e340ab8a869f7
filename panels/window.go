// Package panels contains the overlay panels bundled with the demo host.
// They draw into a *draw.List and read shared state from a *world.World.
package panels

import (
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
	"github.com/go-theft-auto/overlay/world"
)

// Window colors.
var (
	windowBg     = draw.RGBA(18, 18, 24, 230)
	windowBorder = draw.RGBA(90, 90, 110, 255)
	titleBg      = draw.RGBA(36, 56, 104, 255)
	titleText    = draw.White
	bodyText     = draw.LightGray
	dimText      = draw.Gray
	buttonBg     = draw.RGBA(50, 50, 64, 255)
	buttonHover  = draw.RGBA(70, 70, 92, 255)
	closeBg      = draw.RGBA(150, 40, 40, 255)
)

const (
	padding     float32 = 4
	lineGap     float32 = 2
	titleHeight         = draw.GlyphHeight + 2*padding
)

// window lays out one panel frame: a title bar with an optional close box
// and a clipped body that widgets stack into top to bottom.
type window struct {
	dl     *draw.List
	in     *input.State
	body   draw.Rect
	cursor draw.Vec2
}

// beginWindow draws the frame and handles the close box. Passing a nil
// open pointer omits the close box. Call end when the body is done.
func beginWindow(dl *draw.List, w *world.World, title string, bounds draw.Rect, open *bool) *window {
	in, _ := world.Get[*input.State](w)

	dl.AddRect(bounds, windowBg)
	dl.AddRectOutline(bounds, windowBorder, 1)

	bar := draw.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: titleHeight}
	dl.AddRect(bar, titleBg)
	dl.AddText(draw.Vec2{X: bar.X + padding, Y: bar.Y + padding}, title, titleText)

	if open != nil {
		size := titleHeight - 2*lineGap
		box := draw.Rect{X: bar.X + bar.W - size - lineGap, Y: bar.Y + lineGap, W: size, H: size}
		dl.AddRect(box, closeBg)
		dl.AddText(draw.Vec2{X: box.X + (size-draw.GlyphWidth)/2, Y: box.Y + (size-draw.GlyphHeight)/2}, "x", titleText)
		if clicked(in, box) {
			*open = false
		}
	}

	body := draw.Rect{X: bounds.X, Y: bounds.Y + titleHeight, W: bounds.W, H: bounds.H - titleHeight}.Inset(padding)
	dl.PushClip(body)
	return &window{
		dl:     dl,
		in:     in,
		body:   body,
		cursor: draw.Vec2{X: body.X, Y: body.Y},
	}
}

func (win *window) end() {
	win.dl.PopClip()
}

// full reports whether another line would start below the body.
func (win *window) full() bool {
	return win.cursor.Y+draw.GlyphHeight > win.body.Y+win.body.H
}

// text adds one line of text.
func (win *window) text(s string, c draw.Color) {
	win.dl.AddText(win.cursor, s, c)
	win.cursor.Y += draw.GlyphHeight + lineGap
}

// button adds a one-line button and returns true if it was clicked this frame.
func (win *window) button(label string) bool {
	size := draw.MeasureText(label)
	r := draw.Rect{X: win.cursor.X, Y: win.cursor.Y, W: size.X + 2*padding, H: size.Y + lineGap}

	bg := buttonBg
	if hovered(win.in, r) {
		bg = buttonHover
	}
	win.dl.AddRect(r, bg)
	win.dl.AddText(draw.Vec2{X: r.X + padding, Y: r.Y + lineGap/2}, label, titleText)
	win.cursor.Y += r.H + lineGap

	return clicked(win.in, r.Intersect(win.body))
}

func hovered(in *input.State, r draw.Rect) bool {
	return in != nil && r.Contains(draw.Vec2{X: in.MouseX, Y: in.MouseY})
}

func clicked(in *input.State, r draw.Rect) bool {
	return hovered(in, r) && in.MouseClicked(input.MouseButtonLeft)
}
