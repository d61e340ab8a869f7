package draw

import (
	"sync"
	"unicode/utf8"
)

// Fixed glyph cell of the built-in bitmap font. Backends that rasterize
// text use the same metrics so layout matches everywhere.
const (
	GlyphWidth  float32 = 7
	GlyphHeight float32 = 13
)

// CmdKind identifies the primitive a Cmd draws.
type CmdKind uint8

const (
	CmdRect CmdKind = iota
	CmdRectOutline
	CmdText
)

// Cmd is one recorded primitive.
type Cmd struct {
	Kind      CmdKind
	Rect      Rect    // Bounds (text: origin and measured size)
	Color     Color   // Fill, stroke or text color
	Thickness float32 // Outline only
	Text      string  // Text only
	Clip      Rect    // Clip rectangle active when the command was recorded
}

// noClip is the clip rectangle used outside any PushClip.
var noClip = Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}

// listPool avoids reallocating command buffers every frame.
var listPool = sync.Pool{
	New: func() any {
		return &List{
			cmds:      make([]Cmd, 0, 256),
			clipStack: make([]Rect, 0, 8),
		}
	},
}

// Acquire gets a cleared List from the pool.
// Call Release when the frame has been rendered.
func Acquire() *List {
	l := listPool.Get().(*List)
	l.Reset()
	return l
}

// Release returns a List to the pool for reuse.
func Release(l *List) {
	if l != nil {
		listPool.Put(l)
	}
}

// List accumulates draw commands for one frame.
// The zero value is ready to use.
type List struct {
	cmds      []Cmd
	clipStack []Rect
	clip      Rect
	clipSet   bool
}

// NewList creates an empty List.
func NewList() *List {
	l := &List{}
	l.Reset()
	return l
}

// Reset clears the list for a new frame, keeping allocated capacity.
func (l *List) Reset() {
	l.cmds = l.cmds[:0]
	l.clipStack = l.clipStack[:0]
	l.clip = noClip
	l.clipSet = true
}

func (l *List) currentClip() Rect {
	if !l.clipSet {
		return noClip
	}
	return l.clip
}

// PushClip restricts subsequent primitives to r (intersected with the
// current clip).
func (l *List) PushClip(r Rect) {
	cur := l.currentClip()
	l.clipStack = append(l.clipStack, cur)
	l.clip = cur.Intersect(r)
	l.clipSet = true
}

// PopClip restores the previous clip rectangle. Extra pops are ignored.
func (l *List) PopClip() {
	n := len(l.clipStack)
	if n == 0 {
		return
	}
	l.clip = l.clipStack[n-1]
	l.clipStack = l.clipStack[:n-1]
}

// AddRect records a filled rectangle.
func (l *List) AddRect(r Rect, c Color) {
	if !c.Visible() || r.Empty() {
		return
	}
	l.cmds = append(l.cmds, Cmd{Kind: CmdRect, Rect: r, Color: c, Clip: l.currentClip()})
}

// AddRectOutline records a rectangle outline of the given thickness.
func (l *List) AddRectOutline(r Rect, c Color, thickness float32) {
	if !c.Visible() || r.Empty() || thickness <= 0 {
		return
	}
	l.cmds = append(l.cmds, Cmd{Kind: CmdRectOutline, Rect: r, Color: c, Thickness: thickness, Clip: l.currentClip()})
}

// AddText records a single line of text with its top-left corner at pos.
func (l *List) AddText(pos Vec2, text string, c Color) {
	if !c.Visible() || text == "" {
		return
	}
	size := MeasureText(text)
	l.cmds = append(l.cmds, Cmd{
		Kind:  CmdText,
		Rect:  Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y},
		Color: c,
		Text:  text,
		Clip:  l.currentClip(),
	})
}

// Cmds returns the recorded commands. The slice is only valid until the
// next Reset.
func (l *List) Cmds() []Cmd {
	return l.cmds
}

// Len returns the number of recorded commands.
func (l *List) Len() int {
	return len(l.cmds)
}

// MeasureText returns the size of one line of text in the built-in font.
func MeasureText(text string) Vec2 {
	return Vec2{X: float32(utf8.RuneCountInString(text)) * GlyphWidth, Y: GlyphHeight}
}
