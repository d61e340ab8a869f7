package panels

import (
	"fmt"

	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/world"
)

// ConsoleName is the registry name of the Console panel.
const ConsoleName = "console"

// Log is a bounded buffer of console lines. The oldest line is dropped
// once the capacity is reached.
type Log struct {
	lines []string
	start int
	n     int
}

// NewLog creates a Log holding at most capacity lines (minimum 1).
func NewLog(capacity int) *Log {
	return &Log{lines: make([]string, max(capacity, 1))}
}

// Add appends a line.
func (l *Log) Add(line string) {
	idx := (l.start + l.n) % len(l.lines)
	l.lines[idx] = line
	if l.n < len(l.lines) {
		l.n++
		return
	}
	l.start = (l.start + 1) % len(l.lines)
}

// Addf appends a formatted line.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Len returns the number of buffered lines.
func (l *Log) Len() int { return l.n }

// Cap returns the capacity.
func (l *Log) Cap() int { return len(l.lines) }

// Lines returns the buffered lines, oldest first.
func (l *Log) Lines() []string {
	out := make([]string, l.n)
	for i := range out {
		out[i] = l.lines[(l.start+i)%len(l.lines)]
	}
	return out
}

// Tail returns up to n of the newest lines, oldest first.
func (l *Log) Tail(n int) []string {
	lines := l.Lines()
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// Console shows recent Log lines. While pinned it refuses to be hidden
// and drops its close box.
type Console struct {
	Bounds   draw.Rect
	Pinned   bool
	capacity int
	log      *Log
}

// NewConsole creates a Console whose Log keeps capacity lines.
func NewConsole(capacity int) *Console {
	return &Console{
		Bounds:   draw.Rect{X: 8, Y: 96, W: 360, H: 200},
		capacity: capacity,
	}
}

func (c *Console) Name() string { return ConsoleName }

// Log returns the console's buffer, or nil before Setup.
func (c *Console) Log() *Log { return c.log }

// Setup publishes a *Log resource, reusing one already in the world so
// lines survive a second setup pass.
func (c *Console) Setup(w *world.World) {
	if l, ok := world.Get[*Log](w); ok {
		c.log = l
		return
	}
	c.log = NewLog(c.capacity)
	world.Insert(w, c.log)
}

// OnToggleOpen keeps a pinned console open.
func (c *Console) OnToggleOpen(requested bool) bool {
	if !requested && c.Pinned {
		return true
	}
	return requested
}

func (c *Console) Draw(dl *draw.List, w *world.World, open *bool) {
	closeBox := open
	if c.Pinned {
		closeBox = nil
	}
	win := beginWindow(dl, w, "Console", c.Bounds, closeBox)
	defer win.end()

	label := "pin"
	if c.Pinned {
		label = "unpin"
	}
	if win.button(label) {
		c.Pinned = !c.Pinned
	}

	if c.log == nil || c.log.Len() == 0 {
		win.text("(empty)", dimText)
		return
	}
	rows := int((win.body.Y + win.body.H - win.cursor.Y) / (draw.GlyphHeight + lineGap))
	for _, line := range c.log.Tail(max(rows, 0)) {
		if win.full() {
			break
		}
		win.text(line, bodyText)
	}
}
