package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
	"github.com/go-theft-auto/overlay/world"
)

type registry = overlay.Registry[*draw.List, *world.World]

func texts(dl *draw.List) []string {
	var out []string
	for _, c := range dl.Cmds() {
		if c.Kind == draw.CmdText {
			out = append(out, c.Text)
		}
	}
	return out
}

// findText returns the command that drew s.
func findText(t *testing.T, dl *draw.List, s string) draw.Cmd {
	t.Helper()
	for _, c := range dl.Cmds() {
		if c.Kind == draw.CmdText && c.Text == s {
			return c
		}
	}
	t.Fatalf("text %q not drawn; have %v", s, texts(dl))
	return draw.Cmd{}
}

// clickOn presses the left button in the middle of the command's rect.
func clickOn(in *input.State, c draw.Cmd) {
	in.Click(input.MouseButtonLeft, c.Rect.X+c.Rect.W/2, c.Rect.Y+c.Rect.H/2)
}

func TestLog_Ring(t *testing.T) {
	l := NewLog(3)
	assert.Empty(t, l.Lines())

	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Add(s)
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Cap())
	assert.Equal(t, []string{"c", "d", "e"}, l.Lines())
	assert.Equal(t, []string{"d", "e"}, l.Tail(2))
	assert.Equal(t, []string{"c", "d", "e"}, l.Tail(10))

	l.Addf("n=%d", 7)
	assert.Equal(t, []string{"d", "e", "n=7"}, l.Lines())

	assert.Equal(t, 1, NewLog(0).Cap())
}

func TestFrameStats_Observe(t *testing.T) {
	var s FrameStats
	s.Observe(0.5)
	assert.Equal(t, uint64(1), s.Frames)
	assert.InDelta(t, 2, s.FPS, 1e-6)

	s.Observe(0.25)
	assert.InDelta(t, 2.2, s.FPS, 1e-5)

	s.Observe(0)
	assert.Equal(t, uint64(3), s.Frames)
	assert.InDelta(t, 2.2, s.FPS, 1e-5, "zero delta leaves fps alone")
}

func TestStats_SetupAndDraw(t *testing.T) {
	w := world.New()
	w.Frame = 12
	w.DeltaTime = 0.02

	s := NewStats()
	dl := draw.NewList()
	open := true
	s.Draw(dl, w, &open)
	assert.Contains(t, texts(dl), "no frame stats")

	s.Setup(w)
	fs, ok := world.Get[*FrameStats](w)
	require.True(t, ok)

	dl.Reset()
	s.Draw(dl, w, &open)
	assert.Contains(t, texts(dl), "frame 12")
	assert.Contains(t, texts(dl), "fps   50.0")
	assert.Equal(t, uint64(1), fs.Frames)
	assert.True(t, open)

	// A second setup keeps the published resource.
	s.Setup(w)
	again, _ := world.Get[*FrameStats](w)
	assert.Same(t, fs, again)
}

func TestWindow_CloseBox(t *testing.T) {
	w := world.New()
	in := input.New()
	world.Insert(w, in)

	s := NewStats()
	s.Setup(w)

	dl := draw.NewList()
	open := true
	s.Draw(dl, w, &open)
	require.True(t, open)

	clickOn(in, findText(t, dl, "x"))
	dl.Reset()
	s.Draw(dl, w, &open)
	assert.False(t, open)
}

func TestConsole_PinVetoesHide(t *testing.T) {
	c := NewConsole(8)
	assert.True(t, c.OnToggleOpen(true))
	assert.False(t, c.OnToggleOpen(false))

	c.Pinned = true
	assert.True(t, c.OnToggleOpen(false))
	assert.True(t, c.OnToggleOpen(true))
}

func TestConsole_PinButton(t *testing.T) {
	w := world.New()
	in := input.New()
	world.Insert(w, in)

	c := NewConsole(8)
	c.Setup(w)
	c.Log().Add("hello")

	dl := draw.NewList()
	open := true
	c.Draw(dl, w, &open)
	assert.Contains(t, texts(dl), "hello")
	assert.Contains(t, texts(dl), "x")

	clickOn(in, findText(t, dl, "pin"))
	dl.Reset()
	c.Draw(dl, w, &open)
	assert.True(t, c.Pinned)
	assert.True(t, open)

	// Pinned consoles draw no close box.
	in.Reset()
	dl.Reset()
	c.Draw(dl, w, &open)
	assert.Contains(t, texts(dl), "unpin")
	assert.NotContains(t, texts(dl), "x")
}

func TestConsole_SetupReusesLog(t *testing.T) {
	w := world.New()
	c := NewConsole(4)
	c.Setup(w)
	c.Log().Add("kept")

	c.Setup(w)
	l, ok := world.Get[*Log](w)
	require.True(t, ok)
	assert.Same(t, c.Log(), l)
	assert.Equal(t, []string{"kept"}, l.Lines())
}

func TestLauncher_Placeholder(t *testing.T) {
	dl := draw.NewList()
	open := true
	NewLauncher().Draw(dl, world.New(), &open)
	assert.Contains(t, texts(dl), "no registry")
}

func TestLauncher_QueuesToggles(t *testing.T) {
	w := world.New()
	in := input.New()
	q := overlay.NewQueue()
	world.Insert(w, in)
	world.Insert(w, q)

	stats := NewStats()
	reg := overlay.New[*draw.List, *world.World]().
		Register(stats, false).
		Register(NewConsole(4), true).
		Register(NewLauncher(), true)
	world.Insert[Directory](w, reg)
	reg.Finalize(w)

	dl := draw.NewList()
	reg.DrawAll(dl, w)
	assert.Contains(t, texts(dl), "[ ] stats")
	assert.Contains(t, texts(dl), "[x] console")
	assert.NotContains(t, texts(dl), "[x] launcher")

	clickOn(in, findText(t, dl, "[ ] stats"))
	dl.Reset()
	reg.DrawAll(dl, w)
	// Queued, not applied mid-draw.
	open, _ := reg.IsOpen(StatsName)
	assert.False(t, open)
	require.Equal(t, 1, q.Len())

	require.NoError(t, reg.Apply(q))
	open, _ = reg.IsOpen(StatsName)
	assert.True(t, open)
}

var _ Directory = (*registry)(nil)
