package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_MouseEdges(t *testing.T) {
	s := New()
	s.SetMouseButton(MouseButtonLeft, true)
	assert.True(t, s.MouseClicked(MouseButtonLeft))
	assert.True(t, s.MouseDown(MouseButtonLeft))

	// Holding does not re-trigger the click edge.
	s.Reset()
	s.SetMouseButton(MouseButtonLeft, true)
	assert.False(t, s.MouseClicked(MouseButtonLeft))

	s.SetMouseButton(MouseButtonLeft, false)
	assert.True(t, s.MouseReleased(MouseButtonLeft))
	assert.False(t, s.MouseDown(MouseButtonLeft))
}

func TestState_ClickSurvivesUntilReset(t *testing.T) {
	s := New()
	s.Click(MouseButtonLeft, 12, 34)

	assert.True(t, s.MouseClicked(MouseButtonLeft))
	assert.False(t, s.MouseDown(MouseButtonLeft))
	assert.Equal(t, float32(12), s.MouseX)
	assert.Equal(t, float32(34), s.MouseY)

	s.Reset()
	assert.False(t, s.MouseClicked(MouseButtonLeft))
}

func TestState_Keys(t *testing.T) {
	s := New()
	s.SetKey(KeyF1, true)
	assert.True(t, s.KeyPressed(KeyF1))
	assert.True(t, s.KeyDown(KeyF1))

	s.Reset()
	assert.False(t, s.KeyPressed(KeyF1))
	assert.True(t, s.KeyDown(KeyF1))

	s.SetKey(KeyF1, false)
	assert.False(t, s.KeyDown(KeyF1))
}

func TestState_OutOfRangeIgnored(t *testing.T) {
	s := New()
	s.SetKey(KeyCount, true)
	s.SetKey(KeyNone, true)
	s.SetMouseButton(MouseButtonCount, true)

	assert.False(t, s.KeyPressed(KeyCount))
	assert.False(t, s.KeyPressed(KeyNone))
	assert.False(t, s.MouseClicked(MouseButtonCount))
	assert.False(t, s.MouseDown(-1))
}

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"F1":     KeyF1,
		"f12":    KeyF12,
		" tab ":  KeyTab,
		"Esc":    KeyEscape,
		"escape": KeyEscape,
	}
	for name, want := range cases {
		got, ok := ParseKey(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseKey("Hyper")
	assert.False(t, ok)
	_, ok = ParseKey("--")
	assert.False(t, ok, "KeyNone is not bindable")
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "F3", KeyF3.String())
	assert.Equal(t, "?", Key(-1).String())
}
