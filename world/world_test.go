package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type score struct{ points int }

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestWorld_InsertGet(t *testing.T) {
	w := New()
	Insert(w, &score{points: 3})

	s, ok := Get[*score](w)
	require.True(t, ok)
	assert.Equal(t, 3, s.points)

	// Pointer and value types are distinct keys.
	_, ok = Get[score](w)
	assert.False(t, ok)

	Insert(w, &score{points: 9})
	s, _ = Get[*score](w)
	assert.Equal(t, 9, s.points, "insert replaces")
	assert.Equal(t, 1, w.Len())
}

func TestWorld_InterfaceKeys(t *testing.T) {
	w := New()
	Insert[greeter](w, english{})

	g, ok := Get[greeter](w)
	require.True(t, ok)
	assert.Equal(t, "hello", g.Greet())

	_, ok = Get[english](w)
	assert.False(t, ok, "stored under the interface type only")
}

func TestWorld_RemoveHasGetOr(t *testing.T) {
	w := New()
	assert.False(t, Has[int](w))
	assert.Equal(t, 7, GetOr(w, 7))

	Insert(w, 42)
	assert.True(t, Has[int](w))
	assert.Equal(t, 42, GetOr(w, 7))

	Remove[int](w)
	assert.False(t, Has[int](w))
	assert.Zero(t, w.Len())
}

func TestWorld_ZeroValue(t *testing.T) {
	var w World
	_, ok := Get[string](&w)
	assert.False(t, ok)

	Insert(&w, "x")
	v, ok := Get[string](&w)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
