// Package world provides the shared application state handed to overlay
// panels: frame timing plus a type-keyed resource store.
package world

import (
	"reflect"

	"github.com/go-theft-auto/overlay/draw"
)

// World is owned by the host and passed to every panel's Setup and Draw.
// It is not safe for concurrent use.
type World struct {
	Frame       uint64    // Frames drawn so far
	DeltaTime   float32   // Seconds since the previous frame
	DisplaySize draw.Vec2 // Current viewport size in pixels

	resources map[reflect.Type]any
}

// New creates an empty World.
func New() *World {
	return &World{resources: make(map[reflect.Type]any)}
}

// Len returns the number of stored resources.
func (w *World) Len() int {
	return len(w.resources)
}

// Insert stores v as the resource of type T, replacing any previous one.
func Insert[T any](w *World, v T) {
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	w.resources[reflect.TypeFor[T]()] = v
}

// Get returns the resource of type T.
func Get[T any](w *World) (T, bool) {
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOr returns the resource of type T, or def if it is missing.
func GetOr[T any](w *World, def T) T {
	if v, ok := Get[T](w); ok {
		return v
	}
	return def
}

// Has reports whether a resource of type T is stored.
func Has[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}

// Remove deletes the resource of type T.
func Remove[T any](w *World) {
	delete(w.resources, reflect.TypeFor[T]())
}
