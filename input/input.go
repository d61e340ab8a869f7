// Package input holds the per-frame input snapshot that backends fill in
// and panels read through the shared application state.
package input

import "strings"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the overlay cares about.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyUp
	KeyDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeySpace:     "Space",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// ParseKey looks a key up by name, case-insensitively. "Escape" is
// accepted as an alias of "Esc". Returns false for unknown names.
func ParseKey(name string) (Key, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "escape") {
		return KeyEscape, true
	}
	for k := KeyTab; k < KeyCount; k++ {
		if strings.EqualFold(keyNames[k], name) {
			return k, true
		}
	}
	return KeyNone, false
}

// State holds input for the current frame.
// Edge flags (clicked, released, pressed) stay set until Reset, so an
// event that arrives between two frames is still seen by the next one.
type State struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	// CloseRequested is set by the backend when the window manager asks
	// the application to quit.
	CloseRequested bool
}

// New creates an empty State.
func New() *State {
	return &State{}
}

// Reset clears per-frame edge state. Call this after a frame has been
// drawn and before collecting the next frame's events.
func (s *State) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
}

// SetMousePos sets the mouse position.
func (s *State) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button transition.
func (s *State) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	was := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !was {
		s.mouseClicked[button] = true
	}
	if !down && was {
		s.mouseUp[button] = true
	}
}

// SetKey records a key transition.
func (s *State) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	was := s.keyDown[key]
	s.keyDown[key] = down
	if down && !was {
		s.keyPressed[key] = true
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *State) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button went down since the last Reset.
func (s *State) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button went up since the last Reset.
func (s *State) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *State) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key went down since the last Reset.
func (s *State) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// Click marks a full press-and-release of button at (x, y). Backends that
// only see discrete click events (terminals) use this.
func (s *State) Click(button MouseButton, x, y float32) {
	s.SetMousePos(x, y)
	s.SetMouseButton(button, true)
	s.SetMouseButton(button, false)
}
