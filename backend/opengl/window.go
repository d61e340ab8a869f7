package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
)

// WindowConfig describes the window to create.
type WindowConfig struct {
	Width, Height int
	Title         string
	VSync         bool
}

// Window is a GLFW window with a current GL 4.1 core context. GLFW must be
// driven from the main OS thread.
type Window struct {
	win   *glfw.Window
	input *input.State
}

// OpenWindow initializes GLFW and GL, creates the window and routes its
// input into in. Call Close when done.
func OpenWindow(cfg WindowConfig, in *input.State) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win, input: in}
	win.SetKeyCallback(w.keyCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetCloseCallback(func(*glfw.Window) { in.CloseRequested = true })
	return w, nil
}

// PollEvents delivers pending window events into the input state.
func (w *Window) PollEvents() {
	glfw.PollEvents()
	x, y := w.win.GetCursorPos()
	w.input.SetMousePos(float32(x), float32(y))
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() draw.Vec2 {
	fw, fh := w.win.GetFramebufferSize()
	return draw.Vec2{X: float32(fw), Y: float32(fh)}
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose() || w.input.CloseRequested
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := mapKey(key)
	if k == input.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mapMouseButton(button)
	if !ok {
		return
	}
	w.input.SetMouseButton(b, action == glfw.Press)
}

func (w *Window) cursorPosCallback(_ *glfw.Window, x, y float64) {
	w.input.SetMousePos(float32(x), float32(y))
}

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyTab:       input.KeyTab,
	glfw.KeyEnter:     input.KeyEnter,
	glfw.KeyEscape:    input.KeyEscape,
	glfw.KeySpace:     input.KeySpace,
	glfw.KeyBackspace: input.KeyBackspace,
	glfw.KeyUp:        input.KeyUp,
	glfw.KeyDown:      input.KeyDown,
	glfw.KeyF1:        input.KeyF1,
	glfw.KeyF2:        input.KeyF2,
	glfw.KeyF3:        input.KeyF3,
	glfw.KeyF4:        input.KeyF4,
	glfw.KeyF5:        input.KeyF5,
	glfw.KeyF6:        input.KeyF6,
	glfw.KeyF7:        input.KeyF7,
	glfw.KeyF8:        input.KeyF8,
	glfw.KeyF9:        input.KeyF9,
	glfw.KeyF10:       input.KeyF10,
	glfw.KeyF11:       input.KeyF11,
	glfw.KeyF12:       input.KeyF12,
}

func mapKey(key glfw.Key) input.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return input.KeyNone
}

func mapMouseButton(button glfw.MouseButton) (input.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return input.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return input.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
