package panels

import (
	"github.com/go-theft-auto/overlay"
	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/world"
)

// LauncherName is the registry name of the Launcher panel.
const LauncherName = "launcher"

// Directory lists panels. *overlay.Registry satisfies it.
type Directory interface {
	Entries() []overlay.Entry
}

// Launcher lists every other panel with a button that toggles it. Toggles
// are queued on the *overlay.Queue resource and applied after the draw
// pass. It needs a Directory and an *overlay.Queue in the world.
type Launcher struct {
	Bounds draw.Rect
}

// NewLauncher creates a Launcher in the top-right area.
func NewLauncher() *Launcher {
	return &Launcher{Bounds: draw.Rect{X: 380, Y: 8, W: 160, H: 120}}
}

func (l *Launcher) Name() string { return LauncherName }

func (l *Launcher) Draw(dl *draw.List, w *world.World, open *bool) {
	win := beginWindow(dl, w, "Panels", l.Bounds, open)
	defer win.end()

	dir, ok := world.Get[Directory](w)
	q, qok := world.Get[*overlay.Queue](w)
	if !ok || !qok || dir == nil || q == nil {
		win.text("no registry", dimText)
		return
	}

	for _, e := range dir.Entries() {
		if e.Name == LauncherName {
			continue
		}
		if win.full() {
			break
		}
		mark := "[ ] "
		if e.Open {
			mark = "[x] "
		}
		if win.button(mark + e.Name) {
			q.RequestToggle(e.Name)
		}
	}
}
