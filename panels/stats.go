package panels

import (
	"fmt"

	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/world"
)

// StatsName is the registry name of the Stats panel.
const StatsName = "stats"

// FrameStats is the frame timing resource the Stats panel publishes.
type FrameStats struct {
	Frames uint64
	FPS    float32 // Exponentially smoothed
	Delta  float32 // Last frame time in seconds
}

// smoothing is the weight of the newest sample in the FPS average.
const smoothing = 0.1

// Observe folds one frame of delta seconds into the stats.
func (s *FrameStats) Observe(delta float32) {
	s.Frames++
	s.Delta = delta
	if delta <= 0 {
		return
	}
	fps := 1 / delta
	if s.FPS == 0 {
		s.FPS = fps
		return
	}
	s.FPS += (fps - s.FPS) * smoothing
}

// Stats shows frame timing.
type Stats struct {
	Bounds draw.Rect
	stats  *FrameStats
}

// NewStats creates a Stats panel in the top-left corner.
func NewStats() *Stats {
	return &Stats{Bounds: draw.Rect{X: 8, Y: 8, W: 180, H: 80}}
}

func (s *Stats) Name() string { return StatsName }

// Setup publishes a *FrameStats resource, reusing one already in the world.
func (s *Stats) Setup(w *world.World) {
	if fs, ok := world.Get[*FrameStats](w); ok {
		s.stats = fs
		return
	}
	s.stats = &FrameStats{}
	world.Insert(w, s.stats)
}

func (s *Stats) Draw(dl *draw.List, w *world.World, open *bool) {
	win := beginWindow(dl, w, "Stats", s.Bounds, open)
	defer win.end()

	if s.stats == nil {
		win.text("no frame stats", dimText)
		return
	}
	s.stats.Observe(w.DeltaTime)

	win.text(fmt.Sprintf("frame %d", w.Frame), bodyText)
	win.text(fmt.Sprintf("fps   %.1f", s.stats.FPS), bodyText)
	win.text(fmt.Sprintf("dt    %.2f ms", s.stats.Delta*1000), bodyText)
}
