package mesh

import (
	"github.com/go-theft-auto/overlay/draw"
)

// Vertex is the GPU vertex layout: position, texture coordinate and packed
// 0xAABBGGRR color.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color uint32
}

// Batch is a run of indices sharing one clip rectangle.
type Batch struct {
	Clip        draw.Rect
	IndexOffset int
	IndexCount  int
}

// Mesh holds the tessellated frame. Buffers are reused across Build calls.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Batches  []Batch
}

// Build replaces the mesh contents with the tessellation of dl.
func (m *Mesh) Build(dl *draw.List, atlas *Atlas) {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Batches = m.Batches[:0]
	if dl == nil {
		return
	}

	white := atlas.White()
	for _, c := range dl.Cmds() {
		m.clip(c.Clip)
		switch c.Kind {
		case draw.CmdRect:
			m.quad(c.Rect, white, c.Color)
		case draw.CmdRectOutline:
			t := min(c.Thickness, c.Rect.W/2, c.Rect.H/2)
			r := c.Rect
			m.quad(draw.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, white, c.Color)
			m.quad(draw.Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, white, c.Color)
			m.quad(draw.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, white, c.Color)
			m.quad(draw.Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, white, c.Color)
		case draw.CmdText:
			x := c.Rect.X
			for _, r := range c.Text {
				if r != ' ' {
					m.quad(draw.Rect{X: x, Y: c.Rect.Y, W: draw.GlyphWidth, H: draw.GlyphHeight}, atlas.Glyph(r), c.Color)
				}
				x += draw.GlyphWidth
			}
		}
	}

	// Drop batches that ended up without geometry.
	n := 0
	for _, b := range m.Batches {
		if b.IndexCount > 0 {
			m.Batches[n] = b
			n++
		}
	}
	m.Batches = m.Batches[:n]
}

// clip starts a new batch when the clip rectangle changes.
func (m *Mesh) clip(r draw.Rect) {
	if n := len(m.Batches); n > 0 && m.Batches[n-1].Clip == r {
		return
	}
	m.Batches = append(m.Batches, Batch{Clip: r, IndexOffset: len(m.Indices)})
}

func (m *Mesh) quad(r draw.Rect, uv UV, c draw.Color) {
	if r.Empty() {
		return
	}
	base := uint32(len(m.Vertices))
	col := uint32(c)
	m.Vertices = append(m.Vertices,
		Vertex{Pos: [2]float32{r.X, r.Y}, UV: [2]float32{uv.U0, uv.V0}, Color: col},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, UV: [2]float32{uv.U1, uv.V0}, Color: col},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, UV: [2]float32{uv.U1, uv.V1}, Color: col},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, UV: [2]float32{uv.U0, uv.V1}, Color: col},
	)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	m.Batches[len(m.Batches)-1].IndexCount += 6
}
