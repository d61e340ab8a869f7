// Package mesh turns a draw.List into an indexed triangle mesh textured by a
// single glyph atlas. It has no GPU dependency; GPU backends upload the
// result as-is.
package mesh

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	overlaydraw "github.com/go-theft-auto/overlay/draw"
)

// Atlas layout: printable ASCII in a 16-column grid of glyph cells. The
// cell of DEL (0x7F) is filled solid and serves as the white texel for
// untextured geometry.
const (
	firstGlyph = 0x20
	lastGlyph  = 0x7F
	atlasCols  = 16
	atlasRows  = (lastGlyph - firstGlyph + atlasCols) / atlasCols

	cellW = int(overlaydraw.GlyphWidth)
	cellH = int(overlaydraw.GlyphHeight)
)

// UV is a texture coordinate rectangle.
type UV struct {
	U0, V0, U1, V1 float32
}

// Atlas is a single-channel coverage texture.
type Atlas struct {
	Width, Height int
	Pixels        []byte // Width*Height, row-major, 0 = empty, 255 = solid
}

// NewAtlas rasterizes the built-in 7x13 bitmap font.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, atlasRows*cellH))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for c := firstGlyph; c < lastGlyph; c++ {
		x, y := cellOrigin(rune(c))
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(c)))
	}

	wx, wy := cellOrigin(lastGlyph)
	draw.Draw(img, image.Rect(wx, wy, wx+cellW, wy+cellH), image.Opaque, image.Point{}, draw.Src)

	return &Atlas{Width: img.Rect.Dx(), Height: img.Rect.Dy(), Pixels: img.Pix}
}

func cellOrigin(r rune) (x, y int) {
	i := int(r - firstGlyph)
	return (i % atlasCols) * cellW, (i / atlasCols) * cellH
}

// Glyph returns the UV rectangle of r. Runes outside printable ASCII map to
// '?'.
func (a *Atlas) Glyph(r rune) UV {
	if r < firstGlyph || r >= lastGlyph {
		r = '?'
	}
	x, y := cellOrigin(r)
	return a.uv(x, y, cellW, cellH)
}

// White returns a UV rectangle inside the solid cell.
func (a *Atlas) White() UV {
	x, y := cellOrigin(lastGlyph)
	return a.uv(x+cellW/2, y+cellH/2, 0, 0)
}

// At returns the coverage at pixel (x, y).
func (a *Atlas) At(x, y int) byte {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return 0
	}
	return a.Pixels[y*a.Width+x]
}

func (a *Atlas) uv(x, y, w, h int) UV {
	fw, fh := float32(a.Width), float32(a.Height)
	return UV{
		U0: float32(x) / fw,
		V0: float32(y) / fh,
		U1: float32(x+w) / fw,
		V1: float32(y+h) / fh,
	}
}
