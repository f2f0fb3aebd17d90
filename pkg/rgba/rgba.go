// Package rgba composes a solid color with a tile's alpha channel into a
// premultiplied RGBA tile, the trivial final step that turns a fill's
// alpha mask into paintable pixels.
package rgba

import (
	"image"
	"image/color"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

// Tile is an N×N tile of premultiplied-alpha RGBA pixels, each channel a
// fix15 value. Pixels outside the bounding box passed to Fill are left at
// zero (fully transparent).
type Tile struct {
	r, g, b, a tile.Buffer[fix15.T]
}

func newTile() *Tile {
	n := tile.N
	return &Tile{
		r: tile.NewBuffer(make([]fix15.T, n*n), n, n, n),
		g: tile.NewBuffer(make([]fix15.T, n*n), n, n, n),
		b: tile.NewBuffer(make([]fix15.T, n*n), n, n, n),
		a: tile.NewBuffer(make([]fix15.T, n*n), n, n, n),
	}
}

// At returns the premultiplied (r, g, b, a) fix15 channels at (x, y).
func (t *Tile) At(x, y int) (r, g, b, a fix15.T) {
	return t.r.At(x, y), t.g.At(x, y), t.b.At(x, y), t.a.At(x, y)
}

// Fill composes fillR, fillG, fillB (each in [0, 1]) with srcAlpha's alpha
// channel over the inclusive pixel rectangle [minX, maxX] x [minY, maxY],
// writing premultiplied fix15 channels into a freshly allocated Tile.
// Pixels outside the rectangle are left fully transparent.
func Fill(srcAlpha *tile.Tile, fillR, fillG, fillB float64, minX, minY, maxX, maxY int) *Tile {
	out := newTile()
	fr := fix15.Clamp(int32(fillR * float64(fix15.One)))
	fg := fix15.Clamp(int32(fillG * float64(fix15.One)))
	fb := fix15.Clamp(int32(fillB * float64(fix15.One)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a := srcAlpha.At(x, y)
			out.r.Set(x, y, fix15.Mul(fr, a))
			out.g.Set(x, y, fix15.Mul(fg, a))
			out.b.Set(x, y, fix15.Mul(fb, a))
			out.a.Set(x, y, a)
		}
	}
	return out
}

// ToImage converts the premultiplied fix15 tile into a standard-library
// *image.RGBA, which is itself premultiplied, rounding each channel down
// to 8 bits.
func (t *Tile) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tile.N, tile.N))
	for y := 0; y < tile.N; y++ {
		for x := 0; x < tile.N; x++ {
			r, g, b, a := t.At(x, y)
			img.Set(x, y, color.RGBA{
				R: to8(r),
				G: to8(g),
				B: to8(b),
				A: to8(a),
			})
		}
	}
	return img
}

// to8 scales a 15-bit premultiplied channel down to 8 bits, mapping
// fix15.One to 255.
func to8(v fix15.T) uint8 {
	return uint8((uint32(v) * 255) >> 15)
}
