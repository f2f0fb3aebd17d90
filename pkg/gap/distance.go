// Package gap detects short transparent paths ("gaps") between opaque
// pixels that a later fill pass can close, scanning diagonally across
// tile boundaries via the same nine-grid working window the morphology
// and blur kernels use.
package gap

import "github.com/inkwell/tilepost/pkg/tile"

// Sentinel marks a pixel with no detected gap: the maximum value the
// distance channel can hold.
const Sentinel uint16 = 1<<16 - 1

// DistanceTile is an N×N tile of squared gap-closing distances. Unlike
// the alpha tiles the rest of this module operates on, its channel has
// no fix15 interpretation — each value is an exact squared pixel
// distance, or Sentinel for "no gap here".
type DistanceTile struct {
	buf tile.Buffer[uint16]
}

// NewDistanceTile allocates a DistanceTile with every pixel set to
// Sentinel.
func NewDistanceTile() *DistanceTile {
	data := make([]uint16, tile.N*tile.N)
	for i := range data {
		data[i] = Sentinel
	}
	return &DistanceTile{buf: tile.NewBuffer(data, tile.N, tile.N, tile.N)}
}

// At returns the squared gap-closing distance at (x, y), or Sentinel.
func (d *DistanceTile) At(x, y int) uint16 { return d.buf.At(x, y) }

func (d *DistanceTile) updateMin(x, y int, dist int) {
	if x < 0 || x > tile.N-1 || y < 0 || y > tile.N-1 {
		return
	}
	if cur := d.buf.At(x, y); int(cur) > dist {
		d.buf.Set(x, y, uint16(dist))
	}
}

// ResultMap is the gap detector's output: one DistanceTile per coordinate
// that was actually searched.
type ResultMap map[tile.Coord]*DistanceTile
