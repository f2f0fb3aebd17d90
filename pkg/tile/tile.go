// Package tile defines the sparse tile grid this module operates on: a
// fixed-size alpha tile, its coordinate key, the map callers hand in, and
// the strand chains the scheduler partitions work across.
package tile

import (
	"sync"

	"github.com/inkwell/tilepost/pkg/fix15"
)

// N is the tile edge length. It is a build-time constant per spec.md §1 —
// dynamic tile sizing is explicitly a non-goal.
const N = 64

// Tile is an N×N array of fix15 alpha values. Once handed to the core a
// Tile is treated as immutable; every producer allocates a fresh one.
type Tile struct {
	pix Buffer[fix15.T]
}

// NewTile allocates a fresh, zero-filled (fully transparent) tile.
func NewTile() *Tile {
	return &Tile{pix: NewBuffer(make([]fix15.T, N*N), N, N, N)}
}

// NewUniform allocates a tile with every pixel set to v.
func NewUniform(v fix15.T) *Tile {
	t := NewTile()
	for i := range t.pix.data {
		t.pix.data[i] = v
	}
	return t
}

// At returns the alpha value at (x, y), 0 <= x, y < N.
func (t *Tile) At(x, y int) fix15.T {
	return t.pix.At(x, y)
}

// Set writes the alpha value at (x, y). Only valid while the tile is still
// being constructed by its producer, before it is published to a Map.
func (t *Tile) Set(x, y int, v fix15.T) {
	t.pix.Set(x, y, v)
}

// Buffer exposes the tile's backing pixel buffer for use by the
// working-window filler and the morphology/blur/gap kernels.
func (t *Tile) Buffer() *Buffer[fix15.T] {
	return &t.pix
}

// IsUniform reports whether every pixel in the tile equals v.
func (t *Tile) IsUniform(v fix15.T) bool {
	for _, p := range t.pix.data {
		if p != v {
			return false
		}
	}
	return true
}

// Equal reports whether two tiles have identical pixel contents.
func (t *Tile) Equal(o *Tile) bool {
	if t == o {
		return true
	}
	if o == nil {
		return false
	}
	for i, v := range t.pix.data {
		if o.pix.data[i] != v {
			return false
		}
	}
	return true
}

var (
	transparentOnce sync.Once
	transparentTile *Tile

	opaqueOnce sync.Once
	opaqueTile *Tile
)

// Transparent returns the process-unique, fully transparent singleton tile.
// Repeated calls return the identical pointer (spec.md invariant 2).
func Transparent() *Tile {
	transparentOnce.Do(func() {
		transparentTile = NewUniform(fix15.Zero)
	})
	return transparentTile
}

// Opaque returns the process-unique, fully opaque singleton tile.
// Repeated calls return the identical pointer (spec.md invariant 2).
func Opaque() *Tile {
	opaqueOnce.Do(func() {
		opaqueTile = NewUniform(fix15.One)
	})
	return opaqueTile
}

// Coord is a tile grid coordinate, used only as a Map key.
type Coord struct {
	X, Y int32
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int32) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Map is the caller-supplied coordinate-keyed tile set. It is read-only for
// the duration of any core operation; callers must not mutate it
// concurrently with a running Morph/Blur/FindGaps call (spec.md §5).
type Map map[Coord]*Tile

// Strand is an ordered chain of vertically adjacent tile coordinates,
// (x,y), (x,y+1), (x,y+2), ... — the reuse contract that lets the
// working-window filler reuse the bottom 2r rows of tile k as the top 2r
// rows of tile k+1 (spec.md §3).
type Strand []Coord

// StrandList is the scheduler's ordered work queue.
type StrandList []Strand
