// Package ninegrid assembles the eight-neighbor context of a tile and fills
// the contiguous working window the morphology, blur, and gap kernels scan
// over.
package ninegrid

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

// Slot indices, fixed and total per spec.md §3 invariant 3: every
// implementation must agree on this order bit-for-bit.
const (
	Center = 0
	North  = 1
	East   = 2
	South  = 3
	West   = 4
	NorthEast = 5
	SouthEast = 6
	SouthWest = 7
	NorthWest = 8
)

// offsets gives the (dx, dy) of each slot relative to the center coordinate,
// in the same fixed order as the Slot constants above.
var offsets = [9][2]int32{
	{0, 0},   // Center
	{0, -1},  // North
	{1, 0},   // East
	{0, 1},   // South
	{-1, 0},  // West
	{1, -1},  // NorthEast
	{1, 1},   // SouthEast
	{-1, 1},  // SouthWest
	{-1, -1}, // NorthWest
}

// Grid is the tile plus its eight neighbors, in fixed slot order. Missing
// neighbors resolve to the TRANSPARENT singleton.
type Grid [9]*tile.Tile

// Assemble builds the nine-grid for coord out of m. It performs no
// allocation beyond the temporary Coord values used as map keys.
func Assemble(coord tile.Coord, m tile.Map) Grid {
	var g Grid
	for slot, off := range offsets {
		c := tile.Coord{X: coord.X + off[0], Y: coord.Y + off[1]}
		if t, ok := m[c]; ok {
			g[slot] = t
		} else {
			g[slot] = tile.Transparent()
		}
	}
	return g
}

// Window is a contiguous (N+2r)×(N+2r) working window reconstructed from a
// Grid. It is owned by exactly one worker Bucket and reused across every
// tile in a strand.
type Window struct {
	radius int
	size   int
	buf    tile.Buffer[fix15.T]
	data   []fix15.T
}

// NewWindow allocates a working window for the given morphology/blur/gap
// radius.
func NewWindow(radius int) *Window {
	size := tile.N + 2*radius
	data := make([]fix15.T, size*size)
	return &Window{
		radius: radius,
		size:   size,
		buf:    tile.NewBuffer(data, size, size, size),
		data:   data,
	}
}

// Size returns the window edge length, N+2r.
func (w *Window) Size() int { return w.size }

// Radius returns the window's radius.
func (w *Window) Radius() int { return w.radius }

// At reads the window pixel at (x, y), 0 <= x, y < Size().
func (w *Window) At(x, y int) fix15.T {
	return w.buf.At(x, y)
}

// Fill reconstructs the window from scratch out of the nine-grid g.
func (w *Window) Fill(g Grid) {
	w.fillRows(g, 0, w.size)
}

// FillIncremental implements the from_above fast path: the top 2r rows of
// the window are rebound from what were the bottom 2r rows of the previous
// call, and only the remaining rows are refilled from the nine-grid. This
// is the single most important performance contract of strand processing —
// callers must pass fromAbove=true for every tile after the first in a
// vertically contiguous run (spec.md §4.1).
func (w *Window) FillIncremental(g Grid, fromAbove bool) {
	if !fromAbove {
		w.Fill(g)
		return
	}
	r := w.radius
	shiftRows := 2 * r
	for y := 0; y < shiftRows; y++ {
		srcOff := (y + tile.N) * w.size
		dstOff := y * w.size
		copy(w.data[dstOff:dstOff+w.size], w.data[srcOff:srcOff+w.size])
	}
	w.fillRows(g, shiftRows, w.size)
}

// fillRows fills window rows [yStart, yEnd) from the nine-grid, sourcing
// each row's three column bands (west edge/corner, center, east
// edge/corner) from whichever of the nine tiles the logical coordinate
// falls in, per spec.md §4.1's contiguity invariant.
func (w *Window) fillRows(g Grid, yStart, yEnd int) {
	r := w.radius
	for y := yStart; y < yEnd; y++ {
		var srcY int
		var vBand int // -1 north, 0 center, 1 south
		switch {
		case y < r:
			vBand, srcY = -1, tile.N-r+y
		case y < r+tile.N:
			vBand, srcY = 0, y-r
		default:
			vBand, srcY = 1, y-r-tile.N
		}
		w.fillRowBand(g, y, vBand, srcY)
	}
}

func (w *Window) fillRowBand(g Grid, y, vBand, srcY int) {
	r := w.radius
	dstRow := w.buf.Row(y)

	// West column band: corner tile if vBand != 0, else the West edge tile.
	westSlot := slotFor(vBand, -1)
	westPx := tile.Cursor(g[westSlot].Buffer(), tile.N-r, srcY)
	for x := 0; x < r; x++ {
		dstRow[x] = westPx.Read()
		westPx.MoveX(1)
	}

	// Center column band: North/Center/South tile depending on vBand.
	centerSlot := slotFor(vBand, 0)
	centerPx := tile.Cursor(g[centerSlot].Buffer(), 0, srcY)
	for x := 0; x < tile.N; x++ {
		dstRow[r+x] = centerPx.Read()
		centerPx.MoveX(1)
	}

	// East column band: corner tile if vBand != 0, else the East edge tile.
	eastSlot := slotFor(vBand, 1)
	eastPx := tile.Cursor(g[eastSlot].Buffer(), 0, srcY)
	for x := 0; x < r; x++ {
		dstRow[r+tile.N+x] = eastPx.Read()
		eastPx.MoveX(1)
	}
}

// slotFor maps a (vertical band, horizontal band) pair, each in {-1,0,1},
// to the fixed nine-grid slot index.
func slotFor(vBand, hBand int) int {
	switch {
	case vBand == 0 && hBand == 0:
		return Center
	case vBand == -1 && hBand == 0:
		return North
	case vBand == 0 && hBand == 1:
		return East
	case vBand == 1 && hBand == 0:
		return South
	case vBand == 0 && hBand == -1:
		return West
	case vBand == -1 && hBand == 1:
		return NorthEast
	case vBand == 1 && hBand == 1:
		return SouthEast
	case vBand == 1 && hBand == -1:
		return SouthWest
	default: // vBand == -1 && hBand == -1
		return NorthWest
	}
}
