package morph

import (
	"math"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

// maxSearchRadius bounds how far canSkip probes from its sample points:
// beyond this distance the probability the whole tile is already uniform
// is high enough that a bounded search is as good as an exhaustive one.
const maxSearchRadius = 15

// canSkip tests whether the structuring element is large enough, relative
// to the tile, that finding op.Lim near a handful of sample points
// guarantees the entire output tile would collapse to the op.Lim-valued
// singleton — letting the caller skip populating the lookup table and
// running the kernel entirely. It samples the raw center tile, never the
// working window.
//
// A single sample point suffices once the structuring element's radius
// exceeds half the tile's diagonal (it reaches corner to corner); below
// that but above a quarter of the diagonal, all four quarter-tile centers
// must agree.
func canSkip(lim fix15.T, center *tile.Tile, radius int) bool {
	diag := float64(tile.N) * math.Sqrt2 / 2
	rLimit := int(diag)

	if radius > rLimit {
		rng := minInt(radius-rLimit, maxSearchRadius)
		half := tile.N/2 - 1
		if checkLim(lim, center, half, half, rng) {
			return true
		}
	}

	if radius > rLimit/2 {
		rng := minInt(radius-rLimit/2, maxSearchRadius)
		qrtr := tile.N / 4
		const rPx = -1
		if checkLim(lim, center, rPx+qrtr, rPx+qrtr, rng) && // nw
			checkLim(lim, center, rPx+3*qrtr, rPx+qrtr, rng) && // ne
			checkLim(lim, center, rPx+3*qrtr, rPx+3*qrtr, rng) && // se
			checkLim(lim, center, rPx+qrtr, rPx+3*qrtr, rng) { // sw
			return true
		}
	}

	return false
}

// checkLim scans the two-pixel-thick horizontal and vertical cross
// centered at (cx, cy), half-width w, for a pixel equal to lim.
func checkLim(lim fix15.T, t *tile.Tile, cx, cy, w int) bool {
	for y := 0; y <= 1; y++ {
		for x := -w; x <= w; x++ {
			if t.At(cx+x, cy+y) == lim || t.At(cx+y, cy+x) == lim {
				return true
			}
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
