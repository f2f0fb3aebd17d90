package gap

import (
	"math"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/tile"
)

// distSearch probes the octant rotated into view by rot, starting from the
// transparent pixel (x, y), looking for opaque pixels up to dist away from
// each other with a transparent gap between them. Every gap found updates
// the shortest-distance-so-far at each pixel the closing line passes
// through, using a double-width Bresenham-like walk so the written line
// has no single-pixel-wide diagonal seams.
func distSearch(x, y, dist int, window *ninegrid.Window, dists *DistanceTile, rot rotFunc) {
	offs := dist + 1
	rx, ry := x-offs, y-offs

	t1x, t1y := rot(x, y, 0, -1)
	t2x, t2y := rot(x, y, 1, -1)
	if window.At(t1x, t1y) == fix15.Zero || window.At(t2x, t2y) == fix15.Zero {
		return
	}

	for yoffs := 2; yoffs < dist+2; yoffs++ {
		yDstSqr := (yoffs - 1) * (yoffs - 1)
		for xoffs := 0; xoffs <= yoffs; xoffs++ {
			offsDst := yDstSqr + xoffs*xoffs
			if offsDst >= 1+dist*dist {
				break
			}
			cx, cy := rot(x, y, xoffs, -yoffs)
			if window.At(cx, cy) != fix15.Zero {
				continue
			}

			// Gap found: walk the closing line, two pixels wide.
			dx := float64(xoffs) / float64(yoffs-1)
			tx := 0.0
			cur := 0
			for cyy := 1; cyy < yoffs; cyy++ {
				lx, ly := rot(rx, ry, cur, -cyy)
				dists.updateMin(lx, ly, offsDst)

				tx += dx
				if math.Floor(tx) > float64(cur) {
					cur++
					lx, ly = rot(rx, ry, cur, -cyy)
					dists.updateMin(lx, ly, offsDst)
				}

				lx, ly = rot(rx, ry, cur+1, -cyy)
				dists.updateMin(lx, ly, offsDst)
			}
		}
	}
}

// findGaps scans window, already filled for the given distance's radius,
// for transparent pixels that sit between two opaque pixels close enough
// together to be gap-closed, and records the closing-line distances into
// dists.
func findGaps(distance int, window *ninegrid.Window, dists *DistanceTile) {
	r := distance + 1

	for y := 0; y < 2*r+tile.N-1; y++ {
		for x := 0; x < r+tile.N-1; x++ {
			if window.At(x, y) != fix15.Zero {
				continue
			}
			if y >= r {
				distSearch(x, y, distance, window, dists, topRight)
				distSearch(x, y, distance, window, dists, topCentr)
			}
			if y < tile.N+r {
				distSearch(x, y, distance, window, dists, botCentr)
				distSearch(x, y, distance, window, dists, botRight)
			}
		}
	}
}
