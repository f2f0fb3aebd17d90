package gap

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

// anyUnfillable reports whether the w×h patch of t starting at (x, y)
// contains any transparent pixel.
func anyUnfillable(t *tile.Tile, x, w, y, h int) bool {
	px := tile.Cursor(t.Buffer(), x, y)
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if px.Read() == fix15.Zero {
				return true
			}
			px.MoveX(1)
		}
		px.MoveX(-w)
		px.MoveY(1)
	}
	return false
}

// NoCornerGaps reports whether an entirely transparent center tile can be
// skipped when searching for gaps at the given distance. It checks four
// pairs of diagonally-opposed d×d corner patches of its cardinal neighbors
// and returns false as soon as one pair has a transparent pixel in both
// patches, since such a pair could project a gap across the center; it
// returns true only when none of the four pairs does. A false result does not guarantee a gap exists, only that
// one cannot be ruled out; a true result guarantees none do.
func NoCornerGaps(distance int, n, e, s, w *tile.Tile) bool {
	d := distance
	north, east, south, west := n, e, s, w

	// NE corner of W tile, check SW of N.
	if anyUnfillable(west, tile.N-d, d, 0, d) && anyUnfillable(north, 0, d, tile.N-d, d) {
		return false
	}
	// SE corner of W tile, check NW of S.
	if anyUnfillable(west, tile.N-d, d, tile.N-d, d) && anyUnfillable(south, 0, d, 0, d) {
		return false
	}
	// SE corner of N tile, check NW of E.
	if anyUnfillable(north, tile.N-d, d, tile.N-d, d) && anyUnfillable(east, 0, d, 0, d) {
		return false
	}
	// NE corner of S tile, check SW of E.
	if anyUnfillable(south, tile.N-d, d, 0, d) && anyUnfillable(east, 0, d, tile.N-d, d) {
		return false
	}

	return true
}
