// Package blur implements a separable Gaussian box blur over the tile
// grid: a horizontal pass narrows every row of the padded working window
// to the tile width, then a vertical pass narrows the intermediate buffer
// back down to one tile.
package blur

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/tile"
)

// Bucket holds the per-worker scratch state for one blur radius: the
// precomputed Gaussian factors, the working window they're convolved
// against, and the intermediate buffer the horizontal pass writes into
// before the vertical pass reads it back out.
type Bucket struct {
	radius  int // derived from len(factors), not the caller's nominal radius
	factors []fix15.T
	window  *ninegrid.Window
	horiz   tile.Buffer[fix15.T] // width N, height N+2*radius
	vert    tile.Buffer[fix15.T] // width N, height N; scratch for the vertical pass
}

// NewBucket allocates a Bucket whose effective blur radius is derived from
// the Gaussian factor table built for nominalRadius — the two are not
// always equal, since the factor table's size comes from rounding up a
// sigma computed from nominalRadius.
func NewBucket(nominalRadius int) *Bucket {
	factors := buildFactors(nominalRadius)
	radius := (len(factors) - 1) / 2

	horizHeight := tile.N + 2*radius
	return &Bucket{
		radius:  radius,
		factors: factors,
		window:  ninegrid.NewWindow(radius),
		horiz:   tile.NewBuffer(make([]fix15.T, tile.N*horizHeight), tile.N, horizHeight, tile.N),
		vert:    tile.NewBuffer(make([]fix15.T, tile.N*tile.N), tile.N, tile.N, tile.N),
	}
}
