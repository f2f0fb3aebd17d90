// Package morph implements tile-wise morphological dilation and erosion
// with a circular structuring element, using the Urbach-Wilkinson running
// extremum algorithm so that a radius-r operation costs one comparison per
// structuring-element row per pixel (O(r)) rather than O(r^2).
package morph

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/strand"
	"github.com/inkwell/tilepost/pkg/tile"
)

// Op pairs the reduction used to dilate or erode with the identity and
// limit values that drive it: Init seeds the per-pixel reduction, Lim is
// the value that makes further comparisons pointless (and the value a
// can-skip tile collapses to), Cmp is the reduction itself.
type Op struct {
	Init fix15.T
	Lim  fix15.T
	Cmp  func(a, b fix15.T) fix15.T
}

// Dilate grows opaque regions: the reduction is a running max, seeded at
// fully transparent, saturating at fully opaque.
var Dilate = Op{Init: fix15.Zero, Lim: fix15.One, Cmp: fix15.Max}

// Erode shrinks opaque regions: the reduction is a running min, seeded at
// fully opaque, saturating at fully transparent.
var Erode = Op{Init: fix15.One, Lim: fix15.Zero, Cmp: fix15.Min}

// runKernel populates the lookup table for one output tile and scans the
// circular structuring element across it, writing op.Init-seeded,
// op.Cmp-reduced extrema into dst. When canUpdate is true, only the
// bottom-most lookup row needs populating — rotateLUT has already shifted
// everything else down from the previous tile in the strand; otherwise
// every row is rebuilt from the working window.
func runKernel(b *Bucket, op Op, canUpdate bool, dst *tile.Tile) {
	r := b.radius

	if canUpdate {
		b.populateRow(0, 2*r, op.Cmp)
		b.rotateLUT()
	} else {
		for dy := 0; dy < b.height; dy++ {
			b.populateRow(dy, dy, op.Cmp)
		}
	}

	dstPx := tile.Cursor(dst.Buffer(), 0, 0)
	for y := 0; y < tile.N; y++ {
		for x := 0; x < tile.N; x++ {
			ext := op.Init
			for c := 0; c < b.height; c++ {
				ch := b.chords[c]
				v := b.rows[c].at(x+ch.XOffset+r, ch.LengthIndex)
				ext = op.Cmp(ext, v)
				if ext == op.Lim {
					break
				}
			}
			dstPx.Write(ext)
			dstPx.MoveX(1)
		}
		if y < tile.N-1 {
			b.populateRow(0, y+2*r+1, op.Cmp)
			b.rotateLUT()
		}
	}
}

// emptyResult reports whether a morphed tile should be omitted from the
// result map: the Transparent singleton itself (what an erosion canSkip
// short circuit collapses to), any dilation whose source tile is the
// Transparent singleton, and any tile that is uniformly transparent. The
// dilation rule relies on strands never naming a Transparent-singleton
// tile whose neighbors hold opaque pixels: such a tile is omitted even
// where dilation would have grown opacity into it.
func emptyResult(offset int, src, result *tile.Tile) bool {
	transparent := tile.Transparent()
	if result == transparent {
		return true
	}
	if offset > 0 && src == transparent {
		return true
	}
	return result.At(0, 0) == fix15.Zero && result.IsUniform(fix15.Zero)
}

// processor adapts a Bucket into a strand.Processor, tracking canUpdate
// across the tiles of one strand the way the reference implementation's
// morph_strand loop does: reset to false at the start of every strand, set
// from whether the previous tile was a fresh kernel run rather than a
// canSkip short circuit.
type processor struct {
	bucket *Bucket
	op     Op
	offset int
}

func newProcessor(offset int) strand.Processor[*tile.Tile] {
	radius := offset
	op := Dilate
	if offset < 0 {
		radius, op = -offset, Erode
	}
	return &processor{bucket: NewBucket(radius), op: op, offset: offset}
}

func (p *processor) ProcessStrand(s tile.Strand, tiles tile.Map, out map[tile.Coord]*tile.Tile) {
	canUpdate := false
	for _, coord := range s {
		grid := ninegrid.Assemble(coord, tiles)
		center := grid[ninegrid.Center]

		if canSkip(p.op.Lim, center, p.bucket.radius) {
			result := tile.Transparent()
			if p.op.Lim == fix15.One {
				result = tile.Opaque()
			}
			if !emptyResult(p.offset, center, result) {
				out[coord] = result
			}
			canUpdate = false
			continue
		}

		p.bucket.window.FillIncremental(grid, canUpdate)
		result := tile.NewTile()
		runKernel(p.bucket, p.op, canUpdate, result)
		canUpdate = true

		if !emptyResult(p.offset, center, result) {
			out[coord] = result
		}
	}
}

// Morph dilates (offset > 0) or erodes (offset < 0) every tile named by
// strands, reading neighbor context out of tiles, and returns the result
// map of retained (non-empty) output tiles. offset must be non-zero and
// its absolute value must not exceed the tile edge length.
func Morph(offset int, tiles tile.Map, strands tile.StrandList) (tile.Map, error) {
	if offset == 0 {
		return nil, tile.NewOperationError("Morph", "offset must be non-zero")
	}
	if offset > tile.N || offset < -tile.N {
		return nil, tile.NewOperationError("Morph", "offset %d exceeds tile size %d", offset, tile.N)
	}

	result := strand.Run(strands, tiles, func() strand.Processor[*tile.Tile] {
		return newProcessor(offset)
	})
	return tile.Map(result), nil
}

// Close performs a dilation of grow followed by an erosion of the same
// magnitude, closing small gaps without materially changing the overall
// shape. It is not part of the reference kernel interface; it composes
// two Morph calls the way callers otherwise would by hand.
func Close(grow int, tiles tile.Map, strands tile.StrandList) (tile.Map, error) {
	dilated, err := Morph(grow, tiles, strands)
	if err != nil {
		return nil, err
	}
	merged := mergeOver(tiles, dilated)
	return Morph(-grow, merged, strands)
}

// Open performs an erosion of shrink followed by a dilation of the same
// magnitude, removing small isolated regions without materially changing
// the overall shape.
func Open(shrink int, tiles tile.Map, strands tile.StrandList) (tile.Map, error) {
	eroded, err := Morph(-shrink, tiles, strands)
	if err != nil {
		return nil, err
	}
	merged := mergeOver(tiles, eroded)
	return Morph(shrink, merged, strands)
}

// mergeOver layers overlay on top of base, filling in the Transparent
// singleton for any base tile overlay omitted as an empty result, so the
// second pass of Close/Open sees a complete map rather than one with
// holes where the first pass suppressed uniformly transparent output.
func mergeOver(base, overlay tile.Map) tile.Map {
	merged := make(tile.Map, len(base))
	for c, t := range base {
		merged[c] = t
	}
	for c := range base {
		if _, ok := overlay[c]; !ok {
			merged[c] = tile.Transparent()
		}
	}
	for c, t := range overlay {
		merged[c] = t
	}
	return merged
}
