package blur

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/strand"
	"github.com/inkwell/tilepost/pkg/tile"
)

// runKernel convolves b's working window against b's factors, writing the
// blurred tile into dst. The horizontal pass runs over every row of the
// window (including the vertical padding rows later passes need), the
// vertical pass then narrows that down to exactly one tile.
func runKernel(b *Bucket, dst *tile.Tile) {
	r := b.radius
	windowHeight := tile.N + 2*r

	for y := 0; y < windowHeight; y++ {
		for x := 0; x < tile.N; x++ {
			var sum int32
			for xo := -r; xo <= r; xo++ {
				in := b.window.At(x+xo+r, y)
				sum += int32(fix15.Mul(in, b.factors[xo+r]))
			}
			b.horiz.Set(x, y, fix15.Clamp(sum))
		}
	}

	for x := 0; x < tile.N; x++ {
		for y := 0; y < tile.N; y++ {
			var sum int32
			for yo := -r; yo <= r; yo++ {
				in := b.horiz.At(x, y+yo+r)
				sum += int32(fix15.Mul(in, b.factors[yo+r]))
			}
			b.vert.Set(x, y, fix15.Clamp(sum))
		}
	}

	dstPx := tile.Cursor(dst.Buffer(), 0, 0)
	for y := 0; y < tile.N; y++ {
		for x := 0; x < tile.N; x++ {
			dstPx.Write(b.vert.At(x, y))
			dstPx.MoveX(1)
		}
	}
}

// processor adapts a Bucket into a strand.Processor. Unlike morph, the
// reference blur implementation has no short-circuit and no empty-result
// suppression — every tile named by the strand gets a freshly blurred
// output tile, even one that blurs out to uniformly transparent.
type processor struct {
	bucket *Bucket
}

func newProcessor(radius int) strand.Processor[*tile.Tile] {
	return &processor{bucket: NewBucket(radius)}
}

func (p *processor) ProcessStrand(s tile.Strand, tiles tile.Map, out map[tile.Coord]*tile.Tile) {
	canUpdate := false
	for _, coord := range s {
		grid := ninegrid.Assemble(coord, tiles)
		p.bucket.window.FillIncremental(grid, canUpdate)

		result := tile.NewTile()
		runKernel(p.bucket, result)
		out[coord] = result

		canUpdate = true
	}
}

// Blur applies a separable Gaussian box blur of the given nominal radius
// to every tile named by strands, reading neighbor context out of tiles,
// and returns the map of blurred output tiles — one per input coordinate,
// with no suppression of empty results.
func Blur(radius int, tiles tile.Map, strands tile.StrandList) (tile.Map, error) {
	if radius < 0 {
		return nil, tile.NewOperationError("Blur", "radius must be non-negative, got %d", radius)
	}
	result := strand.Run(strands, tiles, func() strand.Processor[*tile.Tile] {
		return newProcessor(radius)
	})
	return tile.Map(result), nil
}
