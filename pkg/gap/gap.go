package gap

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/strand"
	"github.com/inkwell/tilepost/pkg/tile"
)

// processor adapts the gap search into a strand.Processor whose result
// type is a DistanceTile rather than an alpha Tile. Gap search never
// reuses a window across tiles the way morph and blur do — each tile's
// window is rebuilt from scratch — since the scan direction changes
// within a single call and there is no single "from above" row range to
// reuse.
type processor struct {
	distance int
	window   *ninegrid.Window
}

func newProcessor(distance int) strand.Processor[*DistanceTile] {
	return &processor{distance: distance, window: ninegrid.NewWindow(distance + 1)}
}

func (p *processor) ProcessStrand(s tile.Strand, tiles tile.Map, out map[tile.Coord]*DistanceTile) {
	for _, coord := range s {
		grid := ninegrid.Assemble(coord, tiles)
		center := grid[ninegrid.Center]

		if center.IsUniform(fix15.Zero) {
			n, e, sTile, w := grid[ninegrid.North], grid[ninegrid.East], grid[ninegrid.South], grid[ninegrid.West]
			if NoCornerGaps(p.distance, n, e, sTile, w) {
				continue
			}
		}

		p.window.Fill(grid)
		dists := NewDistanceTile()
		findGaps(p.distance, p.window, dists)
		out[coord] = dists
	}
}

// FindGaps searches every tile named by strands for transparent gaps up
// to distance pixels wide between opaque pixels, reading neighbor context
// out of tiles, and returns a map of per-tile squared-distance tiles.
// Tiles that NoCornerGaps rules out entirely are omitted. distance must be
// at least 1.
func FindGaps(distance int, tiles tile.Map, strands tile.StrandList) (ResultMap, error) {
	if distance < 1 {
		return nil, tile.NewOperationError("FindGaps", "distance must be at least 1, got %d", distance)
	}
	result := strand.Run(strands, tiles, func() strand.Processor[*DistanceTile] {
		return newProcessor(distance)
	})
	return ResultMap(result), nil
}
