package gap

import (
	"testing"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

func TestFindGapsRejectsSubOneDistance(t *testing.T) {
	tiles := tile.Map{{X: 0, Y: 0}: tile.NewTile()}
	strands := tile.StrandList{{{X: 0, Y: 0}}}
	if _, err := FindGaps(0, tiles, strands); err == nil {
		t.Fatal("expected error for distance < 1")
	}
}

func TestFindGapsAllTransparentTileWithOpaqueNeighborsIsSkipped(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.NewTile()}
	for _, off := range [][2]int32{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		tiles[coord.Add(off[0], off[1])] = tile.Opaque()
	}
	strands := tile.StrandList{{coord}}

	result, err := FindGaps(5, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result[coord]; ok {
		t.Error("a transparent tile with no unfillable neighbor corners should be skipped by NoCornerGaps")
	}
}

// horizontalLineWithGap builds a tile with an opaque horizontal line at
// y=32 except for a gapWidth-pixel transparent break centered at x=32.
func horizontalLineWithGap(gapWidth int) *tile.Tile {
	t := tile.NewTile()
	for x := 0; x < tile.N; x++ {
		t.Set(x, 32, fix15.One)
	}
	half := gapWidth / 2
	for x := 32 - half; x < 32-half+gapWidth; x++ {
		t.Set(x, 32, fix15.Zero)
	}
	return t
}

func TestFindGapsDetectsAThreePixelGap(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: horizontalLineWithGap(3)}
	strands := tile.StrandList{{coord}}

	result, err := FindGaps(5, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	dists, ok := result[coord]
	if !ok {
		t.Fatal("expected a distance tile for the gapped coordinate")
	}

	minDist := Sentinel
	for y := 28; y < 36; y++ {
		for x := 28; x < 36; x++ {
			if d := dists.At(x, y); d < minDist {
				minDist = d
			}
		}
	}
	if minDist == Sentinel {
		t.Error("expected some pixel near the gap to record a finite closing distance")
	}
}

func TestNoCornerGapsRequiresAllFourCorners(t *testing.T) {
	n, e, s, w := tile.NewTile(), tile.NewTile(), tile.NewTile(), tile.NewTile()
	// No unfillable corners anywhere: every neighbor is fully opaque.
	for _, nb := range []*tile.Tile{n, e, s, w} {
		for y := 0; y < tile.N; y++ {
			for x := 0; x < tile.N; x++ {
				nb.Set(x, y, fix15.One)
			}
		}
	}
	if !NoCornerGaps(3, n, e, s, w) {
		t.Error("fully opaque neighbors should never have a crossing corner gap")
	}
}
