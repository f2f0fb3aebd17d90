package morph

import (
	"testing"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

func singleTileStrands(coords ...tile.Coord) tile.StrandList {
	return tile.StrandList{tile.Strand(coords)}
}

func TestMorphRejectsZeroOffset(t *testing.T) {
	tiles := tile.Map{{X: 0, Y: 0}: tile.NewTile()}
	if _, err := Morph(0, tiles, singleTileStrands(tile.Coord{X: 0, Y: 0})); err == nil {
		t.Fatal("expected error for zero offset")
	}
}

func TestMorphRejectsOversizeOffset(t *testing.T) {
	tiles := tile.Map{{X: 0, Y: 0}: tile.NewTile()}
	if _, err := Morph(tile.N+1, tiles, singleTileStrands(tile.Coord{X: 0, Y: 0})); err == nil {
		t.Fatal("expected error for offset exceeding tile size")
	}
}

func TestMorphTransparentTileStaysEmpty(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.NewTile()}

	result, err := Morph(3, tiles, singleTileStrands(coord))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result[coord]; ok {
		t.Errorf("dilating an isolated transparent tile should produce no output, got %v", result[coord])
	}
}

func TestDilateGrowsOpaqueSquare(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	src := tile.NewTile()
	for y := 28; y < 36; y++ {
		for x := 28; x < 36; x++ {
			src.Set(x, y, fix15.One)
		}
	}
	tiles := tile.Map{coord: src}

	result, err := Morph(2, tiles, singleTileStrands(coord))
	if err != nil {
		t.Fatal(err)
	}
	out, ok := result[coord]
	if !ok {
		t.Fatal("expected a result tile for the dilated coordinate")
	}

	// A pixel two away from the square's edge, previously transparent,
	// must now be opaque.
	if got := out.At(27, 32); got != fix15.One {
		t.Errorf("At(27,32) = %d, want fully opaque after dilation by 2", got)
	}
	// The square's own interior stays opaque.
	if got := out.At(32, 32); got != fix15.One {
		t.Errorf("At(32,32) = %d, want fully opaque", got)
	}
	// Far outside the structuring element's reach, still transparent.
	if got := out.At(0, 0); got != fix15.Zero {
		t.Errorf("At(0,0) = %d, want fully transparent", got)
	}
}

func TestErodeShrinksOpaqueTile(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.Opaque()}

	result, err := Morph(-2, tiles, singleTileStrands(coord))
	if err != nil {
		t.Fatal(err)
	}

	// Surrounded on all sides by the Transparent singleton (no entry in
	// tiles), an opaque tile erodes fully away at its borders.
	out, ok := result[coord]
	if !ok {
		t.Fatal("expected a result tile: erosion of an isolated opaque tile is not globally empty")
	}
	if got := out.At(0, 0); got != fix15.Zero {
		t.Errorf("corner At(0,0) = %d, want eroded to transparent", got)
	}
	if got := out.At(32, 32); got != fix15.One {
		t.Errorf("center At(32,32) = %d, want to survive erosion", got)
	}
}

func TestDilateByLargeOffsetReturnsTheOpaqueSingleton(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.Opaque()}

	result, err := Morph(50, tiles, singleTileStrands(coord))
	if err != nil {
		t.Fatal(err)
	}
	out, ok := result[coord]
	if !ok {
		t.Fatal("expected a result tile")
	}
	if out != tile.Opaque() {
		t.Error("canSkip short circuit must return the Opaque singleton by identity, not an allocated copy")
	}
}

func TestMorphStrandMatchesPerTileProcessing(t *testing.T) {
	tiles := make(tile.Map)
	for y := int32(0); y < 3; y++ {
		t1 := tile.NewTile()
		for px := 20; px < 44; px++ {
			for py := 20; py < 44; py++ {
				t1.Set(px, py, fix15.One)
			}
		}
		tiles[tile.Coord{X: 0, Y: y}] = t1
	}

	strand := tile.Strand{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	viaStrand, err := Morph(3, tiles, tile.StrandList{strand})
	if err != nil {
		t.Fatal(err)
	}

	viaSingles := make(tile.Map)
	for _, c := range strand {
		single, err := Morph(3, tiles, tile.StrandList{{c}})
		if err != nil {
			t.Fatal(err)
		}
		if t, ok := single[c]; ok {
			viaSingles[c] = t
		}
	}

	if len(viaStrand) != len(viaSingles) {
		t.Fatalf("strand produced %d tiles, per-tile processing produced %d", len(viaStrand), len(viaSingles))
	}
	for c, want := range viaSingles {
		got, ok := viaStrand[c]
		if !ok {
			t.Fatalf("strand result missing coord %v", c)
		}
		if !want.Equal(got) {
			t.Errorf("coord %v mismatch between strand and per-tile processing", c)
		}
	}
}

func TestCloseThenOpenRoundTripsASolidSquare(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	src := tile.NewTile()
	for y := 10; y < 54; y++ {
		for x := 10; x < 54; x++ {
			src.Set(x, y, fix15.One)
		}
	}
	tiles := tile.Map{coord: src}
	strands := singleTileStrands(coord)

	closed, err := Close(2, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	if got := closed[coord].At(32, 32); got != fix15.One {
		t.Errorf("closed interior At(32,32) = %d, want opaque", got)
	}

	opened, err := Open(2, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	if got := opened[coord].At(32, 32); got != fix15.One {
		t.Errorf("opened interior At(32,32) = %d, want opaque", got)
	}
}
