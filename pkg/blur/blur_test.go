package blur

import (
	"testing"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

func TestBlurRejectsNegativeRadius(t *testing.T) {
	tiles := tile.Map{{X: 0, Y: 0}: tile.NewTile()}
	strands := tile.StrandList{{{X: 0, Y: 0}}}
	if _, err := Blur(-1, tiles, strands); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestBlurAcceptsZeroRadius(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.Opaque()}
	strands := tile.StrandList{{coord}}

	result, err := Blur(0, tiles, strands)
	if err != nil {
		t.Fatalf("Blur(0, ...) returned an error: %v", err)
	}
	if _, ok := result[coord]; !ok {
		t.Fatal("Blur(0, ...) must still produce an output tile")
	}
}

func TestBlurOfTransparentTileStaysTransparent(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	tiles := tile.Map{coord: tile.NewTile()}
	strands := tile.StrandList{{coord}}

	result, err := Blur(2, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	out, ok := result[coord]
	if !ok {
		t.Fatal("blur must always produce an output tile, even a trivial one")
	}
	if got := out.At(32, 32); got != fix15.Zero {
		t.Errorf("At(32,32) = %d, want fully transparent", got)
	}
}

func TestBlurSoftensAHardEdge(t *testing.T) {
	coord := tile.Coord{X: 0, Y: 0}
	src := tile.NewTile()
	for y := 0; y < tile.N; y++ {
		for x := 32; x < tile.N; x++ {
			src.Set(x, y, fix15.One)
		}
	}
	tiles := tile.Map{coord: src}
	strands := tile.StrandList{{coord}}

	result, err := Blur(3, tiles, strands)
	if err != nil {
		t.Fatal(err)
	}
	out := result[coord]

	// Deep in the opaque half, blur shouldn't move the value far from
	// fully opaque.
	if got := out.At(60, 32); got < fix15.One/2 {
		t.Errorf("At(60,32) = %d, want close to fully opaque", got)
	}
	// Right at the edge, the blur must produce an intermediate value:
	// neither the sharp 0 nor the sharp fix15.One the source tile had.
	edge := out.At(32, 32)
	if edge == fix15.Zero || edge == fix15.One {
		t.Errorf("At(32,32) = %d, want a softened intermediate value across the edge", edge)
	}
}

func TestBlurFactorsHaveLowBitsSet(t *testing.T) {
	factors := buildFactors(4)
	for i, f := range factors {
		if f&3 != 3 {
			t.Errorf("factors[%d] = %d, want low two bits set (|3 floor)", i, f)
		}
	}
}

func TestBlurFactorsPeakAtCenter(t *testing.T) {
	factors := buildFactors(4)
	center := len(factors) / 2
	for i, f := range factors {
		if f > factors[center] {
			t.Errorf("factors[%d] = %d exceeds center factors[%d] = %d", i, f, center, factors[center])
		}
	}
}
