package rgba

import (
	"testing"

	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/tile"
)

func TestFillOnlyTouchesTheBoundingBox(t *testing.T) {
	src := tile.NewUniform(fix15.One)
	out := Fill(src, 1, 0, 0, 10, 10, 20, 20)

	if _, _, _, a := out.At(15, 15); a != fix15.One {
		t.Errorf("inside bounding box alpha = %d, want fully opaque", a)
	}
	if _, _, _, a := out.At(0, 0); a != fix15.Zero {
		t.Errorf("outside bounding box alpha = %d, want fully transparent", a)
	}
}

func TestFillPremultipliesByAlpha(t *testing.T) {
	src := tile.NewTile()
	src.Set(5, 5, fix15.One/2)
	out := Fill(src, 1, 1, 1, 0, 0, 10, 10)

	r, _, _, a := out.At(5, 5)
	if a != fix15.One/2 {
		t.Fatalf("alpha = %d, want %d", a, fix15.One/2)
	}
	if r > a || r == 0 {
		t.Errorf("premultiplied red = %d, want roughly half of One scaled by alpha %d", r, a)
	}
}

func TestToImageProducesAnEightBitImage(t *testing.T) {
	src := tile.NewUniform(fix15.One)
	out := Fill(src, 1, 0, 0, 0, 0, tile.N-1, tile.N-1)
	img := out.ToImage()

	r, g, b, a := img.RGBAAt(0, 0).R, img.RGBAAt(0, 0).G, img.RGBAAt(0, 0).B, img.RGBAAt(0, 0).A
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("rgb = (%d, %d, %d), want (255, 0, 0)", r, g, b)
	}
}
