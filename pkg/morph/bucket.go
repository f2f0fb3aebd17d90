package morph

import (
	"github.com/inkwell/tilepost/pkg/fix15"
	"github.com/inkwell/tilepost/pkg/ninegrid"
	"github.com/inkwell/tilepost/pkg/tile"
)

// row is one height-band of the lookup table: width columns by
// len(lengths) chord-length columns, flattened into a single slice.
type row struct {
	data     []fix15.T
	width    int
	numTypes int
}

func newRow(width, numTypes int) row {
	return row{data: make([]fix15.T, width*numTypes), width: width, numTypes: numTypes}
}

func (r row) at(x, lengthIndex int) fix15.T { return r.data[x*r.numTypes+lengthIndex] }
func (r row) set(x, lengthIndex int, v fix15.T) { r.data[x*r.numTypes+lengthIndex] = v }

// Bucket holds the per-worker scratch state for one morphology radius: the
// structuring element's chords, the shared working window it reads pixels
// from, and the lookup table rows it reduces them into. A Bucket is
// reused across every tile in a strand and must not be shared across
// goroutines — NewBucket gives each strand worker its own.
type Bucket struct {
	radius   int
	height   int
	chords   []Chord
	lengths  []int
	width    int
	rows     []row
	window   *ninegrid.Window
}

// NewBucket allocates a Bucket for the given structuring-element radius.
func NewBucket(radius int) *Bucket {
	chords, lengths := buildChords(radius)
	height := radius*2 + 1
	width := tile.N + 2*radius

	rows := make([]row, height)
	for i := range rows {
		rows[i] = newRow(width, len(lengths))
	}

	return &Bucket{
		radius:  radius,
		height:  height,
		chords:  chords,
		lengths: lengths,
		width:   width,
		rows:    rows,
		window:  ninegrid.NewWindow(radius),
	}
}

// rotateLUT shifts the table down one row-band: what was row 1 becomes row
// 0, and so on, with the evicted row 0 reused as scratch for the next
// populateRow call. This is what lets the kernel slide down a tile one
// pixel row at a time without recomputing every band from scratch.
func (b *Bucket) rotateLUT() {
	first := b.rows[0]
	copy(b.rows, b.rows[1:])
	b.rows[b.height-1] = first
}

// populateRow reduces working-window row yPx into lookup-table row
// rowIdx, one chord length at a time: column 0 holds the raw pixels,
// column i holds the cmp-reduction of two overlapping column (i-1) runs
// that together span lengths[i] pixels.
func (b *Bucket) populateRow(rowIdx, yPx int, cmp func(a, b fix15.T) fix15.T) {
	r := &b.rows[rowIdx]
	for x := 0; x < b.width; x++ {
		r.set(x, 0, b.window.At(x, yPx))
	}

	prevLen := 1
	for li := 1; li < len(b.lengths); li++ {
		length := b.lengths[li]
		diff := length - prevLen
		prevLen = length
		for x := 0; x <= b.width-length; x++ {
			r.set(x, li, cmp(r.at(x, li-1), r.at(x+diff, li-1)))
		}
	}
}
