package morph

import "math"

// Chord is a horizontal run of a circular structuring element at one
// vertical offset from its center: the row spans x_offset..x_offset+len-1
// relative to the kernel's own column, where len is looked up by
// LengthIndex into the bucket's shared length table (Urbach-Wilkinson:
// chords of equal length within a bucket share one table column, built up
// from shorter chords so no chord's extremum is recomputed from scratch).
type Chord struct {
	XOffset     int
	LengthIndex int
}

// buildChords computes the circular structuring element of the given
// radius as one Chord per row, plus the table of unique chord lengths the
// chords index into.
//
// The length table is seeded with a power-of-two ladder below the
// narrowest (top/bottom-row) chord length, then extended with every
// distinct chord length encountered scanning from the top row down to the
// center row. The bottom half is the mirror image of the top half, so its
// chords are copied rather than recomputed.
func buildChords(radius int) ([]Chord, []int) {
	height := radius*2 + 1
	chords := make([]Chord, height)

	rad := float64(radius)
	edge := math.Sqrt((rad+0.5)*(rad+0.5) - rad*rad)
	firstLength := 1 + 2*int(math.Floor(edge))

	var lengths []int
	for pad := 1; pad < firstLength; pad *= 2 {
		lengths = append(lengths, pad)
	}

	for y := -radius; y <= 0; y++ {
		fy := float64(y)
		xOffs := int(math.Floor(math.Sqrt((rad+0.5)*(rad+0.5) - fy*fy)))
		length := 1 + xOffs*2
		if lengths[len(lengths)-1] != length {
			lengths = append(lengths, length)
		}
		chords[y+radius] = Chord{XOffset: -xOffs, LengthIndex: len(lengths) - 1}
	}

	for mirrorY := 1; mirrorY <= radius; mirrorY++ {
		chords[mirrorY+radius] = chords[-mirrorY+radius]
	}

	return chords, lengths
}
