package blur

import (
	"math"

	"github.com/inkwell/tilepost/pkg/fix15"
)

// buildFactors generates the 1D Gaussian multiplicands used by the
// separable box blur, stored as fix15 fixed-point values. sigma and the
// kernel's preliminary size both scale with radius using the same
// constants Krita uses for its own box-blur approximation.
//
// Each factor is bitwise-OR'd with 3, which adds a little weight to every
// factor; each blurred sum is clamped to fix15.One, so that extra weight
// never pushes an output past fully opaque.
func buildFactors(radius int) []fix15.T {
	const pi = math.Pi

	sigma := 0.3*float64(radius) + 0.3
	prelimSize := 6 * int(math.Ceil(sigma+1))
	mul := 1 / math.Sqrt(2*pi*sigma*sigma)
	expMul := 1 / (2 * sigma * sigma)

	factors := make([]fix15.T, prelimSize)
	center := prelimSize / 2
	for i := 0; i < prelimSize; i++ {
		d := float64(center - i)
		fac := mul * math.Exp(-d*d*expMul)
		factors[i] = fix15.T(int32(float64(fix15.One)*fac)) | 3
	}
	return factors
}
