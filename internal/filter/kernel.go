package filter

import (
	"math"

	"github.com/gogpu/fx/internal/cache"
)

// GaussianKernel returns the normalized 1-D Gaussian with standard
// deviation radius, truncated at three deviations: 2*ceil(3*radius)+1 taps.
// A radius <= 0 gives the identity kernel [1].
//
// When the truncated kernel would exceed maxHalf taps on either side, it is
// shortened to 2*maxHalf+1 taps and the weight of the dropped taps is added
// to the two end taps. Under edge clamping this is exact as long as maxHalf
// is at least the longest image side.
func GaussianKernel(radius float64, maxHalf int) []float32 {
	if !(radius > 0) {
		return []float32{1}
	}
	// The folded tail mass must stay finite.
	radius = math.Min(radius, math.MaxFloat64/8)
	maxHalf = max(maxHalf, 0)

	full := math.Ceil(3 * radius)
	half := maxHalf
	folded := full > float64(maxHalf)
	if !folded {
		half = int(full)
	}

	weights := make([]float64, 2*half+1)
	var sum float64
	for i := range weights {
		d := float64(i - half)
		weights[i] = math.Exp(-d * d / (2 * radius * radius))
		sum += weights[i]
	}
	if folded {
		tail := gaussianMass(float64(half)+0.5, full+0.5, radius)
		weights[0] += tail
		weights[2*half] += tail
		sum += 2 * tail
	}

	kernel := make([]float32, len(weights))
	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}
	return kernel
}

// gaussianMass integrates exp(-x²/2σ²) over [a, b].
func gaussianMass(a, b, sigma float64) float64 {
	s := sigma * math.Sqrt2
	return sigma * math.Sqrt(math.Pi/2) * (math.Erf(b/s) - math.Erf(a/s))
}

type kernelKey struct {
	radius  float64 // rounded to 0.01
	maxHalf int
}

var kernels = cache.New[kernelKey, []float32](64)

// CachedGaussianKernel is GaussianKernel memoized on the radius rounded to
// 0.01. Callers must not modify the returned slice.
func CachedGaussianKernel(radius float64, maxHalf int) []float32 {
	r := math.Round(radius*100) / 100
	if !(r > 0) {
		return []float32{1}
	}
	if math.Ceil(3*r) <= float64(maxHalf) {
		// The cap does not apply; share the kernel across image sizes.
		maxHalf = math.MaxInt
	}
	key := kernelKey{radius: r, maxHalf: maxHalf}
	if k, ok := kernels.Get(key); ok {
		return k
	}
	k := GaussianKernel(r, maxHalf)
	kernels.Put(key, k)
	return k
}
