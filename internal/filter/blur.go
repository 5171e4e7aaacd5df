package filter

import (
	"sync"

	"github.com/gogpu/fx/internal/parallel"
)

// Blur applies a separable Gaussian blur with sigma = radius to src and
// writes the result to dst, which must have the same size. A non-positive
// radius copies src.
//
// Both passes run on premultiplied floats so transparent pixels carry no
// colour into their neighbours. Samples outside the image repeat the
// nearest edge pixel.
func Blur(src, dst *Buffer, radius float64, pool *parallel.WorkerPool) {
	if src == nil || dst == nil || src.Width != dst.Width || src.Height != dst.Height {
		return
	}
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return
	}
	if src.Width == 0 || src.Height == 0 {
		return
	}

	plane := acquirePlane(4 * src.Width * src.Height)
	defer releasePlane(plane)

	k := CachedGaussianKernel(radius, max(src.Width, src.Height))
	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			blurRow(src, *plane, y, k)
		}
	})
	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			blurColumnRow(*plane, dst, y, k)
		}
	})
}

// blurRow premultiplies row y of src and convolves it horizontally into
// the same row of plane.
func blurRow(src *Buffer, plane []float32, y int, k []float32) {
	w := src.Width
	row := src.Pix[4*y*w : 4*(y+1)*w]
	out := plane[4*y*w : 4*(y+1)*w]
	half := len(k) / 2

	for x := range w {
		var acc [4]float32
		for j, weight := range k {
			px := row[4*clampInt(x+j-half, 0, w-1):]
			alpha := float32(px[3])
			cw := weight * alpha / 255
			acc[0] += cw * float32(px[0])
			acc[1] += cw * float32(px[1])
			acc[2] += cw * float32(px[2])
			acc[3] += weight * alpha
		}
		copy(out[4*x:], acc[:])
	}
}

// blurColumnRow computes output row y of dst by convolving plane
// vertically, then unpremultiplies.
func blurColumnRow(plane []float32, dst *Buffer, y int, k []float32) {
	w, h := dst.Width, dst.Height
	out := dst.Pix[4*y*w : 4*(y+1)*w]
	half := len(k) / 2

	for x := range w {
		var acc [4]float32
		for j, weight := range k {
			px := plane[4*(clampInt(y+j-half, 0, h-1)*w+x):]
			acc[0] += weight * px[0]
			acc[1] += weight * px[1]
			acc[2] += weight * px[2]
			acc[3] += weight * px[3]
		}
		o := out[4*x : 4*x+4]
		if acc[3] <= 0 {
			clear(o)
			continue
		}
		unpremul := 255 / acc[3]
		o[0] = clampUint8(acc[0] * unpremul)
		o[1] = clampUint8(acc[1] * unpremul)
		o[2] = clampUint8(acc[2] * unpremul)
		o[3] = clampUint8(acc[3])
	}
}

// maxPooledPlane bounds the planes kept for reuse (64 MiB of float32).
const maxPooledPlane = 16 << 20

var planes sync.Pool

// acquirePlane returns a float plane of n elements. Its contents are
// undefined; the horizontal pass overwrites all of them.
func acquirePlane(n int) *[]float32 {
	if p, ok := planes.Get().(*[]float32); ok && cap(*p) >= n {
		*p = (*p)[:n]
		return p
	}
	p := make([]float32, n)
	return &p
}

func releasePlane(p *[]float32) {
	if cap(*p) <= maxPooledPlane {
		planes.Put(p)
	}
}
