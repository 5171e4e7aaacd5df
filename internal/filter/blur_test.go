package filter

import (
	"bytes"
	"math"
	"testing"

	"github.com/fortytw2/leaktest"

	"github.com/gogpu/fx/internal/color"
	"github.com/gogpu/fx/internal/parallel"
)

func TestBlurUniform(t *testing.T) {
	c := color.ColorU8{R: 40, G: 120, B: 200, A: 255}
	src := fillBuffer(20, 15, c)
	dst := NewBuffer(20, 15)

	Blur(src, dst, 3, nil)

	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			if got := pixelAt(dst, x, y); !u8Near(got, c, 1) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestBlurZeroRadiusCopies(t *testing.T) {
	src := NewBuffer(4, 4)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}
	dst := NewBuffer(4, 4)

	Blur(src, dst, 0, nil)

	if !bytes.Equal(src.Pix, dst.Pix) {
		t.Error("radius 0 should copy the source")
	}
}

func TestBlurSizeMismatch(t *testing.T) {
	src := fillBuffer(4, 4, redU8)
	dst := NewBuffer(5, 4)

	Blur(src, dst, 2, nil)
	Blur(nil, dst, 2, nil)

	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("mismatched buffers should leave dst untouched")
		}
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	src := NewBuffer(21, 21)
	i := (10*21 + 10) * 4
	copy(src.Pix[i:i+4], []uint8{255, 255, 255, 255})
	dst := NewBuffer(21, 21)

	Blur(src, dst, 2, nil)

	center := pixelAt(dst, 10, 10)
	near := pixelAt(dst, 12, 10)
	far := pixelAt(dst, 20, 10)
	if center.A == 255 || center.A == 0 {
		t.Errorf("center alpha = %d, want partially transparent", center.A)
	}
	if near.A == 0 || near.A >= center.A {
		t.Errorf("near alpha = %d, want between 0 and %d", near.A, center.A)
	}
	if far.A != 0 {
		t.Errorf("far alpha = %d, want 0", far.A)
	}
}

func TestBlurHugeRadius(t *testing.T) {
	c := color.ColorU8{R: 255, A: 255}
	for _, radius := range []float64{1e6, 1e12, math.MaxFloat64, math.Inf(1)} {
		src := fillBuffer(4, 3, c)
		dst := NewBuffer(4, 3)

		Blur(src, dst, radius, nil)

		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				if got := pixelAt(dst, x, y); !u8Near(got, c, 1) {
					t.Fatalf("radius %g: pixel (%d,%d) = %v, want %v", radius, x, y, got, c)
				}
			}
		}
	}
}

func TestBlurCappedKernelMatchesFullKernel(t *testing.T) {
	// Taps past the longest side only ever sample edge pixels, so folding
	// them into the end taps must not change the result.
	src := NewBuffer(6, 5)
	for i := range src.Pix {
		src.Pix[i] = uint8((i * 53) % 256)
	}
	got := NewBuffer(6, 5)
	Blur(src, got, 20, nil)

	want := NewBuffer(6, 5)
	plane := make([]float32, 4*6*5)
	k := GaussianKernel(20, math.MaxInt)
	for y := 0; y < 5; y++ {
		blurRow(src, plane, y, k)
	}
	for y := 0; y < 5; y++ {
		blurColumnRow(plane, want, y, k)
	}

	for i := range want.Pix {
		if d := int(got.Pix[i]) - int(want.Pix[i]); d > 1 || d < -1 {
			t.Fatalf("byte %d = %d, want %d", i, got.Pix[i], want.Pix[i])
		}
	}
}

func TestBlurTransparentDoesNotDarken(t *testing.T) {
	src := NewBuffer(20, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			i := (y*20 + x) * 4
			copy(src.Pix[i:i+4], []uint8{255, 0, 0, 255})
		}
	}
	dst := NewBuffer(20, 4)

	Blur(src, dst, 2, nil)

	for x := 10; x < 14; x++ {
		c := pixelAt(dst, x, 2)
		if c.A == 0 {
			continue
		}
		if c.R < 250 || c.G > 2 || c.B > 2 {
			t.Errorf("pixel %d = %v, want pure red with reduced alpha", x, c)
		}
	}
}

func TestBlurParallelMatchesSerial(t *testing.T) {
	defer leaktest.Check(t)()

	pool := parallel.NewWorkerPool(3)
	defer pool.Close()

	src := NewBuffer(64, 48)
	for i := range src.Pix {
		src.Pix[i] = uint8((i * 31) % 251)
	}
	serial := NewBuffer(64, 48)
	par := NewBuffer(64, 48)

	Blur(src, serial, 4, nil)
	Blur(src, par, 4, pool)

	if !bytes.Equal(serial.Pix, par.Pix) {
		t.Error("parallel blur differs from serial blur")
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clampInt(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clampInt(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		v    float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{127.4, 127},
		{127.5, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampUint8(tt.v); got != tt.want {
			t.Errorf("clampUint8(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
