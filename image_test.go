package fx

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/wader/osleaktest"
)

var _ image.Image = (*Image)(nil)

func TestImageSetGetPixel(t *testing.T) {
	img := NewImage(10, 10)
	img.SetPixel(5, 5, RGBA2(1, 0.5, 0, 1))

	i := (5*10 + 5) * 4
	data := img.Data()
	if data[i+0] != 255 || data[i+1] != 128 || data[i+2] != 0 || data[i+3] != 255 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (255, 128, 0, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	got := img.GetPixel(5, 5)
	if got.R != 1 || math.Abs(got.G-0.5) > 0.01 || got.A != 1 {
		t.Errorf("GetPixel = %v", got)
	}
	if got := img.GetPixel(-1, 0); got != Transparent {
		t.Errorf("GetPixel out of bounds = %v, want transparent", got)
	}
}

func TestImageSetPixelOutOfBounds(t *testing.T) {
	img := NewImage(10, 10)
	img.Fill(Black)

	original := make([]uint8, len(img.Data()))
	copy(original, img.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		img.SetPixel(c.x, c.y, Red)
	}

	for i, v := range img.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestImageAtIsNonPremultiplied(t *testing.T) {
	img := NewImage(2, 2)
	img.SetPixel(1, 1, RGBA2(1, 0, 0, 0.5))

	c, ok := img.At(1, 1).(color.NRGBA)
	if !ok {
		t.Fatalf("At returned %T, want color.NRGBA", img.At(1, 1))
	}
	if c.R != 255 || c.A != 128 {
		t.Errorf("At = %v, want {255 0 0 128}", c)
	}
}

func TestImageClone(t *testing.T) {
	img := NewImage(3, 3)
	img.Fill(Red)

	clone := img.Clone()
	clone.SetPixel(0, 0, Blue)

	if img.GetPixel(0, 0) != Red {
		t.Error("modifying the clone changed the original")
	}
}

func TestNewImageNegative(t *testing.T) {
	img := NewImage(-3, 4)
	if img.Width() != 0 || img.Height() != 4 || len(img.Data()) != 0 {
		t.Errorf("NewImage(-3, 4) = %dx%d with %d bytes", img.Width(), img.Height(), len(img.Data()))
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 14, 23))
	src.SetRGBA(11, 21, color.RGBA{R: 0, G: 255, B: 0, A: 255})

	img := FromImage(src)
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("Bounds = %v", img.Bounds())
	}
	if got := img.GetPixel(1, 1); got != Green {
		t.Errorf("pixel (1,1) = %v, want green", got)
	}
	if got := img.GetPixel(0, 0); got != Transparent {
		t.Errorf("pixel (0,0) = %v, want transparent", got)
	}
}

func TestToNRGBASharesPixels(t *testing.T) {
	img := NewImage(2, 1)
	n := img.ToNRGBA()
	n.SetNRGBA(1, 0, color.NRGBA{R: 9, A: 255})
	if img.Data()[4] != 9 {
		t.Error("ToNRGBA should share the pixel buffer")
	}
}

func TestSavePNGLoadImage(t *testing.T) {
	t.Cleanup(osleaktest.Check(t))

	img := NewImage(8, 4)
	img.Fill(Cyan)
	path := filepath.Join(t.TempDir(), "cyan.png")

	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if !bytes.Equal(loaded.Data(), img.Data()) {
		t.Error("loaded pixels differ from saved pixels")
	}
}

func TestImageEncode(t *testing.T) {
	img := NewImage(4, 4)
	img.Fill(Magenta)

	var buf bytes.Buffer
	if err := img.Encode(&buf, "bmp"); err != nil {
		t.Fatalf("Encode(bmp): %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("BM")) {
		t.Error("bmp output lacks BM signature")
	}
	if err := img.Encode(&buf, "xcf"); err == nil {
		t.Error("Encode(xcf) should fail")
	}
}
