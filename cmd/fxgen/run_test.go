package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/wader/osleaktest"

	"github.com/gogpu/fx"
)

func leakChecks(t *testing.T) func() {
	leakFn := leaktest.Check(t)
	osLeakFn := osleaktest.Check(t)
	return func() {
		leakFn()
		osLeakFn()
	}
}

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestList(t *testing.T) {
	code, out, _ := runArgs(t, "-list")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	names := strings.Fields(out)
	if len(names) != len(fx.FilterNames()) {
		t.Errorf("listed %v", names)
	}

	code, out, _ = runArgs(t, "-list", "-category", "gradient")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if got := strings.Fields(out); len(got) != 2 || got[0] != "LinearGradient" || got[1] != "RadialGradient" {
		t.Errorf("gradients = %v", got)
	}

	if code, _, _ := runArgs(t, "-list", "-category", "nope"); code != 1 {
		t.Errorf("unknown category exit %d, want 1", code)
	}
}

func TestDescribe(t *testing.T) {
	code, out, _ := runArgs(t, "-describe", "CheckerboardGenerator")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"CheckerboardGenerator (Generator)", "inputWidth", "Number", "80", "inputColor0", "#ffffffff"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output lacks %q:\n%s", want, out)
		}
	}

	code, _, errOut := runArgs(t, "-describe", "NotARealGenerator")
	if code != 1 || !strings.Contains(errOut, "unknown filter") {
		t.Errorf("exit %d, stderr %q", code, errOut)
	}
}

func TestUsage(t *testing.T) {
	if code, _, _ := runArgs(t); code != 2 {
		t.Errorf("no arguments exit %d, want 2", code)
	}
	if code, _, _ := runArgs(t, "-bogus"); code != 2 {
		t.Errorf("unknown flag exit %d, want 2", code)
	}
	if code, _, _ := runArgs(t, "-filter", "ConstantColorGenerator", "-set", "novalue"); code != 2 {
		t.Errorf("bad -set exit %d, want 2", code)
	}
	if code, _, _ := runArgs(t, "-h"); code != 0 {
		t.Errorf("-h exit %d, want 0", code)
	}
}

func TestRenderToFile(t *testing.T) {
	t.Cleanup(leakChecks(t))

	out := filepath.Join(t.TempDir(), "checker.png")
	code, _, errOut := runArgs(t,
		"-filter", "CheckerboardGenerator",
		"-set", "inputCenter=0,0",
		"-set", "inputWidth=2",
		"-set", "inputColor0=red",
		"-set", "inputColor1=#0000ff",
		"-size", "8x4",
		"-workers", "2",
		"-out", out,
	)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(errOut, "fxgen: wrote") {
		t.Errorf("no info log: %q", errOut)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 4) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	red := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	blue := color.NRGBAModel.Convert(img.At(2, 0)).(color.NRGBA)
	if red != (color.NRGBA{R: 255, A: 255}) || blue != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixels = %v, %v", red, blue)
	}
}

func TestRenderToStdout(t *testing.T) {
	code, out, errOut := runArgs(t, "-filter", "ConstantColorGenerator", "-size", "3x2", "-out", "-")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	img, err := png.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestRenderWithInput(t *testing.T) {
	t.Cleanup(leakChecks(t))

	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := fx.NewImage(5, 3)
	src.Fill(fx.Blue)
	if err := src.SavePNG(in); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.bmp")
	code, _, errOut := runArgs(t, "-filter", "ColorInvert", "-in", in, "-out", out)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	got, err := fx.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 5 || got.Height() != 3 {
		t.Fatalf("size = %dx%d", got.Width(), got.Height())
	}
	if c := got.At(2, 1); c != (color.NRGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("inverted blue = %v, want yellow", c)
	}
}

func TestRenderGeneratorSizedByInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	if err := fx.NewImage(7, 5).SavePNG(in); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "checker.png")
	code, _, errOut := runArgs(t, "-filter", "CheckerboardGenerator", "-in", in, "-out", out)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	got, err := fx.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 7 || got.Height() != 5 {
		t.Errorf("size = %dx%d, want the input's 7x5", got.Width(), got.Height())
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown filter", []string{"-filter", "Nope", "-size", "2x2"}, 1},
		{"infinite without size", []string{"-filter", "ConstantColorGenerator", "-out", filepath.Join(dir, "a.png")}, 2},
		{"bad size", []string{"-filter", "ConstantColorGenerator", "-size", "0x2"}, 2},
		{"bad value", []string{"-filter", "ConstantColorGenerator", "-set", "inputColor=nocolor", "-size", "2x2"}, 1},
		{"missing input", []string{"-filter", "GaussianBlur", "-out", filepath.Join(dir, "b.png")}, 1},
		{"bad format", []string{"-filter", "ConstantColorGenerator", "-size", "2x2", "-format", "xyz"}, 2},
		{"decode-only format", []string{"-filter", "ConstantColorGenerator", "-size", "2x2", "-format", "webp"}, 2},
		{"decode-only extension", []string{"-filter", "ConstantColorGenerator", "-size", "2x2", "-out", filepath.Join(dir, "c.webp")}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _, errOut := runArgs(t, tt.args...); code != tt.code {
				t.Errorf("exit %d, want %d: %s", code, tt.code, errOut)
			}
		})
	}
}

func TestVerboseLogsRender(t *testing.T) {
	code, _, errOut := runArgs(t, "-v", "-filter", "ConstantColorGenerator", "-size", "2x2", "-out", "-")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "fx: render") {
		t.Errorf("no debug render log: %q", errOut)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, out string
		want        string
	}{
		{"", "a.jpg", "jpeg"},
		{"", "a.TIFF", "tiff"},
		{"", "-", "png"},
		{"", "noext", "png"},
		{"gif", "a.png", "gif"},
	}
	for _, tt := range tests {
		got, err := outputFormat(tt.format, tt.out)
		if err != nil || string(got) != tt.want {
			t.Errorf("outputFormat(%q, %q) = %v, %v, want %s", tt.format, tt.out, got, err, tt.want)
		}
	}

	for _, bad := range [][2]string{{"webp", "a.png"}, {"", "a.webp"}, {"xyz", "-"}} {
		if _, err := outputFormat(bad[0], bad[1]); !errors.Is(err, errUsage) {
			t.Errorf("outputFormat(%q, %q) err = %v, want a usage error", bad[0], bad[1], err)
		}
	}
}
