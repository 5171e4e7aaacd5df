package filter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/fx/internal/color"
)

// ErrUnknownFont is returned by LoadFont for names it does not know.
var ErrUnknownFont = errors.New("fx: unknown font")

var builtinFonts = map[string][]byte{
	"Go-Regular": goregular.TTF,
	"Go-Bold":    gobold.TTF,
	"Go-Italic":  goitalic.TTF,
	"Go-Mono":    gomono.TTF,
}

var (
	fontMu    sync.Mutex
	fontCache = make(map[string]*Font)
)

// Font is a parsed font that can be shaped and rasterized.
// A Font is safe for concurrent use.
type Font struct {
	name string

	// shape is the go-text font used for shaping. font.Font is read-only;
	// a font.Face is created per layout since faces are not concurrent-safe.
	shape *gtfont.Font

	// outline supplies glyph outlines and vertical metrics. sfnt.Font is
	// safe for concurrent use given a per-call sfnt.Buffer.
	outline *sfnt.Font
}

// FontNames returns the names accepted by LoadFont, sorted.
func FontNames() []string {
	names := make([]string, 0, len(builtinFonts))
	for name := range builtinFonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFont returns the built-in font with the given name. Parsed fonts are
// cached for the lifetime of the process.
func LoadFont(name string) (*Font, error) {
	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := fontCache[name]; ok {
		return f, nil
	}
	data, ok := builtinFonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	f, err := ParseFont(name, data)
	if err != nil {
		return nil, err
	}
	fontCache[name] = f
	return f, nil
}

// ParseFont parses TrueType or OpenType data.
func ParseFont(name string, data []byte) (*Font, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("filter: parse font %q: %w", name, err)
	}
	outline, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("filter: parse font %q: %w", name, err)
	}
	return &Font{name: name, shape: face.Font, outline: outline}, nil
}

// Name returns the name the font was loaded under.
func (f *Font) Name() string { return f.name }

// Text describes a block of text to lay out. Lines are separated by '\n'.
type Text struct {
	Text string
	Font *Font

	// Size is the em size in pixels.
	Size float64

	// Padding is added on every side of the laid out text, in pixels.
	// Empty text still occupies one line box, so padded empty text has a
	// non-empty size. Negative padding counts as zero.
	Padding float64
}

// placedGlyph is a glyph positioned on its baseline, in layout pixels.
type placedGlyph struct {
	gid  sfnt.GlyphIndex
	x, y float64
}

// TextLayout is shaped text ready to be drawn. It is immutable; Draw may
// be called concurrently.
type TextLayout struct {
	font   *Font
	ppem   fixed.Int26_6
	glyphs []placedGlyph
	size   image.Point
}

// Layout shapes t. Each line is split into bidirectional runs which are
// shaped separately and placed in visual order.
func (t Text) Layout() (*TextLayout, error) {
	if t.Font == nil {
		return nil, fmt.Errorf("%w: nil font", ErrUnknownFont)
	}
	var padding float64
	if t.Padding > 0 {
		padding = t.Padding
	}
	pad := int(math.Ceil(2 * padding))
	if !(t.Size > 0) {
		return &TextLayout{font: t.Font, size: image.Pt(pad, pad)}, nil
	}

	text := norm.NFC.String(t.Text)
	l := &TextLayout{
		font: t.Font,
		ppem: fixed.Int26_6(t.Size * 64),
	}

	var buf sfnt.Buffer
	m, err := t.Font.outline.Metrics(&buf, l.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("filter: font metrics: %w", err)
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	lineHeight := fixedToFloat(m.Height)

	face := gtfont.NewFace(t.Font.shape)
	shaper := &shaping.HarfbuzzShaper{}

	lines := strings.Split(text, "\n")
	var width float64
	for i, line := range lines {
		baseline := padding + ascent + float64(i)*lineHeight
		adv := l.shapeLine(shaper, face, line, padding, baseline)
		width = math.Max(width, adv)
	}

	height := ascent + descent + float64(len(lines)-1)*lineHeight
	l.size = image.Pt(int(math.Ceil(width))+pad, int(math.Ceil(height))+pad)
	return l, nil
}

// shapeLine places the glyphs of one line starting at (x, baseline) and
// returns the line's advance.
func (l *TextLayout) shapeLine(shaper *shaping.HarfbuzzShaper, face *gtfont.Face, line string, x, baseline float64) float64 {
	if line == "" {
		return 0
	}
	start := x
	for _, r := range visualRuns(line) {
		runes := []rune(r.text)
		out := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: r.dir,
			Face:      face,
			Size:      l.ppem,
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			l.glyphs = append(l.glyphs, placedGlyph{
				gid: sfnt.GlyphIndex(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
				x:   x + fixedToFloat(g.XOffset),
				y:   baseline - fixedToFloat(g.YOffset),
			})
			x += fixedToFloat(g.Advance)
		}
	}
	return x - start
}

type textRun struct {
	text string
	dir  di.Direction
}

// visualRuns splits line into directional runs in visual order.
// If the bidi algorithm fails the whole line is one left-to-right run.
func visualRuns(line string) []textRun {
	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		return []textRun{{text: line, dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []textRun{{text: line, dir: di.DirectionLTR}}
	}
	runs := make([]textRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, textRun{text: run.String(), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Size returns the pixel size of the laid out text including padding.
// Empty text has zero size.
func (l *TextLayout) Size() image.Point { return l.size }

// Draw renders the layout into dst in color c. dst covers the layout region
// starting at origin; every pixel of dst is written.
func (l *TextLayout) Draw(dst *Buffer, origin image.Point, c color.ColorU8) error {
	if dst == nil || dst.Width == 0 || dst.Height == 0 {
		return nil
	}
	clear(dst.Pix)
	if len(l.glyphs) == 0 || c.A == 0 {
		return nil
	}

	z := vector.NewRasterizer(dst.Width, dst.Height)
	ox, oy := float64(origin.X), float64(origin.Y)
	var buf sfnt.Buffer
	for _, g := range l.glyphs {
		segs, err := l.font.outline.LoadGlyph(&buf, g.gid, l.ppem, nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrNotFound) {
				continue
			}
			return fmt.Errorf("filter: load glyph %d: %w", g.gid, err)
		}
		appendOutline(z, segs, g.x-ox, g.y-oy)
	}

	mask := image.NewAlpha(image.Rect(0, 0, dst.Width, dst.Height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < dst.Height; y++ {
		row := dst.Row(y)
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+dst.Width]
		for x, a := range mrow {
			if a == 0 {
				continue
			}
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = uint8((uint32(a)*uint32(c.A) + 127) / 255)
		}
	}
	return nil
}

// appendOutline adds glyph segments offset by (dx, dy) to z. sfnt outlines
// are already y-down. Every contour is closed explicitly.
func appendOutline(z *vector.Rasterizer, segs sfnt.Segments, dx, dy float64) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(dx + fixedToFloat(p.X)), float32(dy + fixedToFloat(p.Y))
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(s.Args[0])
			z.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		z.ClosePath()
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
