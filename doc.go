// Package fx provides image filter descriptors and the CPU backend that
// renders them.
//
// # Overview
//
// A Generator describes a filter: it names a filter kind known to the
// backend and creates a freshly configured Filter of that kind for an
// input image. Filters are keyed-value objects in the style of Core Image:
// every kind declares typed inputs ("inputColor0", "inputWidth", ...) with
// defaults, and a filter renders any region of its output plane.
//
// # Quick Start
//
//	import "github.com/gogpu/fx"
//
//	g := fx.Checkerboard{
//		Color0:    fx.White,
//		Color1:    fx.Black,
//		Width:     40,
//		Center:    fx.Pt(0, 0),
//		Sharpness: 1,
//	}
//	f, err := g.CreateFilter(nil)
//	if err != nil {
//		return err
//	}
//	img, err := f.Render(image.Rect(0, 0, 320, 240))
//	if err != nil {
//		return err
//	}
//	err = img.SavePNG("checker.png")
//
// Generate combines CreateFilter and Render for the common case.
//
// # Filter Kinds
//
// The default registry holds generators (CheckerboardGenerator,
// StripesGenerator, ConstantColorGenerator, RadialGradient, LinearGradient,
// TextImageGenerator) and image filters (GaussianBlur, ColorMatrix,
// SepiaTone, ColorInvert, ColorControls, ScaleTransform). Register adds
// new kinds; FilterNames lists them by category.
//
// # Errors
//
// Lookups of unregistered names fail with ErrUnknownFilter rather than
// returning a partially configured filter. Compare errors with errors.Is.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) is sampled at its center (x+0.5, y+0.5)
//
// # Performance
//
// Rendering splits the output into row bands processed by a worker pool
// that lives for one render. WithWorkers bounds its size.
package fx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
