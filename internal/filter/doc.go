// Package filter contains the pixel kernels behind every built-in fx filter.
//
// Kernels operate on [Buffer], a packed non-premultiplied RGBA8 image:
//   - Generators (checkerboard, stripes, gradients, constant color) are
//     [Shader] values evaluated at pixel centres by [Generate]
//   - Gaussian blur (separable, premultiplied, edge-clamped)
//   - Color matrix transformations (sepia, invert, color controls)
//   - Catmull-Rom scaling
//   - Text layout and rasterization
//
// Generate, Blur and ColorMatrix.Apply split their work into row bands and
// run them on a parallel.WorkerPool when one is supplied.
package filter
