package fx

import "runtime"

// RenderOption configures a single render.
//
// Example:
//
//	img, err := f.Render(image.Rect(0, 0, 640, 480), fx.WithWorkers(2))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render and OutputImage.
type renderOptions struct {
	workers int
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers bounds the number of goroutines a render uses.
// n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}
