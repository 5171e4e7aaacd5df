package parallel

// minBandRows keeps bands large enough that scheduling overhead stays small
// next to the per-pixel work.
const minBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// SplitRows divides height rows into at most parts contiguous bands of
// near-equal size. Bands are never shorter than minBandRows unless height
// itself is.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := (height + minBandRows - 1) / minBandRows; parts > maxParts {
		parts = maxParts
	}

	bands := make([]Band, 0, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := 0; i < parts; i++ {
		n := base
		if i < extra {
			n++
		}
		bands = append(bands, Band{Y0: y, Y1: y + n})
		y += n
	}
	return bands
}

// Rows calls fn for every band of [0, height). With a nil pool or a single
// band the call happens on the current goroutine.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	parts := 1
	if p != nil {
		parts = p.Workers() * 2
	}
	bands := SplitRows(height, parts)
	if len(bands) == 0 {
		return
	}
	if p == nil || len(bands) == 1 {
		for _, b := range bands {
			fn(b.Y0, b.Y1)
		}
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
