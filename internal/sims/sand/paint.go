package sand

import "math"

// Paint stamps a thick line of the given material between two endpoints,
// placing a disc of cells at every sample point along the segment. Each
// stamped cell goes through Place, so painting wakes chunks exactly like
// individual placements do. Candidate cells outside the grid are skipped.
//
// Near-vertical strokes (horizontal distance of at most one cell) walk the
// segment row by row; anything else samples the line at half-cell
// horizontal increments.
func (w *World) Paint(x1, y1, x2, y2, radius int, m Material, t Tint, spread uint8) {
	dx := x2 - x1
	dy := y2 - y1

	const leeway = 1

	if -leeway <= dx && dx <= leeway {
		span := dy
		if span < 0 {
			span = -span
		}
		span = max(span, 1)
		span = min(span, w.h)

		x, y := x1, y1
		if y2 < y1 {
			x, y = x2, y2
		}

		for i := 0; i < span; i++ {
			w.stampDisc(x, y+i, radius, m, t, spread)
		}
		return
	}

	slope := float64(dy) / float64(dx)
	yIntercept := float64(y1) - slope*float64(x1)

	domain := dx
	if domain < 0 {
		domain = -domain
	}
	domain = max(domain, 1)
	domain = min(domain, w.w)

	leftmost := float64(min(x1, x2))

	const step = 0.5
	samples := int(math.Ceil(float64(domain) / step))

	for i := 0; i < samples; i++ {
		fx := leftmost + float64(i)*step
		y := int(math.Ceil(slope*fx) + yIntercept)
		w.stampDisc(int(fx), y, radius, m, t, spread)
	}
}

// stampDisc places every in-range cell of the disc's bounding box whose
// rounded-up euclidean distance to the center is within the radius.
func (w *World) stampDisc(cx, cy, radius int, m Material, t Tint, spread uint8) {
	for y := cy - radius; y <= cy+radius; y++ {
		if y < 0 || y > w.h-1 {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < 0 || x > w.w-1 {
				continue
			}
			if int(math.Ceil(distance(cx, cy, x, y))) <= radius {
				w.Place(x, y, m, t, spread)
			}
		}
	}
}

func distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return math.Sqrt(dx*dx + dy*dy)
}
