package chart

import "time"

// PathTransition animates the path from one shape to the next. Vertices are
// paired by position; vertices the old path lacks appear at their final
// place, and the result always has the length of To.
type PathTransition struct {
	From     []Point
	To       []Point
	Duration time.Duration
}

func newPathTransition(from, to []Point, d time.Duration) *PathTransition {
	return &PathTransition{
		From:     append([]Point(nil), from...),
		To:       append([]Point(nil), to...),
		Duration: d,
	}
}

// Done reports whether the animation has reached its final frame.
func (t *PathTransition) Done(elapsed time.Duration) bool {
	return t == nil || elapsed >= t.Duration
}

// At returns the path shape after elapsed time, eased in and out.
func (t *PathTransition) At(elapsed time.Duration) []Point {
	if t == nil {
		return nil
	}
	out := make([]Point, len(t.To))
	if t.Done(elapsed) || t.Duration <= 0 {
		copy(out, t.To)
		return out
	}
	k := easeCubicInOut(float64(elapsed) / float64(t.Duration))
	for i, to := range t.To {
		if i >= len(t.From) {
			out[i] = to
			continue
		}
		from := t.From[i]
		out[i] = Point{
			X: from.X + (to.X-from.X)*k,
			Y: from.Y + (to.Y-from.Y)*k,
		}
	}
	return out
}

func easeCubicInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
