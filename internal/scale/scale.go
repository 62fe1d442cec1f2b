// Package scale maps data coordinates onto chart pixels.
//
// Scales are computed once from the full dataset and reused for every
// filtered view, so a point keeps its position as the playhead moves.
package scale

import (
	"math"
	"strconv"
	"time"
)

// Tick is an axis tick in domain units with its rendered label.
type Tick struct {
	Value float64
	Label string
}

// Time maps years onto a pixel range. Years are placed at their Jan 1
// instant so spacing follows calendar time.
type Time struct {
	minYear, maxYear int
	t0, t1           float64
	r0, r1           float64
}

func NewTime(minYear, maxYear int, r0, r1 float64) Time {
	return Time{
		minYear: minYear,
		maxYear: maxYear,
		t0:      yearStart(minYear),
		t1:      yearStart(maxYear),
		r0:      r0,
		r1:      r1,
	}
}

func yearStart(year int) float64 {
	return float64(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
}

// Map returns the pixel position of year. A single-year domain maps to the
// middle of the range.
func (s Time) Map(year int) float64 {
	if s.t1 == s.t0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (yearStart(year)-s.t0)/(s.t1-s.t0)*(s.r1-s.r0)
}

func (s Time) Domain() (int, int)         { return s.minYear, s.maxYear }
func (s Time) Range() (float64, float64) { return s.r0, s.r1 }

// Ticks returns roughly count year ticks on whole-year steps.
func (s Time) Ticks(count int) []Tick {
	lo, hi := s.minYear, s.maxYear
	if hi < lo {
		lo, hi = hi, lo
	}
	if count < 1 {
		count = 1
	}
	step := int(math.Round(TickStep(float64(lo), float64(hi), count)))
	if step < 1 {
		step = 1
	}
	first := lo
	if r := first % step; r != 0 {
		if first > 0 {
			first += step - r
		} else {
			first -= r
		}
	}
	ticks := make([]Tick, 0, (hi-first)/step+1)
	for y := first; y <= hi; y += step {
		ticks = append(ticks, Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}

// Linear maps a continuous domain onto a pixel range. Pass r0 > r1 to
// invert, so larger values plot higher.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

func (s Linear) Domain() (float64, float64) { return s.d0, s.d1 }
func (s Linear) Range() (float64, float64)  { return s.r0, s.r1 }

// Ticks returns roughly count ticks on a 1, 2 or 5 times power-of-ten step.
// Labels carry as many decimals as the step needs.
func (s Linear) Ticks(count int) []Tick {
	lo, hi := s.d0, s.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	step := TickStep(lo, hi, count)
	if step <= 0 {
		return []Tick{{Value: lo, Label: strconv.FormatFloat(lo, 'f', -1, 64)}}
	}
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}

	var ticks []Tick
	if step >= 1 {
		for i := math.Ceil(lo / step); i <= math.Floor(hi/step); i++ {
			v := i * step
			ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
		}
		return ticks
	}
	inv := math.Round(1 / step)
	for i := math.Ceil(lo * inv); i <= math.Floor(hi*inv); i++ {
		v := i / inv
		if v == 0 {
			v = 0 // drop negative zero
		}
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickStep picks a step of 1, 2 or 5 times a power of ten that splits
// [lo, hi] into about count intervals. It returns 0 for an empty span.
func TickStep(lo, hi float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	span := math.Abs(hi - lo)
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / float64(count)
	power := math.Floor(math.Log10(raw))
	base := math.Pow(10, power)
	switch ratio := raw / base; {
	case ratio >= e10:
		base *= 10
	case ratio >= e5:
		base *= 5
	case ratio >= e2:
		base *= 2
	}
	return base
}
