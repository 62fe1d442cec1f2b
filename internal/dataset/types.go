package dataset

// DataPoint is the mean temperature anomaly for one year.
type DataPoint struct {
	Year int     `json:"Year" yaml:"year"`
	Mean float64 `json:"Mean" yaml:"mean"`
}

// Dataset is ordered by year ascending. The order is assumed, not checked.
type Dataset []DataPoint

// Filter returns the points with Year <= playhead in dataset order.
// The result never aliases d.
func (d Dataset) Filter(playhead int) Dataset {
	out := make(Dataset, 0, len(d))
	for _, p := range d {
		if p.Year <= playhead {
			out = append(out, p)
		}
	}
	return out
}

// YearExtent reports the smallest and largest year. ok is false for an
// empty dataset.
func (d Dataset) YearExtent() (min, max int, ok bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	min, max = d[0].Year, d[0].Year
	for _, p := range d[1:] {
		if p.Year < min {
			min = p.Year
		}
		if p.Year > max {
			max = p.Year
		}
	}
	return min, max, true
}

// MeanExtent reports the smallest and largest mean anomaly.
func (d Dataset) MeanExtent() (min, max float64, ok bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	min, max = d[0].Mean, d[0].Mean
	for _, p := range d[1:] {
		if p.Mean < min {
			min = p.Mean
		}
		if p.Mean > max {
			max = p.Mean
		}
	}
	return min, max, true
}

func (d Dataset) Years() []int {
	years := make([]int, len(d))
	for i, p := range d {
		years[i] = p.Year
	}
	return years
}

func (d Dataset) Means() []float64 {
	means := make([]float64, len(d))
	for i, p := range d {
		means[i] = p.Mean
	}
	return means
}

// Clone returns a copy that shares no backing array with d.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
