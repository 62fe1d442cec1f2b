package chart

// Margin is the space around the plot area, in pixels.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Layout is the outer chart size. Scales map into the inner plot area.
type Layout struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`
}

func DefaultLayout() Layout {
	return Layout{
		Width:  800,
		Height: 500,
		Margin: Margin{Top: 20, Right: 30, Bottom: 40, Left: 50},
	}
}

func (l Layout) InnerWidth() float64 {
	if w := l.Width - l.Margin.Left - l.Margin.Right; w > 0 {
		return w
	}
	return 0
}

func (l Layout) InnerHeight() float64 {
	if h := l.Height - l.Margin.Top - l.Margin.Bottom; h > 0 {
		return h
	}
	return 0
}
