package chart

import (
	"fmt"
	"strconv"
	"time"

	"github.com/san-kum/anomalyplay/internal/dataset"
	"github.com/san-kum/anomalyplay/internal/scale"
)

const (
	DefaultPeriod       = 500 * time.Millisecond
	DefaultTransition   = 500 * time.Millisecond
	DefaultPadding      = 0.1
	DefaultMarkerRadius = 3.0
	DefaultHoverRadius  = 6.0

	tooltipDX = 5.0
	tooltipDY = -10.0
)

// Options configures a Controller.
type Options struct {
	Layout     Layout
	Period     time.Duration
	Transition time.Duration
	// TerminalYear is where playback stops. Zero uses the dataset's last year.
	TerminalYear int
	// Padding widens the value domain on both sides.
	Padding      float64
	MarkerRadius float64
	HoverRadius  float64
}

func DefaultOptions() Options {
	return Options{
		Layout:       DefaultLayout(),
		Period:       DefaultPeriod,
		Transition:   DefaultTransition,
		Padding:      DefaultPadding,
		MarkerRadius: DefaultMarkerRadius,
		HoverRadius:  DefaultHoverRadius,
	}
}

// Effects tells the host what to do after a message.
type Effects struct {
	// StartTimer asks for a repeating timer that sends TickMsg{Gen}.
	StartTimer bool
	// StopTimer cancels the timer of generation Gen.
	StopTimer bool
	Gen       int
	Period    time.Duration
	// Transition animates the path when non-nil.
	Transition *PathTransition
	Join       JoinStats
	Err        error
}

// Controller is the chart's single state owner.
type Controller struct {
	opts Options

	data   dataset.Dataset
	loaded bool
	err    error

	x scale.Time
	y scale.Linear

	state    PlaybackState
	playhead int
	cursor   int
	terminal int
	gen      int

	scene   Scene
	visible dataset.Dataset
}

func New(opts Options) *Controller {
	d := DefaultOptions()
	if opts.Layout.Width <= 0 || opts.Layout.Height <= 0 {
		opts.Layout = d.Layout
	}
	if opts.Period <= 0 {
		opts.Period = d.Period
	}
	if opts.Transition < 0 {
		opts.Transition = 0
	}
	if opts.Padding < 0 {
		opts.Padding = d.Padding
	}
	if opts.MarkerRadius <= 0 {
		opts.MarkerRadius = d.MarkerRadius
	}
	if opts.HoverRadius <= 0 {
		opts.HoverRadius = d.HoverRadius
	}
	return &Controller{opts: opts}
}

// Load is shorthand for Update(LoadedMsg{Data: d}) that returns the load
// error, if any.
func (c *Controller) Load(d dataset.Dataset) error {
	return c.Update(LoadedMsg{Data: d}).Err
}

// Update applies one message and returns the effects the host must carry
// out. Messages that depend on the dataset are ignored until it is loaded.
func (c *Controller) Update(msg interface{}) Effects {
	switch msg := msg.(type) {
	case LoadedMsg:
		return c.load(msg.Data)
	case FetchFailedMsg:
		if c.loaded {
			return Effects{}
		}
		c.err = msg.Err
		return Effects{Err: msg.Err}
	}

	if !c.loaded {
		return Effects{}
	}

	switch msg := msg.(type) {
	case SeekMsg:
		return c.seek(msg.Year)
	case PlayMsg:
		return c.play()
	case PauseMsg:
		return c.pause()
	case TickMsg:
		return c.tick(msg.Gen)
	case HoverMsg:
		c.hover(msg.Year)
	case LeaveMsg:
		c.leave(msg.Year)
	}
	return Effects{}
}

func (c *Controller) load(d dataset.Dataset) Effects {
	if c.loaded {
		return Effects{}
	}
	minYear, maxYear, ok := d.YearExtent()
	if !ok {
		c.err = dataset.ErrEmptyDataset
		return Effects{Err: c.err}
	}
	minMean, maxMean, _ := d.MeanExtent()

	c.data = d.Clone()
	c.x = scale.NewTime(minYear, maxYear, 0, c.opts.Layout.InnerWidth())
	c.y = scale.NewLinear(minMean-c.opts.Padding, maxMean+c.opts.Padding, c.opts.Layout.InnerHeight(), 0)

	c.terminal = maxYear
	if c.opts.TerminalYear != 0 {
		c.terminal = c.opts.TerminalYear
	}
	c.loaded = true
	c.err = nil

	// The first frame shows the full dataset without animating.
	c.playhead = maxYear
	c.scene.Path = c.pathFor(c.data)
	stats := c.join(c.data)
	c.visible = c.data.Filter(c.playhead)
	return Effects{Join: stats}
}

func (c *Controller) seek(year int) Effects {
	c.playhead = year
	return c.render(c.data.Filter(year))
}

// render rebinds the path and markers to filtered using the fixed scales.
func (c *Controller) render(filtered dataset.Dataset) Effects {
	to := c.pathFor(filtered)
	tr := newPathTransition(c.scene.Path, to, c.opts.Transition)
	c.scene.Path = to
	stats := c.join(filtered)
	c.visible = filtered
	return Effects{Transition: tr, Join: stats}
}

func (c *Controller) pathFor(d dataset.Dataset) []Point {
	pts := make([]Point, len(d))
	for i, p := range d {
		pts[i] = Point{X: c.x.Map(p.Year), Y: c.y.Map(p.Mean)}
	}
	return pts
}

// join reconciles markers with d, keyed by year. Entering points get a new
// marker, remaining ones are repositioned at the base radius and the rest
// are removed. An update drops the hover enlargement but keeps the tooltip.
func (c *Controller) join(d dataset.Dataset) JoinStats {
	prev := make(map[int]Marker, len(c.scene.Markers))
	for _, m := range c.scene.Markers {
		prev[m.Year] = m
	}

	var stats JoinStats
	next := make([]Marker, 0, len(d))
	for _, p := range d {
		m, ok := prev[p.Year]
		if ok {
			stats.Updated++
			delete(prev, p.Year)
			m.R = c.opts.MarkerRadius
			m.Hovered = false
		} else {
			stats.Entered++
			m = Marker{Year: p.Year, R: c.opts.MarkerRadius}
		}
		m.Mean = p.Mean
		m.CX = c.x.Map(p.Year)
		m.CY = c.y.Map(p.Mean)
		next = append(next, m)
	}
	stats.Exited = len(prev)

	if tt := c.scene.Tooltip; tt != nil {
		if _, gone := prev[tt.Year]; gone {
			c.scene.Tooltip = nil
		}
	}
	c.scene.Markers = next
	return stats
}

func (c *Controller) play() Effects {
	if c.state == Playing {
		return Effects{}
	}
	c.cursor = c.playhead
	if c.cursor > c.terminal {
		return Effects{}
	}
	c.state = Playing
	c.gen++
	return Effects{StartTimer: true, Gen: c.gen, Period: c.opts.Period}
}

func (c *Controller) pause() Effects {
	if c.state != Playing {
		return Effects{}
	}
	c.state = Idle
	return Effects{StopTimer: true, Gen: c.gen}
}

func (c *Controller) tick(gen int) Effects {
	if c.state != Playing || gen != c.gen {
		return Effects{}
	}
	eff := c.seek(c.cursor)
	c.cursor++
	if c.cursor > c.terminal {
		c.state = Idle
		eff.StopTimer = true
		eff.Gen = c.gen
	}
	return eff
}

func (c *Controller) hover(year int) {
	idx := c.markerIndex(year)
	if idx < 0 {
		return
	}
	if tt := c.scene.Tooltip; tt != nil && tt.Year != year {
		c.leave(tt.Year)
	}
	m := &c.scene.Markers[idx]
	m.R = c.opts.HoverRadius
	m.Hovered = true
	c.scene.Tooltip = &Tooltip{
		ID:   TooltipID,
		Year: m.Year,
		Text: FormatLabel(dataset.DataPoint{Year: m.Year, Mean: m.Mean}),
		X:    m.CX + tooltipDX,
		Y:    m.CY + tooltipDY,
	}
}

func (c *Controller) leave(year int) {
	if idx := c.markerIndex(year); idx >= 0 {
		c.scene.Markers[idx].R = c.opts.MarkerRadius
		c.scene.Markers[idx].Hovered = false
	}
	c.scene.Tooltip = nil
}

func (c *Controller) markerIndex(year int) int {
	for i, m := range c.scene.Markers {
		if m.Year == year {
			return i
		}
	}
	return -1
}

func (c *Controller) Loaded() bool         { return c.loaded }
func (c *Controller) Err() error           { return c.err }
func (c *Controller) State() PlaybackState { return c.state }
func (c *Controller) Playhead() int        { return c.playhead }
func (c *Controller) TerminalYear() int    { return c.terminal }
func (c *Controller) Gen() int             { return c.gen }
func (c *Controller) Options() Options     { return c.opts }

// Cursor is the next year playback will show.
func (c *Controller) Cursor() int { return c.cursor }

// Label is the text of the year label next to the slider.
func (c *Controller) Label() string {
	if !c.loaded {
		return ""
	}
	return strconv.Itoa(c.playhead)
}

func (c *Controller) Controls() Controls {
	return Controls{
		PlayEnabled:  c.loaded && c.state == Idle,
		PauseEnabled: c.loaded && c.state == Playing,
	}
}

// Message is the user-facing status: an error, a loading notice or empty.
func (c *Controller) Message() string {
	switch {
	case c.err != nil:
		return fmt.Sprintf("could not load temperature data: %v", c.err)
	case !c.loaded:
		return "loading data..."
	}
	return ""
}

// Dataset returns a copy of the cached dataset.
func (c *Controller) Dataset() dataset.Dataset { return c.data.Clone() }

// Visible returns a copy of the currently rendered points.
func (c *Controller) Visible() dataset.Dataset { return c.visible.Clone() }

// Scene returns a copy of the current scene.
func (c *Controller) Scene() Scene { return c.scene.clone() }

func (c *Controller) Scales() (scale.Time, scale.Linear) { return c.x, c.y }

// YearBounds is the year span of the dataset, the slider's natural range.
func (c *Controller) YearBounds() (int, int) {
	min, max, _ := c.data.YearExtent()
	return min, max
}
