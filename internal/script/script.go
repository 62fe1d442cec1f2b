// Package script replays YAML scenarios of chart events without a terminal.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// maxRunTicks bounds the "run" action.
const maxRunTicks = 100000

var ErrUnknownAction = errors.New("script: unknown action")

// Scenario is a scripted sequence of chart events.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scripted event. Action is one of seek, play, pause, tick,
// run, hover or leave. Year applies to seek, hover and leave; Repeat
// applies to tick.
type Step struct {
	Action string `yaml:"action"`
	Year   int    `yaml:"year"`
	Repeat int    `yaml:"repeat"`
}

// Entry records the controller right after a step.
type Entry struct {
	Step     int
	Action   string
	State    chart.PlaybackState
	Playhead int
	Label    string
	Visible  int
	Tooltip  string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	for i, st := range sc.Steps {
		switch strings.ToLower(st.Action) {
		case "seek", "play", "pause", "tick", "run", "hover", "leave":
		default:
			return nil, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownAction, st.Action)
		}
	}
	return &sc, nil
}

// Run feeds every step to c, which must already be loaded, and returns the
// trace. Ticks carry the controller's live timer generation, standing in
// for the host timer.
func Run(ctx context.Context, sc *Scenario, c *chart.Controller) ([]Entry, error) {
	if !c.Loaded() {
		return nil, chart.ErrNotLoaded
	}
	log := ctxlog.FromContext(ctx)
	trace := make([]Entry, 0, len(sc.Steps))

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return trace, fmt.Errorf("step %d: %w", i+1, err)
		}
		action := strings.ToLower(st.Action)

		switch action {
		case "seek":
			c.Update(chart.SeekMsg{Year: st.Year})
		case "play":
			c.Update(chart.PlayMsg{})
		case "pause":
			c.Update(chart.PauseMsg{})
		case "hover":
			c.Update(chart.HoverMsg{Year: st.Year})
		case "leave":
			c.Update(chart.LeaveMsg{Year: st.Year})
		case "tick":
			n := st.Repeat
			if n < 1 {
				n = 1
			}
			for j := 0; j < n; j++ {
				c.Update(chart.TickMsg{Gen: c.Gen()})
			}
		case "run":
			for j := 0; j < maxRunTicks && c.State() == chart.Playing; j++ {
				c.Update(chart.TickMsg{Gen: c.Gen()})
			}
		default:
			return trace, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownAction, st.Action)
		}

		e := Entry{
			Step:     i + 1,
			Action:   action,
			State:    c.State(),
			Playhead: c.Playhead(),
			Label:    c.Label(),
			Visible:  len(c.Visible()),
		}
		if tt := c.Scene().Tooltip; tt != nil {
			e.Tooltip = tt.Text
		}
		log.Debug("script step", "step", e.Step, "action", e.Action, "playhead", e.Playhead, "state", e.State)
		trace = append(trace, e)
	}
	return trace, nil
}
