package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/dataset"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
name: walkthrough
description: scrub, hover, play and pause
steps:
  - action: seek
    year: 1950
  - action: hover
    year: 2000
  - action: hover
    year: 1900
  - action: leave
    year: 1900
  - action: seek
    year: 1899
  - action: play
  - action: tick
    repeat: 3
  - action: pause
  - action: tick
  - action: play
  - action: run
`

func controller(t *testing.T) *chart.Controller {
	t.Helper()
	c := chart.New(chart.DefaultOptions())
	require.NoError(t, c.Load(dataset.Dataset{
		{Year: 1900, Mean: -0.2},
		{Year: 1950, Mean: 0.1},
		{Year: 2000, Mean: 0.8},
	}))
	return c
}

func TestRunScenario(t *testing.T) {
	sc, err := Parse([]byte(scenarioYAML))
	require.NoError(t, err)
	require.Equal(t, "walkthrough", sc.Name)

	trace, err := Run(context.Background(), sc, controller(t))
	require.NoError(t, err)
	require.Len(t, trace, len(sc.Steps))

	seek := trace[0]
	require.Equal(t, 1950, seek.Playhead)
	require.Equal(t, 2, seek.Visible)

	require.Empty(t, trace[1].Tooltip, "hidden marker has no hover")
	require.Equal(t, "1900: -0.20°C", trace[2].Tooltip)
	require.Empty(t, trace[3].Tooltip)

	require.Equal(t, 0, trace[4].Visible)

	play := trace[5]
	require.Equal(t, chart.Playing, play.State)

	ticks := trace[6]
	require.Equal(t, 1901, ticks.Playhead)
	require.Equal(t, 1, ticks.Visible)

	paused := trace[7]
	require.Equal(t, chart.Idle, paused.State)
	require.Equal(t, 1901, trace[8].Playhead)

	final := trace[10]
	require.Equal(t, chart.Idle, final.State)
	require.Equal(t, 2000, final.Playhead)
	require.Equal(t, "2000", final.Label)
	require.Equal(t, 3, final.Visible)
}

func TestParseUnknownAction(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - action: rewind\n"))
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Steps, 11)
}

func TestRunRequiresLoadedController(t *testing.T) {
	sc, err := Parse([]byte(scenarioYAML))
	require.NoError(t, err)

	_, err = Run(context.Background(), sc, chart.New(chart.DefaultOptions()))
	require.ErrorIs(t, err, chart.ErrNotLoaded)
}

func TestRunCanceled(t *testing.T) {
	sc, err := Parse([]byte(scenarioYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	trace, err := Run(ctx, sc, controller(t))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, trace)
}
