package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/dataset"
	"github.com/stretchr/testify/require"
)

func sampleData() dataset.Dataset {
	return dataset.Dataset{
		{Year: 1900, Mean: -0.2},
		{Year: 1950, Mean: 0.1},
		{Year: 2000, Mean: 0.8},
	}
}

func loadedController(t *testing.T) *chart.Controller {
	t.Helper()
	c := chart.New(chart.DefaultOptions())
	require.NoError(t, c.Load(sampleData()))
	return c
}

func TestSceneToSVG(t *testing.T) {
	c := loadedController(t)
	c.Update(chart.SeekMsg{Year: 1950})
	c.Update(chart.HoverMsg{Year: 1950})

	svg, err := SceneToSVG(c)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(svg, "<?xml"))
	require.Contains(t, svg, `width="800" height="500"`)
	require.Contains(t, svg, `<g transform="translate(50,20)">`)
	require.Equal(t, 2, strings.Count(svg, "<circle"))
	require.Contains(t, svg, `data-year="1950"`)
	require.NotContains(t, svg, `data-year="2000"`)
	require.Contains(t, svg, `stroke="steelblue"`)
	require.Contains(t, svg, `<text id="tooltip"`)
	require.Contains(t, svg, "1950: 0.10°C")
	require.Contains(t, svg, ">1900</text>")
}

func TestSceneToSVGEmptyView(t *testing.T) {
	c := loadedController(t)
	c.Update(chart.SeekMsg{Year: 1899})

	svg, err := SceneToSVG(c)
	require.NoError(t, err)
	require.NotContains(t, svg, "<circle")
	require.NotContains(t, svg, `stroke-width="1.5" d=`)
}

func TestSceneToSVGNotLoaded(t *testing.T) {
	_, err := SceneToSVG(chart.New(chart.DefaultOptions()))
	require.ErrorIs(t, err, chart.ErrNotLoaded)
}

func TestPathData(t *testing.T) {
	require.Equal(t, "", PathData(nil))
	require.Equal(t, "M0,440L360.5,220.25", PathData([]chart.Point{{X: 0, Y: 440}, {X: 360.5, Y: 220.25}}))
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		720:     "720",
		1.5:     "1.5",
		-0.001:  "0",
		12.3456: "12.35",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestGoChartSVG(t *testing.T) {
	c := loadedController(t)
	c.Update(chart.HoverMsg{Year: 2000})

	var buf bytes.Buffer
	require.NoError(t, GoChart(&buf, c, FormatSVG))
	require.Contains(t, buf.String(), "<svg")
}

func TestGoChartPNG(t *testing.T) {
	c := loadedController(t)

	var buf bytes.Buffer
	require.NoError(t, GoChart(&buf, c, FormatPNG))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestGoChartTooFewPoints(t *testing.T) {
	c := loadedController(t)
	c.Update(chart.SeekMsg{Year: 1900})

	err := GoChart(&bytes.Buffer{}, c, FormatSVG)
	require.ErrorIs(t, err, ErrTooFewPoints)

	err = GoChart(&bytes.Buffer{}, loadedController(t), Format("gif"))
	require.Error(t, err)
}

func TestFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	opts := chart.DefaultOptions()
	opts.TerminalYear = 1920

	frames, err := Frames(context.Background(), sampleData(), opts, dir)
	require.NoError(t, err)
	require.Len(t, frames, 21)

	for i, f := range frames {
		require.Equal(t, 1900+i, f.Year)
		body, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		require.Equal(t, 1, strings.Count(string(body), "<circle"), "frame %d", f.Year)
	}
}

func TestFramesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := chart.DefaultOptions()
	opts.TerminalYear = 1910
	_, err := Frames(ctx, sampleData(), opts, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestFramesEmptyDataset(t *testing.T) {
	_, err := Frames(context.Background(), dataset.Dataset{}, chart.DefaultOptions(), t.TempDir())
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestJSON(t *testing.T) {
	c := loadedController(t)
	c.Update(chart.SeekMsg{Year: 1950})
	c.Update(chart.HoverMsg{Year: 1900})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, c))

	var fd FrameData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fd))
	require.Equal(t, 1950, fd.Playhead)
	require.Equal(t, 2000, fd.TerminalYear)
	require.Equal(t, "idle", fd.State)
	require.Len(t, fd.Visible, 2)
	require.Equal(t, "1900: -0.20°C", fd.Tooltip)
	require.Contains(t, buf.String(), `"Year": 1900`)
}

func TestCSVReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, CSV(f, sampleData()))
	require.NoError(t, f.Close())

	src, err := dataset.Open(path)
	require.NoError(t, err)
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, sampleData(), got)
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		seen := make([]int32, n)
		ParallelFor(n, 4, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, v := range seen {
			if v != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}
}
