package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/ctxlog"
	"github.com/san-kum/anomalyplay/internal/dataset"
)

// Frame is one exported playback frame.
type Frame struct {
	Year int
	Path string
}

// Frames writes one SVG per playback year, from the first dataset year to
// the terminal year, into dir. Frames are rendered concurrently; each worker
// drives its own controller, since a Controller is single-threaded.
func Frames(ctx context.Context, data dataset.Dataset, opts chart.Options, dir string) ([]Frame, error) {
	probe := chart.New(opts)
	if err := probe.Load(data); err != nil {
		return nil, err
	}
	first, _ := probe.YearBounds()
	last := probe.TerminalYear()
	if last < first {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	log := ctxlog.FromContext(ctx)
	n := last - first + 1
	frames := make([]Frame, n)

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	ParallelFor(n, 8, func(start, end int) {
		c := chart.New(opts)
		if err := c.Load(data); err != nil {
			fail(err)
			return
		}
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			year := first + i
			c.Update(chart.SeekMsg{Year: year})
			svg, err := SceneToSVG(c)
			if err != nil {
				fail(err)
				return
			}
			path := filepath.Join(dir, fmt.Sprintf("frame_%04d.svg", year))
			if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
				fail(err)
				return
			}
			frames[i] = Frame{Year: year, Path: path}
		}
		log.Debug("frames written", "from", first+start, "to", first+end-1)
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return frames, nil
}
