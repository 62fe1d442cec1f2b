package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/dataset"
)

type FrameData struct {
	Playhead     int                 `json:"playhead"`
	TerminalYear int                 `json:"terminal_year"`
	State        string              `json:"state"`
	Visible      []dataset.DataPoint `json:"visible"`
	Tooltip      string              `json:"tooltip,omitempty"`
}

func NewFrameData(c *chart.Controller) FrameData {
	fd := FrameData{
		Playhead:     c.Playhead(),
		TerminalYear: c.TerminalYear(),
		State:        c.State().String(),
		Visible:      c.Visible(),
	}
	if fd.Visible == nil {
		fd.Visible = []dataset.DataPoint{}
	}
	if tt := c.Scene().Tooltip; tt != nil {
		fd.Tooltip = tt.Text
	}
	return fd
}

// JSON writes the controller's current frame as indented JSON.
func JSON(w io.Writer, c *chart.Controller) error {
	if !c.Loaded() {
		return chart.ErrNotLoaded
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewFrameData(c))
}

// CSV writes points with a Year,Mean header, the shape dataset.Open reads.
func CSV(w io.Writer, d dataset.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Year", "Mean"}); err != nil {
		return err
	}
	for _, p := range d {
		row := []string{strconv.Itoa(p.Year), strconv.FormatFloat(p.Mean, 'f', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
