package chart

import "github.com/san-kum/anomalyplay/internal/dataset"

// LoadedMsg delivers the fetched dataset.
type LoadedMsg struct {
	Data dataset.Dataset
}

// FetchFailedMsg reports a failed fetch. No chart is rendered.
type FetchFailedMsg struct {
	Err error
}

// SeekMsg is slider input: show every point up to Year.
type SeekMsg struct {
	Year int
}

type PlayMsg struct{}

type PauseMsg struct{}

// TickMsg is one firing of the playback timer started with generation Gen.
type TickMsg struct {
	Gen int
}

// HoverMsg is the pointer entering the marker for Year.
type HoverMsg struct {
	Year int
}

// LeaveMsg is the pointer leaving the marker for Year.
type LeaveMsg struct {
	Year int
}
