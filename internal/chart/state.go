package chart

// PlaybackState is the explicit playback state. It alone decides which
// control is enabled and whether a timer may run.
type PlaybackState int

const (
	Idle PlaybackState = iota
	Playing
)

func (s PlaybackState) String() string {
	switch s {
	case Playing:
		return "playing"
	default:
		return "idle"
	}
}

// Controls mirrors the Play and Pause buttons. Exactly one is enabled once
// the dataset is loaded.
type Controls struct {
	PlayEnabled  bool
	PauseEnabled bool
}
