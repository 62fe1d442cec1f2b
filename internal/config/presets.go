package config

import (
	"sort"
	"time"
)

// Preset adjusts a base config. Fields left zero keep the base value.
type Preset struct {
	Description  string
	Period       time.Duration
	Transition   time.Duration
	TerminalYear int
}

var Presets = map[string]Preset{
	"classic": {
		Description:  "web chart behavior: playback stops at 2020",
		Period:       500 * time.Millisecond,
		Transition:   500 * time.Millisecond,
		TerminalYear: 2020,
	},
	"fast": {
		Description: "quick scrub through the record",
		Period:      100 * time.Millisecond,
		Transition:  80 * time.Millisecond,
	},
	"slow": {
		Description: "one year per second",
		Period:      time.Second,
		Transition:  800 * time.Millisecond,
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays a preset on c.
func (c *Config) Apply(p Preset) {
	if p.Period > 0 {
		c.Period = p.Period
	}
	if p.Transition > 0 {
		c.Transition = p.Transition
	}
	if p.TerminalYear != 0 {
		c.TerminalYear = p.TerminalYear
	}
}
