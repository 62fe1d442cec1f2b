package config

import (
	"os"
	"time"

	"github.com/san-kum/anomalyplay/internal/chart"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSource    = "http://localhost:5000/data"
	DefaultTheme     = "minimal"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

type Config struct {
	Source       string        `yaml:"source"`
	Layout       chart.Layout  `yaml:"layout"`
	Period       time.Duration `yaml:"period"`
	Transition   time.Duration `yaml:"transition"`
	TerminalYear int           `yaml:"terminal_year"`
	Padding      float64       `yaml:"padding"`
	MarkerRadius float64       `yaml:"marker_radius"`
	HoverRadius  float64       `yaml:"hover_radius"`
	Theme        string        `yaml:"theme"`
	Log          LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func DefaultConfig() *Config {
	opts := chart.DefaultOptions()
	return &Config{
		Source:       DefaultSource,
		Layout:       opts.Layout,
		Period:       opts.Period,
		Transition:   opts.Transition,
		Padding:      opts.Padding,
		MarkerRadius: opts.MarkerRadius,
		HoverRadius:  opts.HoverRadius,
		Theme:        DefaultTheme,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path on c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ChartOptions converts the config into controller options.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		Layout:       c.Layout,
		Period:       c.Period,
		Transition:   c.Transition,
		TerminalYear: c.TerminalYear,
		Padding:      c.Padding,
		MarkerRadius: c.MarkerRadius,
		HoverRadius:  c.HoverRadius,
	}
}
