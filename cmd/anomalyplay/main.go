package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/config"
	"github.com/san-kum/anomalyplay/internal/ctxlog"
	"github.com/san-kum/anomalyplay/internal/dataset"
	"github.com/san-kum/anomalyplay/internal/export"
	"github.com/san-kum/anomalyplay/internal/script"
	"github.com/san-kum/anomalyplay/internal/viz"
	"github.com/spf13/cobra"
)

var (
	source       string
	configFile   string
	preset       string
	terminalYear int
	logLevel     string
	logFormat    string
	logFile      string
	// Per-command
	theme  string
	year   int
	hover  int
	engine string
	format string
	out    string
	dir    string
)

// main registers the commands, runs the TUI when no subcommand is given
// and exits with status 1 if the command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "anomalyplay",
		Short:         "animated global temperature anomaly chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlay,
	}
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&source, "source", config.DefaultSource, "dataset URL or .json/.csv file")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&terminalYear, "terminal-year", 0, "year playback stops at (0: last year in the data)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text, json)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive terminal chart",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the visible years as an ascii graph",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&year, "year", 0, "playhead year (0: last year)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the chart at a playhead year",
		Args:  cobra.NoArgs,
		RunE:  runSVG,
	}
	svgCmd.Flags().IntVar(&year, "year", 0, "playhead year (0: last year)")
	svgCmd.Flags().IntVar(&hover, "hover", 0, "hover the marker of this year")
	svgCmd.Flags().StringVar(&engine, "engine", "native", "renderer (native, gochart)")
	svgCmd.Flags().StringVar(&format, "format", "svg", "gochart output format (svg, png)")
	svgCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "write one svg per playback year",
		Args:  cobra.NoArgs,
		RunE:  runFrames,
	}
	framesCmd.Flags().StringVar(&dir, "dir", "frames", "output directory")

	jsonCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the frame at a playhead year as json",
		Args:  cobra.NoArgs,
		RunE:  runExportJSON,
	}
	jsonCmd.Flags().IntVar(&year, "year", 0, "playhead year (0: last year)")
	jsonCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	csvCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the visible years as csv",
		Args:  cobra.NoArgs,
		RunE:  runExportCSV,
	}
	csvCmd.Flags().IntVar(&year, "year", 0, "playhead year (0: last year)")
	csvCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	replayCmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "replay a scripted scenario and print the trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(playCmd, plotCmd, svgCmd, framesCmd, jsonCmd, csvCmd, replayCmd, presetsCmd)
	return rootCmd
}

// buildConfig resolves defaults, then the preset, then the config file,
// then any flag the user set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Apply(p)
	}
	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = source
	}
	if flags.Changed("terminal-year") {
		cfg.TerminalYear = terminalYear
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	return cfg, nil
}

// setup builds the config and a context carrying the logger. Logs go to
// fallback unless a log file is configured; the returned func closes it.
func setup(cmd *cobra.Command, fallback io.Writer) (context.Context, *config.Config, func(), error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	closer := func() {}
	var logger *slog.Logger
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { f.Close() }
		logger = ctxlog.New(cfg.Log.Level, cfg.Log.Format, f)
	case fallback != nil:
		logger = ctxlog.New(cfg.Log.Level, cfg.Log.Format, fallback)
	default:
		logger = ctxlog.Discard()
	}
	return ctxlog.WithLogger(cmd.Context(), logger), cfg, closer, nil
}

// loadController fetches the dataset and seeks to at, unless at is zero.
func loadController(ctx context.Context, cfg *config.Config, at int) (*chart.Controller, error) {
	src, err := dataset.Open(cfg.Source)
	if err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(ctx)
	log.Debug("fetching dataset", "source", src.String())

	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c := chart.New(cfg.ChartOptions())
	if err := c.Load(data); err != nil {
		return nil, err
	}
	log.Info("dataset loaded", "points", len(data), "terminal_year", c.TerminalYear())
	if at != 0 {
		c.Update(chart.SeekMsg{Year: at})
	}
	return c, nil
}

// output returns the writer for --out, stdout when unset.
func output() (io.Writer, func() error, error) {
	if out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, nil)
	if err != nil {
		return err
	}
	defer closer()

	src, err := dataset.Open(cfg.Source)
	if err != nil {
		return err
	}
	return viz.Run(ctx, viz.Options{
		Source: src,
		Chart:  cfg.ChartOptions(),
		Theme:  cfg.Theme,
	})
}

func runPlot(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	c, err := loadController(ctx, cfg, year)
	if err != nil {
		return err
	}
	visible := c.Visible()
	if len(visible) == 0 {
		fmt.Printf("no data up to %s\n", c.Label())
		return nil
	}
	first, last := visible[0].Year, visible[len(visible)-1].Year
	fmt.Println(asciigraph.Plot(visible.Means(),
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("temperature anomaly °C, %d-%d", first, last)),
	))
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	c, err := loadController(ctx, cfg, year)
	if err != nil {
		return err
	}
	if hover != 0 {
		c.Update(chart.HoverMsg{Year: hover})
		if c.Scene().Tooltip == nil {
			ctxlog.FromContext(ctx).Warn("hover year is not visible", "year", hover, "playhead", c.Playhead())
		}
	}

	w, done, err := output()
	if err != nil {
		return err
	}
	switch engine {
	case "native":
		var svg string
		if svg, err = export.SceneToSVG(c); err == nil {
			_, err = io.WriteString(w, svg)
		}
	case "gochart":
		err = export.GoChart(w, c, export.Format(format))
	default:
		err = fmt.Errorf("unknown engine %q", engine)
	}
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func runFrames(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	c, err := loadController(ctx, cfg, 0)
	if err != nil {
		return err
	}
	frames, err := export.Frames(ctx, c.Dataset(), cfg.ChartOptions(), dir)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", len(frames), dir)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	c, err := loadController(ctx, cfg, year)
	if err != nil {
		return err
	}
	w, done, err := output()
	if err != nil {
		return err
	}
	err = export.JSON(w, c)
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	c, err := loadController(ctx, cfg, year)
	if err != nil {
		return err
	}
	w, done, err := output()
	if err != nil {
		return err
	}
	err = export.CSV(w, c.Visible())
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, cfg, closer, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closer()

	sc, err := script.LoadScenario(args[0])
	if err != nil {
		return err
	}
	c, err := loadController(ctx, cfg, 0)
	if err != nil {
		return err
	}
	trace, err := script.Run(ctx, sc, c)
	if err != nil {
		return err
	}

	if sc.Name != "" {
		fmt.Printf("%s\n\n", sc.Name)
	}
	return printTrace(os.Stdout, trace)
}

func printTrace(out io.Writer, trace []script.Entry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tSTATE\tYEAR\tVISIBLE\tTOOLTIP")
	for _, e := range trace {
		tooltip := e.Tooltip
		if tooltip == "" {
			tooltip = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", e.Step, e.Action, e.State, e.Label, e.Visible, tooltip)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPERIOD\tTRANSITION\tSTOP\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		stop := "last year"
		if p.TerminalYear != 0 {
			stop = fmt.Sprint(p.TerminalYear)
		}
		fmt.Fprintf(w, "%s\t%v\t%v\t%s\t%s\n", name, p.Period, p.Transition, stop, p.Description)
	}
	return w.Flush()
}
