package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/anomalyplay/internal/chart"
	"github.com/san-kum/anomalyplay/internal/ctxlog"
	"github.com/san-kum/anomalyplay/internal/dataset"
)

const (
	width       = 72
	height      = 20
	panelWidth  = 48
	frameRate   = time.Second / 30
	minWidth    = 20
	minHeight   = 6
	sliderWidth = 30
)

// FrameMsg drives path transitions between timer ticks.
type FrameMsg time.Time

// Options configures the terminal host.
type Options struct {
	Source dataset.Source
	Chart  chart.Options
	Theme  string
}

// Model hosts a chart.Controller in a Bubble Tea program. It owns nothing
// but presentation; every chart input goes through the controller.
type Model struct {
	ctx  context.Context
	src  dataset.Source
	ctrl *chart.Controller

	width, height int

	path    []chart.Point
	tr      *chart.PathTransition
	trStart time.Time
	framing bool

	lastJoin chart.JoinStats
	showHelp bool
	now      func() time.Time
}

func NewModel(ctx context.Context, opts Options) Model {
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	return Model{
		ctx:    ctx,
		src:    opts.Source,
		ctrl:   chart.New(opts.Chart),
		width:  width,
		height: height,
		now:    time.Now,
	}
}

// Controller exposes the hosted controller.
func (m Model) Controller() *chart.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return fetch(m.ctx, m.src)
}

func fetch(ctx context.Context, src dataset.Source) tea.Cmd {
	return func() tea.Msg {
		log := ctxlog.FromContext(ctx)
		if src == nil {
			return chart.FetchFailedMsg{Err: dataset.ErrUnsupportedSource}
		}
		d, err := src.Fetch(ctx)
		if err != nil {
			log.Error("fetch failed", "source", src.String(), "error", err)
			return chart.FetchFailedMsg{Err: err}
		}
		log.Info("dataset loaded", "source", src.String(), "points", len(d))
		return chart.LoadedMsg{Data: d}
	}
}

func timer(gen int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg { return chart.TickMsg{Gen: gen} })
}

func frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Update handles input events and forwards chart messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.key(msg)
	case FrameMsg:
		return m.advance(time.Time(msg))
	case chart.TickMsg:
		cmd := m.apply(msg)
		if m.ctrl.State() == chart.Playing && m.ctrl.Gen() == msg.Gen {
			cmd = tea.Batch(cmd, timer(msg.Gen, m.ctrl.Options().Period))
		}
		return m, cmd
	case chart.LoadedMsg, chart.FetchFailedMsg:
		return m, m.apply(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width = w - panelWidth - gutterWidth - 4
	m.height = h - 4
	if m.width < minWidth {
		m.width = minWidth
	}
	if m.height < minHeight {
		m.height = minHeight
	}
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "t":
		NextTheme()
		return m, nil
	}
	if !m.ctrl.Loaded() {
		return m, nil
	}

	switch msg.String() {
	case "p":
		return m, m.apply(chart.PlayMsg{})
	case "x":
		return m, m.apply(chart.PauseMsg{})
	case " ":
		ctl := m.ctrl.Controls()
		if ctl.PlayEnabled {
			return m, m.apply(chart.PlayMsg{})
		}
		if ctl.PauseEnabled {
			return m, m.apply(chart.PauseMsg{})
		}
	case "left", "h":
		return m, m.seekBy(-1)
	case "right", "l":
		return m, m.seekBy(1)
	case "H":
		return m, m.seekBy(-10)
	case "L":
		return m, m.seekBy(10)
	case "home":
		lo, _ := m.ctrl.YearBounds()
		return m, m.apply(chart.SeekMsg{Year: lo})
	case "end":
		_, hi := m.ctrl.YearBounds()
		return m, m.apply(chart.SeekMsg{Year: hi})
	case "tab":
		m.hoverStep(1)
	case "shift+tab":
		m.hoverStep(-1)
	case "esc":
		if tt := m.ctrl.Scene().Tooltip; tt != nil {
			m.ctrl.Update(chart.LeaveMsg{Year: tt.Year})
		}
	}
	return m, nil
}

// seekBy moves the slider, which stays within the dataset's years.
func (m *Model) seekBy(delta int) tea.Cmd {
	lo, hi := m.ctrl.YearBounds()
	y := m.ctrl.Playhead() + delta
	if y < lo {
		y = lo
	}
	if y > hi {
		y = hi
	}
	return m.apply(chart.SeekMsg{Year: y})
}

// hoverStep moves the hover to the next or previous visible marker.
func (m *Model) hoverStep(dir int) {
	scene := m.ctrl.Scene()
	n := len(scene.Markers)
	if n == 0 {
		return
	}
	idx := 0
	if dir < 0 {
		idx = n - 1
	}
	if tt := scene.Tooltip; tt != nil {
		for i, mk := range scene.Markers {
			if mk.Year == tt.Year {
				idx = (i + dir + n) % n
				break
			}
		}
	}
	m.ctrl.Update(chart.HoverMsg{Year: scene.Markers[idx].Year})
}

// apply feeds msg to the controller and turns its effects into commands.
func (m *Model) apply(msg interface{}) tea.Cmd {
	eff := m.ctrl.Update(msg)
	log := ctxlog.FromContext(m.ctx)
	var cmds []tea.Cmd

	if _, ok := msg.(chart.LoadedMsg); ok && m.ctrl.Loaded() {
		m.path = m.ctrl.Scene().Path
		m.lastJoin = eff.Join
	}
	if eff.Err != nil {
		log.Error("chart error", "error", eff.Err)
	}
	if eff.StartTimer {
		log.Debug("timer started", "gen", eff.Gen, "period", eff.Period)
		cmds = append(cmds, timer(eff.Gen, eff.Period))
	}
	if eff.StopTimer {
		log.Debug("timer stopped", "gen", eff.Gen)
	}
	if eff.Transition != nil {
		m.lastJoin = eff.Join
		if cmd := m.startTransition(eff.Transition); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) startTransition(tr *chart.PathTransition) tea.Cmd {
	if tr.Done(0) {
		m.tr = nil
		m.path = tr.At(0)
		return nil
	}
	m.tr = tr
	m.trStart = m.now()
	m.path = tr.At(0)
	if m.framing {
		return nil
	}
	m.framing = true
	return frame()
}

func (m Model) advance(t time.Time) (tea.Model, tea.Cmd) {
	if m.tr == nil {
		m.framing = false
		return m, nil
	}
	elapsed := t.Sub(m.trStart)
	m.path = m.tr.At(elapsed)
	if m.tr.Done(elapsed) {
		m.tr = nil
		m.framing = false
		return m, nil
	}
	return m, frame()
}

// View renders the TUI interface.
func (m Model) View() string {
	if !m.ctrl.Loaded() {
		style := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Padding(1, 2)
		if m.ctrl.Err() != nil {
			style = style.Foreground(CurrentTheme.Error)
		}
		return style.Render(m.ctrl.Message()) + "\n" + helpStyle.Render("  q quit")
	}

	chartView := chartStyle.Render(renderChart(m.ctrl, m.path, m.width, m.height))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, chartView, panelStyle.Render(m.panel()))
	if m.showHelp {
		return helpBox + "\n" + mainView
	}
	return mainView
}

func (m Model) panel() string {
	var s strings.Builder
	s.WriteString(headerStyle().Render("GLOBAL TEMPERATURE ANOMALY") + "\n")

	status := StatusIdle.Render("IDLE")
	if m.ctrl.State() == chart.Playing {
		status = StatusPlaying.Render(fmt.Sprintf("PLAYING → %d", m.ctrl.TerminalYear()))
	}
	s.WriteString(status + "\n\n")

	lo, hi := m.ctrl.YearBounds()
	s.WriteString(field("Year", m.ctrl.Label()))
	s.WriteString(SliderBar(m.ctrl.Playhead(), lo, hi, sliderWidth) + "\n")
	s.WriteString(fmt.Sprintf("%-*d%*d\n\n", sliderWidth/2, lo, sliderWidth-sliderWidth/2, hi))

	ctl := m.ctrl.Controls()
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, Button("▶ Play", ctl.PlayEnabled), " ", Button("❚❚ Pause", ctl.PauseEnabled)) + "\n\n")

	visible := m.ctrl.Visible()
	s.WriteString(field("Visible", fmt.Sprintf("%d / %d", len(visible), len(m.ctrl.Dataset()))))
	hover := "-"
	if tt := m.ctrl.Scene().Tooltip; tt != nil {
		hover = tt.Text
	}
	s.WriteString(field("Hover", hover))
	j := m.lastJoin
	s.WriteString(field("Join", fmt.Sprintf("+%d ~%d -%d", j.Entered, j.Updated, j.Exited)))

	if means := visible.Means(); len(means) > 1 {
		g := asciigraph.Plot(means, asciigraph.Height(5), asciigraph.Width(sliderWidth), asciigraph.Caption("mean °C"))
		s.WriteString(graphStyle.Render(g) + "\n")
	}

	s.WriteString(Separator(sliderWidth) + "\n")
	s.WriteString(helpStyle.Render("P:Play X:Pause SP:Toggle\n←→:Year H/L:±10 Tab:Hover\nT:Theme ?:Help Q:Quit"))
	return s.String()
}

const helpBox = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  P          - Play                   ║
║  X          - Pause                  ║
║  Space      - Play/Pause             ║
║  Left/H     - Previous year          ║
║  Right/L    - Next year              ║
║  Shift H/L  - Back/forward 10 years  ║
║  Home/End   - First/last year        ║
║  Tab        - Hover next marker      ║
║  Shift+Tab  - Hover previous marker  ║
║  Esc        - Clear hover            ║
║  T          - Cycle themes           ║
║  ?          - Toggle this help       ║
║  Q          - Quit                   ║
╚══════════════════════════════════════╝`

// Run starts the terminal host and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
