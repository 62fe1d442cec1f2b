package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	panelStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	chartStyle = lipgloss.NewStyle().Padding(1, 1)
	graphStyle = lipgloss.NewStyle().Padding(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	StatusPlaying = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusIdle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent).MarginBottom(1)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

// SliderBar renders a year slider with the thumb at pos within [min, max].
func SliderBar(pos, min, max, width int) string {
	if width < 2 {
		width = 2
	}
	ratio := 1.0
	if max > min {
		ratio = float64(pos-min) / float64(max-min)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	thumb := int(ratio * float64(width-1))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(strings.Repeat("━", thumb)))
	b.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render("●"))
	b.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(strings.Repeat("─", width-1-thumb)))
	return b.String()
}

// Button renders a control, dimmed when disabled.
func Button(label string, enabled bool) string {
	s := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	if enabled {
		s = s.Foreground(CurrentTheme.Text).BorderForeground(CurrentTheme.Accent).Bold(true)
	} else {
		s = s.Foreground(CurrentTheme.Muted).BorderForeground(CurrentTheme.Muted).Faint(true)
	}
	return s.Render(label)
}

// Separator draws a muted rule.
func Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return strings.Repeat("─", width)
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(left + " ◆ " + right)
}

func field(label, value string) string {
	return fmt.Sprintf("%s%s\n", labelStyle.Render(label), valueStyle().Render(value))
}
