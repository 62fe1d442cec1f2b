package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Line   lipgloss.Color
	Marker lipgloss.Color
	Hover  lipgloss.Color
	Axis   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:   "classic",
		Line:   lipgloss.Color("#4682b4"), // steelblue
		Marker: lipgloss.Color("#ff0000"),
		Hover:  lipgloss.Color("#ffffff"),
		Axis:   lipgloss.Color("#aaaaaa"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#4682b4"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Line:   lipgloss.Color("#ffffff"),
		Marker: lipgloss.Color("#0088ff"),
		Hover:  lipgloss.Color("#ffaa00"),
		Axis:   lipgloss.Color("#888888"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Line:   lipgloss.Color("#00ff00"), // Green phosphor
		Marker: lipgloss.Color("#88ff88"),
		Hover:  lipgloss.Color("#ffff00"),
		Axis:   lipgloss.Color("#00cc00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Line:   lipgloss.Color("#00a8cc"),
		Marker: lipgloss.Color("#ffd700"),
		Hover:  lipgloss.Color("#ffffff"),
		Axis:   lipgloss.Color("#4488aa"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#0077be"),
		Error:  lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Line:   lipgloss.Color("#feca57"),
		Marker: lipgloss.Color("#ff6b6b"), // Coral
		Hover:  lipgloss.Color("#ff9ff3"),
		Axis:   lipgloss.Color("#8b6b8c"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#ff9ff3"),
		Error:  lipgloss.Color("#ff4757"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeMinimal,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
