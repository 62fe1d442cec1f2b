// Package viz is the terminal host for the temperature anomaly chart.
//
// [Model] wraps a chart.Controller in a Bubble Tea program: it fetches the
// dataset in Init, turns controller effects into timer and frame commands
// and draws the scene on a Braille [Canvas] (2x4 sub-pixels per cell) next
// to a side panel with the year slider and the Play/Pause controls.
//
// # Key Bindings
//
//	P / X      - Play / Pause
//	Space      - whichever control is enabled
//	←→ / h l   - slider ±1 year
//	H L        - slider ±10 years
//	Home End   - first / last year
//	Tab        - hover next visible marker (Shift+Tab previous)
//	Esc        - clear hover
//	T          - cycle color themes
//	?          - show help overlay
package viz
