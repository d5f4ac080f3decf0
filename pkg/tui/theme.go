package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daygrid/pkg/style"
)

// Theme centralizes Lip Gloss styles for the start page, derived from
// the current style snapshot plus the time of day.
type Theme struct {
	Banner      lipgloss.Style
	Clock       lipgloss.Style
	Date        lipgloss.Style
	Bar         lipgloss.Style
	BarCommand  lipgloss.Style
	CellCurrent lipgloss.Style
	CellOther   lipgloss.Style
	CellBlank   lipgloss.Style
	DayLabel    lipgloss.Style
	Alert       lipgloss.Style
	Status      lipgloss.Style
}

// FromSnapshot builds the theme for one render pass. The banner colour
// follows the background mode: fluid interpolates the time-of-day
// gradient, colour mode uses the stored hex, image mode stays neutral.
func FromSnapshot(snap style.Snapshot, now time.Time) Theme {
	vars := snap.EffectiveFontVars()

	banner := lipgloss.NewStyle().Padding(0, 1)
	switch snap.BG.Mode {
	case style.ModeFluid:
		banner = banner.Background(lipgloss.Color(style.FluidHexAt(now)))
	case style.ModeColor:
		if snap.BG.Color != "" {
			banner = banner.Background(lipgloss.Color(snap.BG.Color))
		}
	}

	return Theme{
		Banner:      banner,
		Clock:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(vars["clock-text-color"])),
		Date:        lipgloss.NewStyle().Foreground(lipgloss.Color(vars["date-text-color"])),
		Bar:         lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(vars["search-text-color"])),
		BarCommand:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		CellCurrent: lipgloss.NewStyle().Bold(true),
		CellOther:   lipgloss.NewStyle().Faint(true),
		CellBlank:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("241")),
		DayLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Alert:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
