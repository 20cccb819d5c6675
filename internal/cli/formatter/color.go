package formatter

import (
	"fmt"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style for an integrity score: green from 80, yellow
// from 50, red below.
func ScoreColor(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// EnergyColor returns the style for an average energy level on the 1-5 scale.
func EnergyColor(avg float64) lipgloss.Style {
	switch {
	case avg == 0:
		return StyleDim
	case avg < engine.CriticalEnergyThreshold:
		return StyleRed
	case avg < 4:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// RatingColor returns the style for a 1-10 dimension rating.
func RatingColor(score int) lipgloss.Style {
	switch {
	case score < engine.ReviewAnalysis.WeakThreshold:
		return StyleRed
	case score >= engine.ReviewAnalysis.StrongThreshold:
		return StyleGreen
	default:
		return StyleFg
	}
}

// AlertIndicator returns a colored alert line such as "● SIMULATION_TRAP".
func AlertIndicator(code engine.AlertCode) string {
	switch code {
	case engine.AlertCriticalEnergy, engine.AlertSimulationTrap:
		return StyleRed.Render("● " + string(code))
	case engine.AlertVisibilityGap:
		return StylePurple.Render("● " + string(code))
	default:
		return StyleYellow.Render("● " + string(code))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
