package review

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the review UI.
type Theme struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Answer lipgloss.Style
	Rule   lipgloss.Style
	Faint  lipgloss.Style
	Empty  lipgloss.Style
	Status lipgloss.Style

	dark bool
}

// DefaultTheme returns the built-in theme, adapted to the terminal's
// background.
func DefaultTheme() Theme {
	dark := termenv.HasDarkBackground()

	rule := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if !dark {
		rule = rule.Foreground(lipgloss.Color("250"))
		faint = faint.Foreground(lipgloss.Color("243"))
	}

	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		Answer: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Rule:   rule,
		Faint:  faint,
		Empty:  lipgloss.NewStyle().Italic(true).Padding(1, 2),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		dark:   dark,
	}
}

// ProgressColor blends from red at 0% to green at 100% so the title bar shows
// how far through the due queue the session is.
func (t Theme) ProgressColor(pct int) color.Color {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	from, _ := colorful.Hex("#e05252")
	to, _ := colorful.Hex("#52c26e")
	blended := from.BlendLuv(to, float64(pct)/100.0).Clamped()
	return lipgloss.Color(blended.Hex())
}
