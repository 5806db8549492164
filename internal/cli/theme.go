package cli

import (
	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// labHuhTheme styles huh forms in the lab palette.
func labHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: teal accent, rose selection
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorTeal).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorTeal)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorPink)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
