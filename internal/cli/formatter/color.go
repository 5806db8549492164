package formatter

import "github.com/charmbracelet/lipgloss"

// Lab palette: teal instruments on slate, with rose accents.
var (
	ColorTeal     = lipgloss.Color("#2dd4bf")
	ColorTealDeep = lipgloss.Color("#0d9488")
	ColorPink     = lipgloss.Color("#f472b6")
	ColorRose     = lipgloss.Color("#e11d48")
	ColorSlate    = lipgloss.Color("#334155")
	ColorDim      = lipgloss.Color("#94a3b8")
	ColorFg       = lipgloss.Color("#e2e8f0")
	ColorBorder   = lipgloss.Color("#cbd5e1")
)

// Predefined lipgloss styles.
var (
	StyleTeal    = lipgloss.NewStyle().Foreground(ColorTeal)
	StyleTealDim = lipgloss.NewStyle().Foreground(ColorTealDeep)
	StylePink    = lipgloss.NewStyle().Foreground(ColorPink)
	StyleRose    = lipgloss.NewStyle().Foreground(ColorRose)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorTeal).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleAlert   = lipgloss.NewStyle().Foreground(ColorPink).Bold(true)
)

// Tint returns a bold style in an arbitrary #rrggbb color.
func Tint(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
