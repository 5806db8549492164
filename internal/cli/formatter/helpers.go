package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	return RenderBoxColored(title, content, ColorDim)
}

// RenderBoxColored is RenderBox with a chosen border color.
func RenderBoxColored(title string, content string, border lipgloss.TerminalColor) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Button renders a call-to-action label the way the lab draws its buttons.
func Button(label string, primary bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if primary {
		style = style.Foreground(lipgloss.Color("#0f172a")).Background(ColorTeal)
	} else {
		style = style.Foreground(ColorDim)
	}
	return style.Render(label)
}

// FieldLine renders "Label: value" with the label bold and teal.
func FieldLine(label, value string) string {
	return StyleTealDim.Bold(true).Render(label+":") + " " + value
}
