package decor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyph sizes. Rose picks the largest one that fits the requested size.
const (
	SizeCard     = 50
	SizeSelected = 60
	SizeReveal   = 140
)

type artRow struct {
	text  string
	bloom bool
}

var smallRose = []artRow{
	{` ,@, `, true},
	{` \|/ `, false},
	{`  |  `, false},
}

var mediumRose = []artRow{
	{` _,-,_ `, true},
	{`( (@) )`, true},
	{` '-.-' `, true},
	{` \ | / `, false},
	{`  \|/  `, false},
	{`   |   `, false},
}

var largeRose = []artRow{
	{`    .-"""-.    `, true},
	{`  .'  .-.  '.  `, true},
	{` /   ( @ )   \ `, true},
	{` |  '.___.'  | `, true},
	{`  \         /  `, true},
	{`   '-.___.-'   `, true},
	{` __    |    __ `, false},
	{`(__\   |   /__)`, false},
	{`   \   |   /   `, false},
	{`    '--|--'    `, false},
	{`       |       `, false},
}

// Rose renders a terminal rose tinted with color. size follows the pixel
// sizes of the vector art: up to SizeCard is small, up to 100 is medium,
// anything larger is the full reveal.
func Rose(color string, size int) string {
	var art []artRow
	switch {
	case size <= SizeCard:
		art = smallRose
	case size <= 100:
		art = mediumRose
	default:
		art = largeRose
	}

	bloom := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	stem := lipgloss.NewStyle().Foreground(lipgloss.Color(leafColor))

	lines := make([]string, len(art))
	for i, row := range art {
		if row.bloom {
			lines[i] = bloom.Render(row.text)
		} else {
			lines[i] = stem.Render(row.text)
		}
	}
	return strings.Join(lines, "\n")
}
