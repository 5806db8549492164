package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/charmbracelet/glamour"
)

// Fixed copy shared by the TUI and the printed reports.
const (
	LabTitle      = "Biology Lab"
	LabExperiment = `Exp. #1402: The "You" Effect`
	LabSubject    = "My Favorite Person"
	LabGreeting   = "Happy Rose Day"
)

// ReportWidth is the word-wrap width for printed reports.
const ReportWidth = 80

// CatalogMarkdown lists specimens in bench order as a markdown document.
func CatalogMarkdown(specimens []domain.Specimen) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", LabTitle, LabExperiment)
	for i, s := range specimens {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Name)
		fmt.Fprintf(&b, "*%s* · `%s` · id `%s`\n\n", s.ScientificName, s.Color, s.ID)
		fmt.Fprintf(&b, "- **Molecule:** %s\n", s.Molecule)
		fmt.Fprintf(&b, "- **Obs:** %s\n", s.Description)
		fmt.Fprintf(&b, "- **Effect:** %s\n\n", s.Effect)
	}
	return b.String()
}

// DiagnosisMarkdown renders one diagnosis as a markdown report. specimen is
// the display name of the tested rose and may be empty.
func DiagnosisMarkdown(specimen string, d domain.Diagnosis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Diagnosis: %s\n\n", d.Title)
	fmt.Fprintf(&b, "**Subject:** %s\n\n", LabSubject)
	if specimen != "" {
		fmt.Fprintf(&b, "**Specimen:** %s\n\n", specimen)
	}
	fmt.Fprintf(&b, "**Observation:** %s\n\n", d.Observation)
	fmt.Fprintf(&b, "**Conclusion:** %s\n\n", d.Conclusion)
	fmt.Fprintf(&b, "♥ %s ♥\n", LabGreeting)
	return b.String()
}

// RenderMarkdown renders md for the terminal with the named glamour style.
// "auto" (or empty) picks dark or light from the terminal background.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating %s renderer: %w", style, err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
