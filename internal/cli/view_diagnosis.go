package cli

import (
	"strings"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// diagnosisView reveals the result for the selected specimen.
type diagnosisView struct {
	state *SharedState
	mount schedule.Mount
	diag  domain.Diagnosis
}

func newDiagnosisView(state *SharedState, mount schedule.Mount) *diagnosisView {
	return &diagnosisView{
		state: state,
		mount: mount,
		diag:  state.Lab.Diagnosis(),
	}
}

func (v *diagnosisView) ID() ViewID            { return ViewDiagnosis }
func (v *diagnosisView) Mount() schedule.Mount { return v.mount }
func (v *diagnosisView) Title() string         { return "Diagnosis" }

func (v *diagnosisView) ShortHelp() []key.Binding {
	return []key.Binding{keyAgain}
}

func (v *diagnosisView) Init() tea.Cmd { return nil }

func (v *diagnosisView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keyAgain) {
		_ = v.state.Lab.Reset()
	}
	return v, nil
}

func (v *diagnosisView) View() string {
	d := v.diag
	title := formatter.Tint(d.HexColor)

	body := strings.Join([]string{
		decor.Rose(d.HexColor, decor.SizeReveal),
		"",
		formatter.StyleFg.Italic(true).Render("Diagnosis:"),
		title.Render(d.Title),
		"",
		formatter.FieldLine("Subject", formatter.LabSubject),
		formatter.FieldLine("Observation", d.Observation),
		formatter.FieldLine("Conclusion", d.Conclusion),
		"",
		formatter.StylePink.Render("♥ " + formatter.LabGreeting + " ♥"),
		"",
		formatter.Button("↺ New Experiment", false),
	}, "\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorPink).
		Padding(1, 3).
		Width(min(max(v.state.Width-4, cardMinWidth), cardMaxWidth+8)).
		Render(body)

	return "\n" + indent(card, 2)
}
