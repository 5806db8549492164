package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// labAutoSelectDelay is how long the bench waits before pre-selecting the
// first specimen for a user who has not picked one.
const labAutoSelectDelay = 500 * time.Millisecond

const labEventAutoSelect = 1

const (
	cardMaxWidth = 64
	cardMinWidth = 30
)

// labView is the specimen bench: one card per specimen, the selected card
// expanded, and the "Start Final Test" action.
type labView struct {
	state *SharedState
	mount schedule.Mount
}

func newLabView(state *SharedState, mount schedule.Mount) *labView {
	return &labView{state: state, mount: mount}
}

func (v *labView) ID() ViewID            { return ViewLab }
func (v *labView) Mount() schedule.Mount { return v.mount }
func (v *labView) Title() string         { return "Specimen Bench" }

func (v *labView) ShortHelp() []key.Binding {
	return []key.Binding{keyPrev, keyPick, keyStart}
}

func (v *labView) Init() tea.Cmd {
	return schedule.Timer(v.state.Clock, labAutoSelectDelay, v.mount, labEventAutoSelect)
}

func (v *labView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case schedule.FiredMsg:
		if msg.Mount == v.mount && msg.Event == labEventAutoSelect {
			v.autoSelect()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyStart):
			_ = v.state.Lab.BeginTest()
		case key.Matches(msg, keyPrev):
			v.move(-1)
		case key.Matches(msg, keyNext):
			v.move(+1)
		case key.Matches(msg, keyPick):
			v.pick(int(msg.Runes[0] - '1'))
		}
	}
	return v, nil
}

// autoSelect picks the first specimen unless the user already chose one.
func (v *labView) autoSelect() {
	if _, ok := v.state.Lab.Selection(); ok {
		return
	}
	_ = v.state.Lab.SelectSpecimen(v.state.Lab.Catalog().First().ID)
}

// pick selects the specimen at bench position i. Out-of-range positions
// are ignored.
func (v *labView) pick(i int) {
	c := v.state.Lab.Catalog()
	if i < 0 || i >= c.Len() {
		return
	}
	_ = v.state.Lab.SelectSpecimen(c.At(i).ID)
}

// move selects the neighbouring card, stopping at either end. With nothing
// selected, moving forward lands on the first card and back on the last.
func (v *labView) move(delta int) {
	c := v.state.Lab.Catalog()
	sel, ok := v.state.Lab.Selection()
	if !ok {
		if delta > 0 {
			v.pick(0)
		} else {
			v.pick(c.Len() - 1)
		}
		return
	}
	next := c.IndexOf(sel) + delta
	if next < 0 {
		next = 0
	}
	if next >= c.Len() {
		next = c.Len() - 1
	}
	v.pick(next)
}

func (v *labView) cardWidth() int {
	w := v.state.Width - 4
	if w <= 0 || w > cardMaxWidth {
		return cardMaxWidth
	}
	return max(w, cardMinWidth)
}

func (v *labView) View() string {
	var b strings.Builder

	env := formatter.Dim("🧬 Stable Environment")
	b.WriteString("  " + formatter.StyleFg.Render(formatter.LabExperiment) + "   " + env + "\n\n")

	sel, _ := v.state.Lab.Selection()
	for i, s := range v.state.Lab.Catalog().Specimens() {
		card := v.renderCard(i, s, s.ID == sel)
		b.WriteString(indent(card, 2) + "\n")
	}

	b.WriteString("\n  " + formatter.Button("📋 Start Final Test", true) + "\n")
	return b.String()
}

func (v *labView) renderCard(i int, s domain.Specimen, selected bool) string {
	size := decor.SizeCard
	border := formatter.ColorSlate
	marker := "  "
	if selected {
		size = decor.SizeSelected
		border = formatter.ColorTeal
		marker = formatter.StyleTeal.Render("▸ ")
	}

	label := lipgloss.JoinVertical(lipgloss.Left,
		marker+formatter.Bold(fmt.Sprintf("%d. %s", i+1, s.Name)),
		"  "+formatter.StyleDim.Italic(true).Render(s.ScientificName),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Center, decor.Rose(s.Color, size), "  ", label)

	if selected {
		body += "\n\n" + strings.Join([]string{
			formatter.FieldLine("⚗ Molecule", s.Molecule),
			formatter.FieldLine("🔍 Obs", s.Description),
			formatter.FieldLine("〰 Effect", s.Effect),
		}, "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(v.cardWidth()).
		Render(body)
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
