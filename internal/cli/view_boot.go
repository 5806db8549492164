package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// bootMessages appear one at a time, bootLineInterval apart.
var bootMessages = []string{
	"Initializing Bio-Lab v1.0...",
	"Calibrating Microscope Lenses...",
	"Sterilizing Petri Dishes...",
	"Detecting Pheromones...",
	"Subject Identified: 'You'...",
	"Loading Experiment #1402...",
}

const (
	bootLineInterval = 800 * time.Millisecond
	bootSettle       = 1000 * time.Millisecond

	// bootEventDone fires bootSettle after the last line. Line events use
	// the 1-based line number.
	bootEventDone = 0
)

// bootDuration is the fixed time from mount to CompleteBoot.
func bootDuration() time.Duration {
	return time.Duration(len(bootMessages))*bootLineInterval + bootSettle
}

// bootView types out the start-up log. It takes no input and cannot be skipped.
type bootView struct {
	state *SharedState
	mount schedule.Mount
	shown int
	done  bool
}

func newBootView(state *SharedState, mount schedule.Mount) *bootView {
	return &bootView{state: state, mount: mount}
}

func (v *bootView) ID() ViewID               { return ViewBoot }
func (v *bootView) Mount() schedule.Mount    { return v.mount }
func (v *bootView) Title() string            { return "Boot" }
func (v *bootView) ShortHelp() []key.Binding { return nil }

func (v *bootView) Init() tea.Cmd {
	clock := v.state.Clock
	cmds := make([]tea.Cmd, 0, len(bootMessages)+1)
	for k := 1; k <= len(bootMessages); k++ {
		cmds = append(cmds, schedule.Timer(clock, time.Duration(k)*bootLineInterval, v.mount, k))
	}
	cmds = append(cmds, schedule.Timer(clock, bootDuration(), v.mount, bootEventDone))
	return tea.Batch(cmds...)
}

func (v *bootView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	fired, ok := msg.(schedule.FiredMsg)
	if !ok || fired.Mount != v.mount {
		return v, nil
	}

	if fired.Event == bootEventDone {
		if !v.done {
			v.done = true
			// Rejections are logged by the sequencer.
			_ = v.state.Lab.CompleteBoot()
		}
		return v, nil
	}
	if fired.Event > v.shown && fired.Event <= len(bootMessages) {
		v.shown = fired.Event
	}
	return v, nil
}

func (v *bootView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range bootMessages[:v.shown] {
		b.WriteString("  " + formatter.StyleTealDim.Render(">") + " " + formatter.StyleTeal.Render(line) + "\n")
	}
	if !v.done {
		cursor := "▌"
		if v.state.Frame%4 >= 2 {
			cursor = " "
		}
		b.WriteString("  " + formatter.StyleTeal.Render(cursor) + "\n")
	}
	b.WriteString("\n  " + formatter.RenderProgress(float64(v.shown)/float64(len(bootMessages)), 24) + "\n")
	return b.String()
}
