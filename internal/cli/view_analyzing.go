package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// analysisSteps are revealed at fixed offsets from mount.
var analysisSteps = []struct {
	at   time.Duration
	text string
}{
	{500 * time.Millisecond, "Analyzing bio-rhythms..."},
	{1500 * time.Millisecond, "Detecting elevated hormone levels..."},
	{2500 * time.Millisecond, "Heart rate abnormality confirmed."},
}

// analysisDwell is when the analysis completes. It runs on its own schedule
// and does not wait for the last step's reveal.
const analysisDwell = 4000 * time.Millisecond

const (
	analysisEventDone = 0
	ecgWidth          = 48
)

// analyzingView is the non-interactive "running the test" screen.
type analyzingView struct {
	state    *SharedState
	mount    schedule.Mount
	revealed int
	done     bool
	spin     spinner.Model
	bar      progress.Model
}

func newAnalyzingView(state *SharedState, mount schedule.Mount) *analyzingView {
	sp := spinner.New(spinner.WithSpinner(spinner.Pulse), spinner.WithStyle(formatter.StyleTeal))
	bar := progress.New(
		progress.WithGradient(string(formatter.ColorTealDeep), string(formatter.ColorPink)),
		progress.WithWidth(ecgWidth),
	)
	return &analyzingView{state: state, mount: mount, spin: sp, bar: bar}
}

func (v *analyzingView) ID() ViewID               { return ViewAnalyzing }
func (v *analyzingView) Mount() schedule.Mount    { return v.mount }
func (v *analyzingView) Title() string            { return "Analyzing" }
func (v *analyzingView) ShortHelp() []key.Binding { return nil }

func (v *analyzingView) Init() tea.Cmd {
	clock := v.state.Clock
	cmds := make([]tea.Cmd, 0, len(analysisSteps)+2)
	for i, step := range analysisSteps {
		cmds = append(cmds, schedule.Timer(clock, step.at, v.mount, i+1))
	}
	cmds = append(cmds,
		schedule.Timer(clock, analysisDwell, v.mount, analysisEventDone),
		v.spin.Tick,
	)
	return tea.Batch(cmds...)
}

func (v *analyzingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case schedule.FiredMsg:
		if msg.Mount != v.mount {
			return v, nil
		}
		if msg.Event == analysisEventDone {
			if !v.done {
				v.done = true
				_ = v.state.Lab.CompleteAnalysis()
			}
			return v, nil
		}
		if msg.Event > v.revealed && msg.Event <= len(analysisSteps) {
			v.revealed = msg.Event
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *analyzingView) View() string {
	var b strings.Builder

	trace := formatter.StyleTeal.Render(decor.ECG(ecgWidth, v.state.Frame))
	recording := v.spin.View() + " " + formatter.StyleTealDim.Render("RECORDING")
	b.WriteString("\n" + indent(formatter.RenderBoxColored("", recording+"\n\n"+trace, formatter.ColorSlate), 2) + "\n\n")

	for i, step := range analysisSteps[:v.revealed] {
		style := formatter.StyleTeal
		if i == len(analysisSteps)-1 {
			style = formatter.StyleAlert
		}
		b.WriteString("  " + style.Render(step.text) + "\n")
	}
	for range analysisSteps[v.revealed:] {
		b.WriteString("\n")
	}

	b.WriteString("\n  " + v.bar.ViewAs(float64(v.revealed)/float64(len(analysisSteps))) + "\n")
	return b.String()
}
