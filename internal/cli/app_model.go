package cli

import (
	"strings"

	"github.com/alexanderramin/rosalab/internal/cli/formatter"
	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// petalRows is the height of the drifting-petal strip under the header.
const petalRows = 3

// appModel is the root bubbletea Model for the TUI.
// It keeps exactly one view mounted: the one matching the sequencer's stage.
type appModel struct {
	state    *SharedState
	view     View
	mounts   *schedule.Mounter
	quitting bool
}

func newAppModel(state *SharedState) appModel {
	m := appModel{
		state:  state,
		mounts: &schedule.Mounter{},
	}
	m.view = m.mountView(state.Lab.Stage())
	return m
}

// mountView builds a fresh view for stage under a new mount token. Timers
// belonging to any earlier mount are ignored from here on.
func (m *appModel) mountView(stage domain.Stage) View {
	mount := m.mounts.Next()
	m.state.Log.Debug("view mounted",
		zap.Stringer("stage", stage),
		zap.Uint64("mount", uint64(mount)))

	switch viewForStage(stage) {
	case ViewLab:
		return newLabView(m.state, mount)
	case ViewAnalyzing:
		return newAnalyzingView(m.state, mount)
	case ViewDiagnosis:
		return newDiagnosisView(m.state, mount)
	default:
		return newBootView(m.state, mount)
	}
}

func (m appModel) ambientTick() tea.Cmd {
	return m.state.Clock.After(ambientInterval, ambientTickMsg{})
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.view.Init(), m.ambientTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Wheel scrolls arrive as presses too; only clicks count.
		if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
			m.state.Audio.FirstInteraction()
		}
		return m.forward(msg)

	case ambientTickMsg:
		m.state.Frame++
		m.state.Audio.Sync()
		return m, m.ambientTick()

	case schedule.FiredMsg:
		// A timer from a view that is no longer mounted.
		if msg.Mount != m.view.Mount() {
			m.state.Log.Debug("stale timer dropped",
				zap.Uint64("mount", uint64(msg.Mount)),
				zap.Uint64("active", uint64(m.view.Mount())))
			return m, nil
		}
		return m.forward(msg)
	}

	return m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// The music control does not count as the first interaction.
	if key.Matches(msg, keyMusic) {
		m.state.Audio.Toggle()
		return m, nil
	}

	m.state.Audio.FirstInteraction()

	if key.Matches(msg, keyQuit) {
		return m.quit()
	}
	return m.forward(msg)
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if err := m.state.Audio.Close(); err != nil {
		m.state.Log.Warn("stopping audio", zap.Error(err))
	}
	m.quitting = true
	return m, tea.Quit
}

// forward hands msg to the active view, then re-mounts if the view moved
// the sequencer to another stage.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.view.Update(msg)
	m.view = updated.(View)
	return m, tea.Batch(cmd, m.syncStage())
}

func (m *appModel) syncStage() tea.Cmd {
	stage := m.state.Lab.Stage()
	if viewForStage(stage) == m.view.ID() {
		return nil
	}
	m.view = m.mountView(stage)
	return m.view.Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.view.ID() != ViewBoot && m.state.Width > 0 {
		petals := m.state.Petals.Frame(m.state.Elapsed(), m.state.Width, petalRows)
		sections = append(sections, formatter.StylePink.Faint(true).Render(petals))
	}

	sections = append(sections, m.view.View())
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("🔬 " + formatter.LabTitle)
	if t := m.view.Title(); t != "" {
		title += " " + formatter.Dim("›") + " " + formatter.Dim(t)
	}

	music := formatter.Dim("♪ off")
	if m.state.Audio.Playing() {
		music = formatter.StyleTeal.Render("♪ on")
	}

	gap := max(m.state.Width-lipgloss.Width(title)-lipgloss.Width(music), 2)
	header := title + strings.Repeat(" ", gap) + music

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.view.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints,
		formatter.Dim(keyMusic.Help().Key+": "+keyMusic.Help().Desc),
		formatter.Dim(keyQuit.Help().Key+": "+keyQuit.Help().Desc))

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
