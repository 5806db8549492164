package cli

import (
	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewBoot ViewID = iota
	ViewLab
	ViewAnalyzing
	ViewDiagnosis
)

// viewForStage maps a sequencer stage to the view that presents it.
func viewForStage(s domain.Stage) ViewID {
	switch s {
	case domain.StageLab:
		return ViewLab
	case domain.StageAnalyzing:
		return ViewAnalyzing
	case domain.StageDiagnosis:
		return ViewDiagnosis
	default:
		return ViewBoot
	}
}

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	Mount() schedule.Mount    // token carried by this mount's timers
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
