package cli

import (
	"time"

	"github.com/alexanderramin/rosalab/internal/audio"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/alexanderramin/rosalab/internal/lab"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"go.uber.org/zap"
)

// ambientInterval is how often the petals and heart trace move.
const ambientInterval = 200 * time.Millisecond

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Lab   *lab.Sequencer
	Audio *audio.Controller
	Clock schedule.Clock
	Log   *zap.Logger

	Petals decor.Petals

	// Ambient frame counter, advanced every ambientInterval regardless of stage.
	Frame int

	// Terminal dimensions
	Width  int
	Height int
}

// Elapsed is the ambient animation time since the program started.
func (s *SharedState) Elapsed() time.Duration {
	return time.Duration(s.Frame) * ambientInterval
}
