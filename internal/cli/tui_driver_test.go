package cli

import (
	"errors"
	"testing"

	"github.com/alexanderramin/rosalab/internal/audio"
	"github.com/alexanderramin/rosalab/internal/catalog"
	"github.com/alexanderramin/rosalab/internal/config"
	"github.com/alexanderramin/rosalab/internal/domain"
	"github.com/alexanderramin/rosalab/internal/schedule"
	"github.com/alexanderramin/rosalab/internal/teatest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakePlayer records calls instead of spawning a process. Setting dead
// simulates a player that quit by itself.
type fakePlayer struct {
	plays  int
	pauses int
	err    error
	dead   bool
}

func (f *fakePlayer) Play() error {
	f.plays++
	if f.err == nil {
		f.dead = false
	}
	return f.err
}

func (f *fakePlayer) Alive() bool { return !f.dead }

func (f *fakePlayer) Pause() error {
	f.pauses++
	return nil
}

var errRefused = errors.New("refused")

// testApp wires an App over the built-in catalog with a test logger.
// Commands never see a terminal.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.GlamourStyle = "notty"
	return &App{
		Config:        cfg,
		Catalog:       catalog.Default(),
		Log:           zaptest.NewLogger(t),
		IsInteractive: func() bool { return false },
	}
}

// TestDriver wraps teatest.Driver with inspection of the app model's
// sequencer, audio controller and mounted view.
type TestDriver struct {
	*teatest.Driver
	Player *fakePlayer
}

// NewTestDriver builds the app model on a manual clock and a fake player,
// sets a 120x40 terminal and drains Init(). Virtual time starts at zero.
func NewTestDriver(t *testing.T) *TestDriver {
	t.Helper()
	return newTestDriverWith(t, &fakePlayer{})
}

func newTestDriverWith(t *testing.T, player *fakePlayer) *TestDriver {
	t.Helper()

	clock := schedule.NewManualClock()
	state := newSharedState(testApp(t), player, clock)
	m := newAppModel(state)

	d := teatest.New(t, m, teatest.WithClock(clock), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Player: player}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// ToLab runs the boot sequence to completion.
func (d *TestDriver) ToLab() {
	d.T.Helper()
	d.Advance(bootDuration())
	require.Equal(d.T, domain.StageLab, d.Stage(), "boot should have completed")
}

// ToDiagnosis picks the specimen at bench key k (0 for none), starts the
// test and waits out the analysis.
func (d *TestDriver) ToDiagnosis(k rune) {
	d.T.Helper()
	d.ToLab()
	if k != 0 {
		d.PressKey(k)
	}
	d.PressEnter()
	require.Equal(d.T, domain.StageAnalyzing, d.Stage())
	d.Advance(analysisDwell)
	require.Equal(d.T, domain.StageDiagnosis, d.Stage())
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) state() *SharedState {
	return d.appModel().state
}

// Stage returns the sequencer's stage.
func (d *TestDriver) Stage() domain.Stage {
	return d.state().Lab.Stage()
}

// Selection returns the selected specimen id, or "" when none.
func (d *TestDriver) Selection() string {
	id, _ := d.state().Lab.Selection()
	return id
}

// ActiveViewID returns the ViewID of the mounted view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().view.ID()
}

// ActiveMount returns the mount token of the mounted view.
func (d *TestDriver) ActiveMount() schedule.Mount {
	return d.appModel().view.Mount()
}

// Audio returns the session's audio controller.
func (d *TestDriver) Audio() *audio.Controller {
	return d.state().Audio
}

// IsQuitting reports whether the model asked the program to exit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
