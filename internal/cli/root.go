package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/rosalab/internal/audio"
	"github.com/alexanderramin/rosalab/internal/catalog"
	"github.com/alexanderramin/rosalab/internal/config"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/alexanderramin/rosalab/internal/lab"
	"github.com/alexanderramin/rosalab/internal/logging"
	"github.com/alexanderramin/rosalab/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// petalSeed fixes the petal layout so every run drifts the same way.
const petalSeed = 1402

// ErrNotInteractive is returned when the experience is started without a terminal.
var ErrNotInteractive = errors.New("rosalab needs an interactive terminal")

// App holds what the commands share: settings, static data and the logger.
type App struct {
	Config  config.Config
	Catalog *catalog.Catalog

	// Log is built from Config before any command runs unless already set.
	Log *zap.Logger

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "rosalab" command. Run bare, it starts
// the experience; the subcommands print the lab's static data.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rosalab",
		Short:         "A small biology lab experiment for Rose Day",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Log != nil {
				return nil
			}
			log, err := logging.New(app.Config.LogFile, app.Config.LogLevel)
			if err != nil {
				return err
			}
			app.Log, _ = logging.WithSession(log)
			app.Log.Debug("command started", zap.String("command", cmd.CommandPath()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.Log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperience(cmd, app)
		},
	}

	config.BindFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newCatalogCmd(app),
		newDiagnoseCmd(app),
		newRoseCmd(app),
	)

	return root
}

// newPlayer picks the audio backend for cfg. Anything that prevents the
// external player from being set up degrades to silence.
func newPlayer(cfg config.Config, log *zap.Logger) audio.Player {
	if cfg.AudioDisabled {
		return audio.DisabledPlayer{}
	}
	p, err := audio.NewExecPlayer(cfg.AudioPlayer, cfg.AudioFile)
	if err != nil {
		log.Warn("audio unavailable", zap.Error(err))
		return audio.DisabledPlayer{}
	}
	return p
}

// newSharedState wires the sequencer and audio controller for one session.
func newSharedState(app *App, player audio.Player, clock schedule.Clock) *SharedState {
	seq := lab.NewSequencer(app.Catalog,
		lab.WithLogger(app.Log.Named("lab")),
		lab.WithStrict(app.Config.Strict),
	)
	return &SharedState{
		Lab:    seq,
		Audio:  audio.NewController(player, app.Log.Named("audio")),
		Clock:  clock,
		Log:    app.Log.Named("tui"),
		Petals: decor.NewPetals(petalSeed, decor.PetalCount),
	}
}

func runExperience(cmd *cobra.Command, app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return ErrNotInteractive
	}

	state := newSharedState(app, newPlayer(app.Config, app.Log), schedule.RealClock{})
	defer func() {
		if err := state.Audio.Close(); err != nil {
			app.Log.Warn("stopping audio", zap.Error(err))
		}
	}()

	p := tea.NewProgram(newAppModel(state),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running experience: %w", err)
	}
	return nil
}
