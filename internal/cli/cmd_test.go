package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/rosalab/internal/audio"
	"github.com/alexanderramin/rosalab/internal/config"
	"github.com/alexanderramin/rosalab/internal/decor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t))
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "surprise")
	assert.Error(t, err)
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--strict", "--no-audio", "--style", "ascii", "catalog")
	require.NoError(t, err)

	assert.True(t, app.Config.Strict)
	assert.True(t, app.Config.AudioDisabled)
	assert.Equal(t, "ascii", app.Config.GlamourStyle)
}

func TestRootCmd_LogsToFileWithSession(t *testing.T) {
	app := testApp(t)
	app.Log = nil
	path := filepath.Join(t.TempDir(), "rosalab.log")

	_, err := executeCmd(t, app, "--log-file", path, "--log-level", "debug", "diagnose", "blue")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	logs := string(data)
	assert.Contains(t, logs, `"session":`)
	assert.Contains(t, logs, "command started")
	assert.Contains(t, logs, "diagnosis fallback")
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	app := testApp(t)
	app.Log = nil

	_, err := executeCmd(t, app, "--log-file", filepath.Join(t.TempDir(), "x.log"), "--log-level", "loud", "catalog")
	assert.Error(t, err)
}

// --- catalog ---

func TestCatalogCmd_ListsSpecimensInOrder(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catalog")
	require.NoError(t, err)

	yellow := strings.Index(out, "Yellow Rose")
	pink := strings.Index(out, "Pink Rose")
	red := strings.Index(out, "Red Rose")
	require.True(t, yellow >= 0 && pink >= 0 && red >= 0, out)
	assert.Less(t, yellow, pink)
	assert.Less(t, pink, red)
	assert.Contains(t, out, "Rosa amoris")
}

// --- diagnose ---

func TestDiagnoseCmd_KnownSpecimen(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "diagnose", "pink")
	require.NoError(t, err)

	assert.Contains(t, out, "Acute Gratitude Overload")
	assert.Contains(t, out, "Pink Rose")
	assert.NotContains(t, out, "No record")
}

func TestDiagnoseCmd_UnknownFallsBackToDefault(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "diagnose", "blue")
	require.NoError(t, err)

	assert.Contains(t, out, `No record for "blue"`)
	assert.Contains(t, out, "Irreversibly In Love")
}

func TestDiagnoseCmd_NoArgWithoutTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "diagnose")
	assert.ErrorIs(t, err, ErrNoSpecimen)
}

func TestDiagnoseCmd_TooManyArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "diagnose", "red", "pink")
	assert.Error(t, err)
}

// --- rose ---

func TestRoseCmd_DefaultsToRed(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "rose")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<svg"), out)
	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, "watercolor-e11d48")
}

func TestRoseCmd_SpecimenColor(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "rose", "--specimen", "yellow", "--size", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "#facc15")
	assert.Contains(t, out, `width="60"`)
}

func TestRoseCmd_UnknownSpecimen(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "rose", "--specimen", "blue")
	assert.ErrorContains(t, err, `unknown specimen "blue"`)
}

func TestRoseCmd_InvalidColor(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "rose", "--color", "crimson")
	assert.ErrorIs(t, err, decor.ErrInvalidColor)
}

func TestRoseCmd_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rose.svg")

	out, err := executeCmd(t, testApp(t), "rose", "--color", "#f472b6", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "watercolor-f472b6")
}

// --- wiring ---

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultConfig()
	log := zap.NewNop()

	_, ok := newPlayer(cfg, log).(*audio.ExecPlayer)
	assert.True(t, ok)

	cfg.AudioDisabled = true
	assert.IsType(t, audio.DisabledPlayer{}, newPlayer(cfg, log))

	cfg = config.DefaultConfig()
	cfg.AudioPlayer = "  "
	assert.IsType(t, audio.DisabledPlayer{}, newPlayer(cfg, log))
}

func TestNewSharedState_StrictFromConfig(t *testing.T) {
	app := testApp(t)
	app.Config.Strict = true

	state := newSharedState(app, &fakePlayer{}, nil)

	assert.True(t, state.Lab.Strict())
	assert.Len(t, state.Petals.All(), decor.PetalCount)
}
