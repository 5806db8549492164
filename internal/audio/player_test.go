package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempAsset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultAsset)
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o644))
	return path
}

func TestNewExecPlayer_EmptyCommand(t *testing.T) {
	_, err := NewExecPlayer("   ", DefaultAsset)
	assert.ErrorIs(t, err, ErrNoPlayerCommand)
}

func TestExecPlayer_ArgsSubstitutesPlaceholder(t *testing.T) {
	p, err := NewExecPlayer(DefaultPlayerCommand, "a.mp3")
	require.NoError(t, err)

	assert.Equal(t, []string{"mpv", "--really-quiet", "--no-video", "--loop=inf", "a.mp3"}, p.Args())
}

func TestExecPlayer_ArgsAppendsWithoutPlaceholder(t *testing.T) {
	p, err := NewExecPlayer("ffplay -nodisp -loop 0", "a.mp3")
	require.NoError(t, err)

	assert.Equal(t, []string{"ffplay", "-nodisp", "-loop", "0", "a.mp3"}, p.Args())
}

func TestExecPlayer_MissingAssetBlocked(t *testing.T) {
	p, err := NewExecPlayer("mpv", filepath.Join(t.TempDir(), "nope.mp3"))
	require.NoError(t, err)

	err = p.Play()

	assert.ErrorIs(t, err, ErrPlaybackBlocked)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, p.Running())
}

func TestExecPlayer_MissingBinaryBlocked(t *testing.T) {
	p, err := NewExecPlayer("rosalab-no-such-player-binary", tempAsset(t))
	require.NoError(t, err)

	err = p.Play()

	assert.ErrorIs(t, err, ErrPlaybackBlocked)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecPlayer_StartsAndStopsProcess(t *testing.T) {
	if _, err := exec.LookPath("tail"); err != nil {
		t.Skip("tail not available")
	}
	p, err := NewExecPlayer("tail -f "+FilePlaceholder, tempAsset(t))
	require.NoError(t, err)

	require.NoError(t, p.Play())
	assert.True(t, p.Running())
	require.NoError(t, p.Play(), "second play is a no-op")

	require.NoError(t, p.Pause())
	assert.False(t, p.Running())
	require.NoError(t, p.Pause(), "second pause is a no-op")
}

func TestDisabledPlayer(t *testing.T) {
	c := NewController(DisabledPlayer{}, nil)

	assert.Equal(t, ResultBlocked, c.FirstInteraction())
	assert.False(t, c.Playing())
}

func TestExecPlayer_PlayerThatQuitsIsNotRunning(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	p, err := NewExecPlayer("true", tempAsset(t))
	require.NoError(t, err)

	require.NoError(t, p.Play())
	require.Eventually(t, func() bool { return !p.Running() }, 2*time.Second, 10*time.Millisecond)
	assert.False(t, p.Alive())

	assert.ErrorIs(t, p.Pause(), ErrPlaybackBlocked)
	assert.NoError(t, p.Pause())
}

func TestController_PlayerExitClearsFlag(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	p, err := NewExecPlayer("true", tempAsset(t))
	require.NoError(t, err)
	c := NewController(p, nil)

	require.Equal(t, ResultStarted, c.Toggle())
	require.Eventually(t, func() bool { return !c.Playing() }, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, ResultBlocked, c.Sync())
	assert.False(t, c.Playing())
	assert.False(t, p.Running())
	assert.NoError(t, c.Close())
}
