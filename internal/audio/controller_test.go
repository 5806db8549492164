package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakePlayer struct {
	playErr error
	plays   int
	pauses  int
}

func (f *fakePlayer) Play() error {
	f.plays++
	return f.playErr
}

func (f *fakePlayer) Pause() error {
	f.pauses++
	return nil
}

func TestToggle_TwiceReturnsToSilent(t *testing.T) {
	p := &fakePlayer{}
	c := NewController(p, nil)

	assert.Equal(t, ResultStarted, c.Toggle())
	assert.True(t, c.Playing())
	assert.Equal(t, ResultPaused, c.Toggle())
	assert.False(t, c.Playing())

	assert.Equal(t, 1, p.plays)
	assert.Equal(t, 1, p.pauses)
}

func TestToggle_DoesNotDisarmHook(t *testing.T) {
	c := NewController(&fakePlayer{}, nil)

	c.Toggle()

	assert.True(t, c.HookArmed())
}

func TestToggle_BlockedLeavesFlagFalse(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewController(&fakePlayer{playErr: ErrPlaybackBlocked}, zap.New(core))

	assert.Equal(t, ResultBlocked, c.Toggle())
	assert.False(t, c.Playing())
	assert.Equal(t, 1, logs.FilterMessage("audio playback blocked").Len())
}

func TestFirstInteraction_StartsOnce(t *testing.T) {
	p := &fakePlayer{}
	c := NewController(p, nil)

	assert.Equal(t, ResultStarted, c.FirstInteraction())
	assert.False(t, c.HookArmed())

	c.Toggle() // pause
	assert.Equal(t, ResultSkipped, c.FirstInteraction())
	assert.False(t, c.Playing())
	assert.Equal(t, 1, p.plays)
}

func TestFirstInteraction_SkipsWhenAlreadyPlaying(t *testing.T) {
	p := &fakePlayer{}
	c := NewController(p, nil)
	c.Toggle()

	assert.Equal(t, ResultSkipped, c.FirstInteraction())
	assert.False(t, c.HookArmed())
	assert.Equal(t, 1, p.plays)
}

func TestFirstInteraction_FailureIsNotRetried(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := &fakePlayer{playErr: errors.New("autoplay refused")}
	c := NewController(p, zap.New(core))

	assert.Equal(t, ResultBlocked, c.FirstInteraction())
	assert.Equal(t, ResultSkipped, c.FirstInteraction())

	assert.Equal(t, 1, p.plays)
	assert.False(t, c.Playing())
	entries := logs.FilterMessage("audio playback blocked").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "first_interaction", entries[0].ContextMap()["trigger"])
	}
}

func TestClose_PausesOnlyWhenPlaying(t *testing.T) {
	p := &fakePlayer{}
	c := NewController(p, nil)

	assert.NoError(t, c.Close())
	assert.Zero(t, p.pauses)

	c.Toggle()
	assert.NoError(t, c.Close())
	assert.Equal(t, 1, p.pauses)
	assert.False(t, c.Playing())
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "started", ResultStarted.String())
	assert.Equal(t, "paused", ResultPaused.String())
	assert.Equal(t, "blocked", ResultBlocked.String())
	assert.Equal(t, "skipped", ResultSkipped.String())
}

// watchedPlayer is a fakePlayer whose stream can end on its own.
type watchedPlayer struct {
	fakePlayer
	dead bool
}

func (w *watchedPlayer) Play() error {
	w.dead = false
	return w.fakePlayer.Play()
}

func (w *watchedPlayer) Alive() bool { return !w.dead }

func TestSync_PlayerExitClearsFlag(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := &watchedPlayer{}
	c := NewController(p, zap.New(core))

	assert.Equal(t, ResultStarted, c.Toggle())
	p.dead = true

	assert.False(t, c.Playing())
	assert.Equal(t, ResultBlocked, c.Sync())
	assert.Equal(t, 1, p.pauses, "exited player is reaped")
	assert.Equal(t, 1, logs.FilterMessage("audio playback blocked").Len())

	assert.Equal(t, ResultSkipped, c.Sync())
}

func TestToggle_AfterPlayerExitStartsAgain(t *testing.T) {
	p := &watchedPlayer{}
	c := NewController(p, nil)

	c.Toggle()
	p.dead = true

	assert.Equal(t, ResultStarted, c.Toggle())
	assert.True(t, c.Playing())
	assert.Equal(t, 2, p.plays)
}

func TestFirstInteraction_AfterPlayerExitRestarts(t *testing.T) {
	p := &watchedPlayer{}
	c := NewController(p, nil)

	c.Toggle()
	p.dead = true

	assert.Equal(t, ResultStarted, c.FirstInteraction())
	assert.True(t, c.Playing())
}
