// Package audio controls the single looping background track.
//
// Playback is best-effort. A refused start is reported as ResultBlocked and
// logged; it never becomes a user-facing error and is never retried.
package audio

import (
	"go.uber.org/zap"
)

// DefaultAsset is the background track, relative to the working directory.
const DefaultAsset = "background.mp3"

// Player starts and stops the underlying stream.
type Player interface {
	Play() error
	Pause() error
}

// Watcher is implemented by players whose stream can end without being
// paused, such as an external process that quits.
type Watcher interface {
	Alive() bool
}

// Result describes what a controller call did.
type Result int

const (
	ResultSkipped Result = iota
	ResultStarted
	ResultPaused
	ResultBlocked
)

func (r Result) String() string {
	switch r {
	case ResultStarted:
		return "started"
	case ResultPaused:
		return "paused"
	case ResultBlocked:
		return "blocked"
	default:
		return "skipped"
	}
}

// Controller owns the playback flag and the one-shot first-interaction hook.
type Controller struct {
	player  Player
	playing bool
	armed   bool
	log     *zap.Logger
}

// NewController wraps p. The first-interaction hook starts armed.
func NewController(p Player, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{player: p, armed: true, log: log}
}

// Playing reports the playback flag. A player that has stopped by itself
// does not count as playing.
func (c *Controller) Playing() bool { return c.playing && c.alive() }

func (c *Controller) alive() bool {
	w, ok := c.player.(Watcher)
	return !ok || w.Alive()
}

// Sync notices a player that stopped on its own, clears the flag and
// reports ResultBlocked. Otherwise it returns ResultSkipped.
func (c *Controller) Sync() Result {
	if !c.playing || c.alive() {
		return ResultSkipped
	}
	c.playing = false
	err := c.player.Pause()
	c.log.Info("audio playback blocked",
		zap.String("trigger", "player_exit"),
		zap.Error(err))
	return ResultBlocked
}

// HookArmed reports whether the first-interaction hook has yet to fire.
func (c *Controller) HookArmed() bool { return c.armed }

// Toggle pauses when playing, otherwise tries to play.
// It does not disarm the first-interaction hook.
func (c *Controller) Toggle() Result {
	c.Sync()
	if c.playing {
		return c.pause("toggle")
	}
	return c.play("toggle")
}

// FirstInteraction is called on every user input event. Only the first call
// does anything; it starts playback unless audio is already playing.
func (c *Controller) FirstInteraction() Result {
	if !c.armed {
		return ResultSkipped
	}
	c.armed = false
	c.Sync()
	if c.playing {
		return ResultSkipped
	}
	return c.play("first_interaction")
}

// Close stops playback if it is running.
func (c *Controller) Close() error {
	c.Sync()
	if !c.playing {
		return nil
	}
	c.playing = false
	return c.player.Pause()
}

func (c *Controller) play(trigger string) Result {
	if err := c.player.Play(); err != nil {
		c.log.Info("audio playback blocked",
			zap.String("trigger", trigger),
			zap.Error(err))
		return ResultBlocked
	}
	c.playing = true
	c.log.Debug("audio playing", zap.String("trigger", trigger))
	return ResultStarted
}

func (c *Controller) pause(trigger string) Result {
	if err := c.player.Pause(); err != nil {
		c.log.Warn("audio pause failed",
			zap.String("trigger", trigger),
			zap.Error(err))
	}
	c.playing = false
	c.log.Debug("audio paused", zap.String("trigger", trigger))
	return ResultPaused
}
