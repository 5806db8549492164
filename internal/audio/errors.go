package audio

import "errors"

var (
	// ErrPlaybackBlocked indicates the platform refused to start playback:
	// the player binary is missing, the asset is missing, or audio is off.
	ErrPlaybackBlocked = errors.New("audio playback blocked")

	// ErrNoPlayerCommand indicates an empty player command line.
	ErrNoPlayerCommand = errors.New("no audio player command configured")
)
