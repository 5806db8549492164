// Package config resolves runtime settings from the environment, with
// command-line flags layered on top.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/rosalab/internal/audio"
	"github.com/spf13/pflag"
)

// Config holds everything the binary can be tuned with.
type Config struct {
	AudioFile     string
	AudioPlayer   string
	AudioDisabled bool
	LogFile       string
	LogLevel      string
	Strict        bool
	GlamourStyle  string
}

// DefaultConfig returns a Config with sensible defaults.
// Logging is off unless a log file is given.
func DefaultConfig() Config {
	return Config{
		AudioFile:    audio.DefaultAsset,
		AudioPlayer:  audio.DefaultPlayerCommand,
		LogLevel:     "info",
		GlamourStyle: "auto",
	}
}

// LoadConfig reads ROSALAB_* environment variables, falling back to
// defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROSALAB_AUDIO_FILE"); v != "" {
		cfg.AudioFile = v
	}
	if v := os.Getenv("ROSALAB_AUDIO_PLAYER"); v != "" {
		cfg.AudioPlayer = v
	}
	applyBoolEnv(&cfg.AudioDisabled, "ROSALAB_AUDIO_DISABLED")
	if v := os.Getenv("ROSALAB_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("ROSALAB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	applyBoolEnv(&cfg.Strict, "ROSALAB_STRICT")
	if v := os.Getenv("ROSALAB_GLAMOUR_STYLE"); v != "" {
		cfg.GlamourStyle = v
	}

	return cfg
}

// BindFlags registers flags on fs that write straight into cfg, so flag
// values win over whatever LoadConfig found.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.AudioFile, "audio-file", cfg.AudioFile, "Background track to loop")
	fs.StringVar(&cfg.AudioPlayer, "audio-player", cfg.AudioPlayer, "Player command line ("+audio.FilePlaceholder+" marks the track)")
	fs.BoolVar(&cfg.AudioDisabled, "no-audio", cfg.AudioDisabled, "Never start background music")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write structured logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Panic on invalid stage transitions")
	fs.StringVar(&cfg.GlamourStyle, "style", cfg.GlamourStyle, "Report style: auto, dark, light, notty, ascii")
}

func applyBoolEnv(dst *bool, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
