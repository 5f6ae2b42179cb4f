package preferences

import (
	"time"

	"waveslogin/internal/core/model"
)

// Accepted ranges for editable durations.
const (
	MinWaveDuration = 300 * time.Millisecond
	MaxWaveDuration = 60 * time.Second
	MaxCheckDelay   = 30 * time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	WaveDuration time.Duration
	CheckDelay   time.Duration
	Fullscreen   bool
}

// DefaultSettings returns default settings for the login screen.
func DefaultSettings() Settings {
	return Settings{
		WaveDuration: model.DefaultWaveDuration,
		CheckDelay:   model.DefaultCheckDelay,
		Fullscreen:   false,
	}
}

// Normalize replaces out-of-range values with defaults.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.WaveDuration < MinWaveDuration || settings.WaveDuration > MaxWaveDuration {
		settings.WaveDuration = defaults.WaveDuration
	}
	if settings.CheckDelay < 0 || settings.CheckDelay > MaxCheckDelay {
		settings.CheckDelay = defaults.CheckDelay
	}
	return settings
}

// LoginConfig converts settings to the state machine configuration.
func (settings Settings) LoginConfig() model.LoginConfig {
	settings = settings.Normalize()
	return model.LoginConfig{
		WaveDuration: settings.WaveDuration,
		CheckDelay:   settings.CheckDelay,
		Levels:       model.DefaultLevels(),
	}
}
