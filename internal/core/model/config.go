package model

import "time"

// Default timings for the login flow.
const (
	DefaultWaveDuration = 3000 * time.Millisecond
	DefaultCheckDelay   = 2000 * time.Millisecond
)

// WaveLevels defines the resting wave positions shown outside of a check.
type WaveLevels struct {
	KeyboardVisible float64
	Idle            float64
	Success         float64
}

// LoginConfig contains runtime settings for the login state machine.
// WaveDuration only governs the visual countdown; CheckDelay is the latency
// of the credential check and is independent of it.
type LoginConfig struct {
	WaveDuration time.Duration
	CheckDelay   time.Duration
	Levels       WaveLevels
}

// DefaultLevels returns the resting wave positions.
func DefaultLevels() WaveLevels {
	return WaveLevels{
		KeyboardVisible: 0.90,
		Idle:            0.70,
		Success:         0.30,
	}
}

// DefaultLoginConfig returns the stock timings and levels.
func DefaultLoginConfig() LoginConfig {
	return LoginConfig{
		WaveDuration: DefaultWaveDuration,
		CheckDelay:   DefaultCheckDelay,
		Levels:       DefaultLevels(),
	}
}
