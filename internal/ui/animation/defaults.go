package animation

import (
	"time"

	"waveslogin/internal/core/motion"
)

// DefaultFrameInterval is roughly one frame at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// DefaultButtonConfig returns the login button transition defaults.
func DefaultButtonConfig() ButtonConfig {
	return ButtonConfig{
		IdlePadding:    24,
		LoadingPadding: 12,
		Spring:         motion.NewSpring(motion.StiffnessMediumLow, motion.DampingRatioNoBouncy),
		Expand:         motion.NewSpring(motion.StiffnessMediumLow, motion.DampingRatioMediumBouncy),
		ExitThreshold:  0.10,
	}
}
