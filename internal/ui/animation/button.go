package animation

import (
	"sync"
	"time"

	"waveslogin/internal/core/motion"
)

// ButtonConfig contains the login button transition values.
type ButtonConfig struct {
	IdlePadding    float64
	LoadingPadding float64
	Spring         motion.Spring
	Expand         motion.Spring
	ExitThreshold  float64
}

// ButtonFrame is the visual state of the button at one instant.
type ButtonFrame struct {
	Padding        float64
	SpinnerAlpha   float64
	SpinnerVisible bool
	LabelAlpha     float64
	LabelScale     float64
	LabelVisible   bool
}

type channel struct {
	from     float64
	velocity float64
	target   float64
	spring   motion.Spring
}

func (value channel) sample(elapsed time.Duration) (float64, float64) {
	position, velocity := value.spring.Sample(value.from, value.target, value.velocity, elapsed)
	if value.spring.Settled(position, value.target, velocity) {
		return value.target, 0
	}
	return position, velocity
}

// ButtonTransition animates the login button between its idle and loading
// looks. The spinner cross-fades; the label fades and scales horizontally
// around its center; the content padding narrows while loading.
type ButtonTransition struct {
	mu        sync.Mutex
	config    ButtonConfig
	loading   bool
	changedAt time.Time
	padding   channel
	spinner   channel
	label     channel
	scale     channel
}

// NewButtonTransition creates a transition resting in the given state.
func NewButtonTransition(config ButtonConfig, loading bool) *ButtonTransition {
	transition := &ButtonTransition{config: config, loading: loading}
	padding, spinner, label := transition.targets(loading)
	transition.padding = channel{from: padding, target: padding, spring: config.Spring}
	transition.spinner = channel{from: spinner, target: spinner, spring: config.Spring}
	transition.label = channel{from: label, target: label, spring: config.Spring}
	transition.scale = channel{from: label, target: label, spring: config.Spring}
	return transition
}

// Loading returns the current target state.
func (transition *ButtonTransition) Loading() bool {
	transition.mu.Lock()
	defer transition.mu.Unlock()
	return transition.loading
}

// SetLoading retargets every channel, continuing from its current value and
// velocity at now.
func (transition *ButtonTransition) SetLoading(now time.Time, loading bool) {
	transition.mu.Lock()
	defer transition.mu.Unlock()
	if loading == transition.loading {
		return
	}

	elapsed := now.Sub(transition.changedAt)
	padding, spinner, label := transition.targets(loading)
	transition.padding = retarget(transition.padding, elapsed, padding, transition.config.Spring)
	transition.spinner = retarget(transition.spinner, elapsed, spinner, transition.config.Spring)
	transition.label = retarget(transition.label, elapsed, label, transition.config.Spring)

	scaleSpring := transition.config.Spring
	if !loading {
		scaleSpring = transition.config.Expand
	}
	transition.scale = retarget(transition.scale, elapsed, label, scaleSpring)

	transition.loading = loading
	transition.changedAt = now
}

// Sample returns the frame at now.
func (transition *ButtonTransition) Sample(now time.Time) ButtonFrame {
	transition.mu.Lock()
	defer transition.mu.Unlock()

	elapsed := now.Sub(transition.changedAt)
	padding, _ := transition.padding.sample(elapsed)
	spinner, _ := transition.spinner.sample(elapsed)
	label, _ := transition.label.sample(elapsed)
	scale, _ := transition.scale.sample(elapsed)

	spinner = clampUnit(spinner)
	label = clampUnit(label)
	if scale < 0 {
		scale = 0
	}

	threshold := transition.config.ExitThreshold
	return ButtonFrame{
		Padding:        padding,
		SpinnerAlpha:   spinner,
		SpinnerVisible: transition.loading || spinner >= threshold,
		LabelAlpha:     label,
		LabelScale:     scale,
		LabelVisible:   !transition.loading || label >= threshold,
	}
}

// Settled reports whether every channel has reached its target.
func (transition *ButtonTransition) Settled(now time.Time) bool {
	transition.mu.Lock()
	defer transition.mu.Unlock()

	elapsed := now.Sub(transition.changedAt)
	for _, value := range []channel{transition.padding, transition.spinner, transition.label, transition.scale} {
		if position, _ := value.sample(elapsed); position != value.target {
			return false
		}
	}
	return true
}

func (transition *ButtonTransition) targets(loading bool) (float64, float64, float64) {
	if loading {
		return transition.config.LoadingPadding, 1, 0
	}
	return transition.config.IdlePadding, 0, 1
}

func retarget(value channel, elapsed time.Duration, target float64, spring motion.Spring) channel {
	position, velocity := value.sample(elapsed)
	return channel{from: position, velocity: velocity, target: target, spring: spring}
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
