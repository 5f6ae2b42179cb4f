package progress

import (
	"sync"
	"time"

	"waveslogin/internal/core/motion"
)

// DefaultDuration is the countdown length used when none is given.
const DefaultDuration = 3000 * time.Millisecond

// RampStiffness drives the eased approach to 1.0 and back to 0.0.
const RampStiffness = 100.0

// Config contains animator tuning.
type Config struct {
	Ramp motion.Spring
}

// DefaultConfig returns a no-bounce ramp with stiffness 100.
func DefaultConfig() Config {
	return Config{
		Ramp: motion.NewSpring(RampStiffness, motion.DampingRatioNoBouncy),
	}
}

type segmentKind int

const (
	segmentRamp segmentKind = iota
	segmentCountdown
)

type segment struct {
	kind     segmentKind
	target   float64
	duration time.Duration
}

// Animator drives a normalized progress value through a ramp and a linear
// countdown. Only one sequence is active at a time.
type Animator struct {
	mu       sync.Mutex
	config   Config
	value    float64
	velocity float64

	queue     []segment
	started   time.Time
	active    bool
	fromValue float64
	fromSpeed float64
}

// New creates an animator at rest at 0.
func New(config Config) *Animator {
	if config.Ramp.Stiffness <= 0 {
		config.Ramp = DefaultConfig().Ramp
	}
	return &Animator{config: config}
}

// Start begins a ramp to 1.0 followed by a linear countdown to 0.0 over
// duration. The ramp is skipped unless the animator sits exactly at 0, in
// which case the countdown starts from the current value. Any running
// sequence is replaced.
func (animator *Animator) Start(now time.Time, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	animator.mu.Lock()
	defer animator.mu.Unlock()

	queue := make([]segment, 0, 2)
	if animator.value == 0 {
		queue = append(queue, segment{kind: segmentRamp, target: 1})
	}
	queue = append(queue, segment{kind: segmentCountdown, target: 0, duration: duration})
	animator.replaceLocked(now, queue)
}

// Stop eases the value back to 0.0 from wherever it currently is.
func (animator *Animator) Stop(now time.Time) {
	animator.mu.Lock()
	defer animator.mu.Unlock()

	if animator.value == 0 && !animator.active {
		return
	}
	animator.replaceLocked(now, []segment{{kind: segmentRamp, target: 0}})
}

// Tick advances the active sequence to now and returns the current value.
func (animator *Animator) Tick(now time.Time) float64 {
	animator.mu.Lock()
	defer animator.mu.Unlock()

	if !animator.active {
		return animator.value
	}

	current := animator.queue[0]
	elapsed := now.Sub(animator.started)
	value, velocity, done := animator.sampleLocked(current, elapsed)
	if !done {
		animator.value = clamp(value)
		animator.velocity = velocity
		return animator.value
	}

	animator.value = current.target
	animator.velocity = 0
	animator.queue = animator.queue[1:]
	if len(animator.queue) == 0 {
		animator.active = false
		animator.queue = nil
		return animator.value
	}
	animator.beginLocked(now)
	return animator.value
}

// Value returns the most recent progress value.
func (animator *Animator) Value() float64 {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.value
}

// Running reports whether a sequence is in progress.
func (animator *Animator) Running() bool {
	animator.mu.Lock()
	defer animator.mu.Unlock()
	return animator.active
}

func (animator *Animator) replaceLocked(now time.Time, queue []segment) {
	animator.queue = queue
	animator.active = true
	animator.beginLocked(now)
}

func (animator *Animator) beginLocked(now time.Time) {
	animator.started = now
	animator.fromValue = animator.value
	animator.fromSpeed = animator.velocity
}

func (animator *Animator) sampleLocked(current segment, elapsed time.Duration) (float64, float64, bool) {
	switch current.kind {
	case segmentCountdown:
		if elapsed >= current.duration {
			return current.target, 0, true
		}
		fraction := float64(elapsed) / float64(current.duration)
		speed := -animator.fromValue / current.duration.Seconds()
		return animator.fromValue * (1 - fraction), speed, false
	default:
		spring := animator.config.Ramp
		value, velocity := spring.Sample(animator.fromValue, current.target, animator.fromSpeed, elapsed)
		if spring.Settled(value, current.target, velocity) {
			return current.target, 0, true
		}
		return value, velocity, false
	}
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
