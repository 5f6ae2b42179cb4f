package motion

import (
	"math"
	"time"
)

// Common stiffness and damping values.
const (
	StiffnessVeryLow   = 50.0
	StiffnessLow       = 200.0
	StiffnessMediumLow = 400.0
	StiffnessMedium    = 1500.0

	DampingRatioNoBouncy     = 1.0
	DampingRatioMediumBouncy = 0.5

	// DefaultThreshold is the displacement under which a spring snaps to its target.
	DefaultThreshold = 0.001
)

// Spring describes a damped spring with unit mass.
type Spring struct {
	Stiffness    float64
	DampingRatio float64
	Threshold    float64
}

// NewSpring returns a spring with the default settle threshold.
func NewSpring(stiffness, dampingRatio float64) Spring {
	return Spring{
		Stiffness:    stiffness,
		DampingRatio: dampingRatio,
		Threshold:    DefaultThreshold,
	}
}

// Sample returns the position and velocity of a spring released at from with
// the given velocity, pulled toward to, after elapsed time.
func (spring Spring) Sample(from, to, velocity float64, elapsed time.Duration) (float64, float64) {
	if elapsed <= 0 {
		return from, velocity
	}
	stiffness := spring.Stiffness
	if stiffness <= 0 {
		stiffness = StiffnessMedium
	}
	damping := spring.DampingRatio
	if damping < 0 {
		damping = 0
	}

	t := elapsed.Seconds()
	omega := math.Sqrt(stiffness)
	x0 := from - to
	v0 := velocity

	var x, v float64
	switch {
	case damping == 1:
		b := v0 + omega*x0
		decay := math.Exp(-omega * t)
		x = (x0 + b*t) * decay
		v = (v0 - omega*b*t) * decay
	case damping < 1:
		a := damping * omega
		omegaD := omega * math.Sqrt(1-damping*damping)
		c := (v0 + a*x0) / omegaD
		decay := math.Exp(-a * t)
		cos := math.Cos(omegaD * t)
		sin := math.Sin(omegaD * t)
		x = decay * (x0*cos + c*sin)
		v = decay * ((c*omegaD-a*x0)*cos - (a*c+x0*omegaD)*sin)
	default:
		root := math.Sqrt(damping*damping - 1)
		r1 := -omega * (damping - root)
		r2 := -omega * (damping + root)
		c2 := (v0 - r1*x0) / (r2 - r1)
		c1 := x0 - c2
		e1 := math.Exp(r1 * t)
		e2 := math.Exp(r2 * t)
		x = c1*e1 + c2*e2
		v = r1*c1*e1 + r2*c2*e2
	}
	return to + x, v
}

// Settled reports whether the spring is close enough to rest at its target.
func (spring Spring) Settled(value, to, velocity float64) bool {
	threshold := spring.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return math.Abs(value-to) < threshold && math.Abs(velocity) < threshold*10
}
