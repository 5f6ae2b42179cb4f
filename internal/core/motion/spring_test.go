package motion

import (
	"math"
	"testing"
	"time"
)

func TestSpringSample_StartsAtOrigin(t *testing.T) {
	spring := NewSpring(100, DampingRatioNoBouncy)
	value, velocity := spring.Sample(0.25, 1, 0.5, 0)
	if value != 0.25 || velocity != 0.5 {
		t.Errorf("Sample at zero elapsed = (%v, %v), want (0.25, 0.5)", value, velocity)
	}
}

func TestSpringSample_Converges(t *testing.T) {
	tests := []struct {
		name    string
		damping float64
	}{
		{"Critical", DampingRatioNoBouncy},
		{"Underdamped", DampingRatioMediumBouncy},
		{"Overdamped", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spring := NewSpring(StiffnessMediumLow, tt.damping)
			value, velocity := spring.Sample(0, 1, 0, 5*time.Second)
			if !spring.Settled(value, 1, velocity) {
				t.Errorf("spring not settled after 5s: value=%v velocity=%v", value, velocity)
			}
		})
	}
}

func TestSpringSample_CriticalFromRestIsMonotonic(t *testing.T) {
	spring := NewSpring(100, DampingRatioNoBouncy)
	previous := 0.0
	for elapsed := time.Duration(0); elapsed < 2*time.Second; elapsed += 10 * time.Millisecond {
		value, _ := spring.Sample(0, 1, 0, elapsed)
		if value < previous {
			t.Fatalf("value decreased at %v: %v < %v", elapsed, value, previous)
		}
		if value > 1 {
			t.Fatalf("value overshot at %v: %v", elapsed, value)
		}
		previous = value
	}
}

func TestSpringSample_UnderdampedOvershoots(t *testing.T) {
	spring := NewSpring(StiffnessMediumLow, DampingRatioMediumBouncy)
	peak := 0.0
	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += 5 * time.Millisecond {
		value, _ := spring.Sample(0, 1, 0, elapsed)
		peak = math.Max(peak, value)
	}
	if peak <= 1 {
		t.Errorf("bouncy spring peak = %v, want overshoot above 1", peak)
	}
}

func TestSpringSample_VelocityMatchesDerivative(t *testing.T) {
	for _, damping := range []float64{0.5, 1, 2} {
		spring := NewSpring(StiffnessLow, damping)
		at := 120 * time.Millisecond
		step := time.Microsecond
		before, _ := spring.Sample(0.2, 1, -0.3, at-step)
		after, _ := spring.Sample(0.2, 1, -0.3, at+step)
		_, velocity := spring.Sample(0.2, 1, -0.3, at)
		numeric := (after - before) / (2 * step.Seconds())
		if math.Abs(numeric-velocity) > 1e-3 {
			t.Errorf("damping %v: velocity = %v, numeric derivative = %v", damping, velocity, numeric)
		}
	}
}
