package progress

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func runToRest(t *testing.T, animator *Animator, from time.Time) ([]float64, time.Time) {
	t.Helper()
	var values []float64
	now := from
	for i := 0; animator.Running(); i++ {
		if i > 100000 {
			t.Fatal("animator never came to rest")
		}
		now = now.Add(frame)
		values = append(values, animator.Tick(now))
	}
	return values, now
}

func TestAnimator_RiseThenFallEndsAtZero(t *testing.T) {
	durations := []time.Duration{
		50 * time.Millisecond,
		500 * time.Millisecond,
		DefaultDuration,
		7 * time.Second,
	}

	for _, duration := range durations {
		t.Run(duration.String(), func(t *testing.T) {
			animator := New(DefaultConfig())
			start := time.Unix(0, 0)
			animator.Start(start, duration)
			values, _ := runToRest(t, animator, start)

			if len(values) == 0 {
				t.Fatal("no values sampled")
			}
			if last := values[len(values)-1]; last != 0 {
				t.Fatalf("last value = %v, want exactly 0", last)
			}

			falling := false
			peak := 0.0
			for i := 1; i < len(values); i++ {
				if values[i] < values[i-1] {
					falling = true
				}
				if falling && values[i] > values[i-1] {
					t.Fatalf("value rose again at sample %d: %v > %v", i, values[i], values[i-1])
				}
				if values[i] < 0 || values[i] > 1 {
					t.Fatalf("value out of range at sample %d: %v", i, values[i])
				}
				if values[i] > peak {
					peak = values[i]
				}
			}
			if peak != 1 {
				t.Errorf("peak = %v, want 1", peak)
			}
		})
	}
}

func TestAnimator_CountdownIsLinear(t *testing.T) {
	animator := New(DefaultConfig())
	start := time.Unix(0, 0)
	animator.Start(start, 2*time.Second)

	now := start
	for animator.Value() < 1 {
		now = now.Add(frame)
		animator.Tick(now)
	}
	countdownStart := now

	half := animator.Tick(countdownStart.Add(time.Second))
	if half < 0.499 || half > 0.501 {
		t.Errorf("value halfway through countdown = %v, want 0.5", half)
	}
	quarter := animator.Tick(countdownStart.Add(1500 * time.Millisecond))
	if quarter < 0.249 || quarter > 0.251 {
		t.Errorf("value at three quarters = %v, want 0.25", quarter)
	}
}

func TestAnimator_StartWhileNonZeroSkipsRamp(t *testing.T) {
	animator := New(DefaultConfig())
	start := time.Unix(0, 0)
	animator.Start(start, time.Second)

	now := start.Add(50 * time.Millisecond)
	midRamp := animator.Tick(now)
	if midRamp <= 0 || midRamp >= 1 {
		t.Fatalf("expected value mid ramp, got %v", midRamp)
	}

	animator.Start(now, time.Second)
	next := animator.Tick(now.Add(frame))
	if next >= midRamp {
		t.Errorf("restart while non-zero should count down, got %v after %v", next, midRamp)
	}

	values, _ := runToRest(t, animator, now.Add(frame))
	for _, value := range values {
		if value > midRamp {
			t.Fatalf("value %v exceeded restart value %v", value, midRamp)
		}
	}
}

func TestAnimator_StopEasesToZero(t *testing.T) {
	animator := New(DefaultConfig())
	start := time.Unix(0, 0)
	animator.Start(start, 10*time.Second)

	now := start
	for i := 0; i < 120; i++ {
		now = now.Add(frame)
		animator.Tick(now)
	}
	before := animator.Value()
	if before == 0 {
		t.Fatal("expected non-zero value before stop")
	}

	animator.Stop(now)
	values, _ := runToRest(t, animator, now)
	if values[len(values)-1] != 0 {
		t.Errorf("stop ended at %v, want 0", values[len(values)-1])
	}
	for _, value := range values {
		if value > before {
			t.Fatalf("stop ramp rose above %v: %v", before, value)
		}
	}
}

func TestAnimator_StopAtRestIsNoop(t *testing.T) {
	animator := New(DefaultConfig())
	animator.Stop(time.Unix(0, 0))
	if animator.Running() {
		t.Error("stop at rest should not start a sequence")
	}
	if animator.Value() != 0 {
		t.Errorf("value = %v, want 0", animator.Value())
	}
}

func TestAnimator_NonPositiveDurationUsesDefault(t *testing.T) {
	animator := New(DefaultConfig())
	start := time.Unix(0, 0)
	animator.Start(start, 0)

	now := start
	for animator.Value() < 1 {
		now = now.Add(frame)
		animator.Tick(now)
	}
	value := animator.Tick(now.Add(DefaultDuration / 2))
	if value < 0.49 || value > 0.51 {
		t.Errorf("value halfway through default countdown = %v, want 0.5", value)
	}
}
