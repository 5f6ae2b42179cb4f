package animation

import (
	"testing"
	"time"
)

func TestButtonTransition_RestingStates(t *testing.T) {
	config := DefaultButtonConfig()
	now := time.Unix(100, 0)

	idle := NewButtonTransition(config, false).Sample(now)
	if idle.Padding != config.IdlePadding || idle.SpinnerVisible || !idle.LabelVisible {
		t.Errorf("idle frame = %+v", idle)
	}
	if idle.LabelAlpha != 1 || idle.LabelScale != 1 || idle.SpinnerAlpha != 0 {
		t.Errorf("idle frame alphas = %+v", idle)
	}

	loading := NewButtonTransition(config, true).Sample(now)
	if loading.Padding != config.LoadingPadding || !loading.SpinnerVisible || loading.LabelVisible {
		t.Errorf("loading frame = %+v", loading)
	}
}

func TestButtonTransition_ToLoading(t *testing.T) {
	config := DefaultButtonConfig()
	transition := NewButtonTransition(config, false)
	start := time.Unix(100, 0)
	transition.SetLoading(start, true)

	first := transition.Sample(start)
	if first.Padding != config.IdlePadding {
		t.Errorf("padding at flip = %v, want %v", first.Padding, config.IdlePadding)
	}
	if !first.SpinnerVisible || !first.LabelVisible {
		t.Errorf("both contents should be visible at the flip: %+v", first)
	}

	mid := transition.Sample(start.Add(60 * time.Millisecond))
	if mid.Padding >= config.IdlePadding || mid.Padding <= config.LoadingPadding {
		t.Errorf("padding mid transition = %v, want between %v and %v", mid.Padding, config.LoadingPadding, config.IdlePadding)
	}
	if mid.SpinnerAlpha <= 0 || mid.LabelAlpha >= 1 {
		t.Errorf("mid frame = %+v, want spinner fading in and label fading out", mid)
	}

	end := start.Add(3 * time.Second)
	if !transition.Settled(end) {
		t.Fatal("transition should settle within 3s")
	}
	final := transition.Sample(end)
	if final.Padding != config.LoadingPadding || final.SpinnerAlpha != 1 || final.LabelVisible {
		t.Errorf("final frame = %+v", final)
	}
}

func TestButtonTransition_LabelHiddenBelowThreshold(t *testing.T) {
	transition := NewButtonTransition(DefaultButtonConfig(), false)
	start := time.Unix(100, 0)
	transition.SetLoading(start, true)

	now := start
	for i := 0; i < 200; i++ {
		now = now.Add(4 * time.Millisecond)
		frame := transition.Sample(now)
		if frame.LabelVisible && frame.LabelAlpha < 0.10 {
			t.Fatalf("label visible with alpha %v", frame.LabelAlpha)
		}
		if !frame.LabelVisible {
			return
		}
	}
	t.Error("label never left the button")
}

func TestButtonTransition_LabelExpandsWithBounce(t *testing.T) {
	transition := NewButtonTransition(DefaultButtonConfig(), true)
	start := time.Unix(100, 0)
	transition.SetLoading(start, false)

	peak := 0.0
	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += 4 * time.Millisecond {
		frame := transition.Sample(start.Add(elapsed))
		if frame.LabelScale > peak {
			peak = frame.LabelScale
		}
		if frame.LabelAlpha > 1 || frame.LabelAlpha < 0 {
			t.Fatalf("label alpha out of range: %v", frame.LabelAlpha)
		}
	}
	if peak <= 1 {
		t.Errorf("label scale peak = %v, want a bounce past 1", peak)
	}
}

func TestButtonTransition_InterruptedFlipIsContinuous(t *testing.T) {
	transition := NewButtonTransition(DefaultButtonConfig(), false)
	start := time.Unix(100, 0)
	transition.SetLoading(start, true)

	flip := start.Add(50 * time.Millisecond)
	before := transition.Sample(flip)
	transition.SetLoading(flip, false)
	after := transition.Sample(flip)

	if before.Padding != after.Padding {
		t.Errorf("padding jumped on flip: %v -> %v", before.Padding, after.Padding)
	}
	if before.SpinnerAlpha != after.SpinnerAlpha {
		t.Errorf("spinner alpha jumped on flip: %v -> %v", before.SpinnerAlpha, after.SpinnerAlpha)
	}
}

func TestButtonTransition_SetSameStateIsNoop(t *testing.T) {
	transition := NewButtonTransition(DefaultButtonConfig(), false)
	now := time.Unix(100, 0)
	transition.SetLoading(now, false)
	if transition.Loading() {
		t.Error("loading should stay false")
	}
	if !transition.Settled(now) {
		t.Error("transition should remain settled")
	}
}
