package wave

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestSurface_FillFollowsProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantMin  float64
		wantMax  float64
	}{
		{"Full", 0, -Amplitude * 100, Amplitude * 100},
		{"MostlyEmpty", 0.90, 90 - Amplitude*100, 90 + Amplitude*100},
		{"MostlyFull", 0.30, 30 - Amplitude*100, 30 + Amplitude*100},
		{"ClampedAbove", 1.5, 100 - Amplitude*100, 100 + Amplitude*100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for x := 0; x < 100; x += 7 {
				surface := Surface(x, 100, 100, tt.progress, 0)
				if surface < tt.wantMin-1e-9 || surface > tt.wantMax+1e-9 {
					t.Fatalf("Surface(x=%d) = %v, want within [%v, %v]", x, surface, tt.wantMin, tt.wantMax)
				}
			}
		})
	}
}

func TestSurface_EmptyArea(t *testing.T) {
	if got := Surface(3, 0, 10, 0.5, 0); got != 0 {
		t.Errorf("Surface with zero width = %v, want 0", got)
	}
}

func TestFilled_BottomAlwaysFilledBelowFullProgress(t *testing.T) {
	if !Filled(10, 99, 100, 100, 0.5, 0) {
		t.Error("bottom row should be filled at half progress")
	}
	if Filled(10, 0, 100, 100, 0.5, 0) {
		t.Error("top row should be empty at half progress")
	}
}

func TestWave_SetLevel(t *testing.T) {
	test.NewTempApp(t)

	wave := New(color.NRGBA{R: 27, G: 43, B: 75, A: 255})
	window := test.NewWindow(wave)
	defer window.Close()

	wave.SetLevel(0.42, 1)
	if wave.Level() != 0.42 {
		t.Errorf("Level() = %v, want 0.42", wave.Level())
	}
	if wave.pixel(5, 99, 100, 100) != wave.fill {
		t.Error("bottom pixel should use the fill color")
	}
	if wave.pixel(5, 0, 100, 100) != color.Transparent {
		t.Error("top pixel should be transparent")
	}
}
