package wave

import "math"

const (
	// Amplitude is the wave height as a fraction of the drawing height.
	Amplitude = 0.035
	// Cycles is the number of wave crests across the width.
	Cycles = 1.5
)

// Surface returns the y coordinate of the water line at column x. The area
// below it is filled, so the filled height is proportional to 1-progress.
func Surface(x, width, height int, progress, phase float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	progress = math.Max(0, math.Min(1, progress))
	angle := 2*math.Pi*Cycles*float64(x)/float64(width) + phase
	base := progress * float64(height)
	return base + Amplitude*float64(height)*math.Sin(angle)
}

// Filled reports whether the pixel at (x, y) lies under the water line.
func Filled(x, y, width, height int, progress, phase float64) bool {
	return float64(y) >= Surface(x, width, height, progress, phase)
}
