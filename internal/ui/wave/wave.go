package wave

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Wave draws a filled horizontal wave whose level follows a progress value.
type Wave struct {
	widget.BaseWidget

	mu       sync.RWMutex
	fill     color.NRGBA
	crest    color.NRGBA
	progress float64
	phase    float64
	raster   *canvas.Raster
}

// New creates a wave filled with the given color.
func New(fill color.NRGBA) *Wave {
	wave := &Wave{
		fill:     fill,
		crest:    lighten(fill, 0.35),
		progress: 1,
	}
	wave.ExtendBaseWidget(wave)
	return wave
}

// SetLevel updates the progress and the horizontal phase of the wave.
func (wave *Wave) SetLevel(progress, phase float64) {
	wave.mu.Lock()
	changed := wave.progress != progress || wave.phase != phase
	wave.progress = progress
	wave.phase = phase
	wave.mu.Unlock()

	if changed && wave.raster != nil {
		wave.raster.Refresh()
	}
}

// Level returns the current progress value.
func (wave *Wave) Level() float64 {
	wave.mu.RLock()
	defer wave.mu.RUnlock()
	return wave.progress
}

// CreateRenderer implements fyne.Widget.
func (wave *Wave) CreateRenderer() fyne.WidgetRenderer {
	wave.raster = canvas.NewRasterWithPixels(wave.pixel)
	return widget.NewSimpleRenderer(wave.raster)
}

func (wave *Wave) pixel(x, y, width, height int) color.Color {
	wave.mu.RLock()
	progress := wave.progress
	phase := wave.phase
	wave.mu.RUnlock()

	if Filled(x, y, width, height, progress, phase) {
		return wave.fill
	}
	// A second, offset wave gives the crest some depth.
	if Filled(x, y, width, height, progress-Amplitude, phase+math.Pi/2) {
		return wave.crest
	}
	return color.Transparent
}

func lighten(value color.NRGBA, amount float64) color.NRGBA {
	mix := func(channel uint8) uint8 {
		return uint8(float64(channel) + (255-float64(channel))*amount)
	}
	return color.NRGBA{R: mix(value.R), G: mix(value.G), B: mix(value.B), A: value.A / 2}
}
