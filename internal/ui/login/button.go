package login

import (
	"image/color"
	"sync"

	"waveslogin/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	buttonHeight       = float32(60)
	buttonRadius       = float32(30)
	buttonLabelPadding = float32(48)
	spinnerSide        = float32(18)
	labelTextSize      = float32(20)
)

// LoginButton shows either a label or a spinner, animated by a ButtonFrame.
type LoginButton struct {
	widget.BaseWidget

	OnTapped func()

	mu    sync.Mutex
	text  string
	frame animation.ButtonFrame
	fill  color.NRGBA
	ink   color.NRGBA
}

// NewLoginButton creates a button at rest in the idle state.
func NewLoginButton(text string, fill, ink color.NRGBA, tapped func()) *LoginButton {
	config := animation.DefaultButtonConfig()
	button := &LoginButton{
		OnTapped: tapped,
		text:     text,
		fill:     fill,
		ink:      ink,
		frame: animation.ButtonFrame{
			Padding:      config.IdlePadding,
			LabelAlpha:   1,
			LabelScale:   1,
			LabelVisible: true,
		},
	}
	button.ExtendBaseWidget(button)
	return button
}

// Apply sets the label text and the animated frame.
func (button *LoginButton) Apply(frame animation.ButtonFrame, text string) {
	button.mu.Lock()
	changed := button.frame != frame || button.text != text
	button.frame = frame
	button.text = text
	button.mu.Unlock()

	if changed {
		button.Refresh()
	}
}

// Text returns the current label.
func (button *LoginButton) Text() string {
	button.mu.Lock()
	defer button.mu.Unlock()
	return button.text
}

// Frame returns the current animation frame.
func (button *LoginButton) Frame() animation.ButtonFrame {
	button.mu.Lock()
	defer button.mu.Unlock()
	return button.frame
}

// Tapped implements fyne.Tappable.
func (button *LoginButton) Tapped(*fyne.PointEvent) {
	if button.OnTapped != nil {
		button.OnTapped()
	}
}

// CreateRenderer implements fyne.Widget.
func (button *LoginButton) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(button.fill)
	background.CornerRadius = buttonRadius

	label := canvas.NewText(button.text, button.ink)
	label.TextSize = labelTextSize
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter

	spinner := widget.NewActivity()
	spinner.Hide()

	renderer := &loginButtonRenderer{
		button:     button,
		background: background,
		label:      label,
		spinner:    spinner,
		objects:    []fyne.CanvasObject{background, spinner, label},
	}
	renderer.Refresh()
	return renderer
}

type loginButtonRenderer struct {
	button     *LoginButton
	background *canvas.Rectangle
	label      *canvas.Text
	spinner    *widget.Activity
	objects    []fyne.CanvasObject
}

func (renderer *loginButtonRenderer) Layout(size fyne.Size) {
	frame := renderer.button.Frame()

	renderer.background.Move(fyne.NewPos(0, 0))
	renderer.background.Resize(size)

	renderer.spinner.Resize(fyne.NewSize(spinnerSide, spinnerSide))
	renderer.spinner.Move(fyne.NewPos((size.Width-spinnerSide)/2, (size.Height-spinnerSide)/2))

	labelSize := renderer.label.MinSize()
	width := labelSize.Width * float32(frame.LabelScale)
	renderer.label.Resize(fyne.NewSize(width, labelSize.Height))
	renderer.label.Move(fyne.NewPos((size.Width-width)/2, (size.Height-labelSize.Height)/2))
}

func (renderer *loginButtonRenderer) MinSize() fyne.Size {
	frame := renderer.button.Frame()
	content := spinnerSide
	if frame.LabelVisible {
		labelWidth := (renderer.label.MinSize().Width + buttonLabelPadding*2) * float32(frame.LabelScale)
		if labelWidth > content {
			content = labelWidth
		}
	}
	return fyne.NewSize(content+float32(frame.Padding)*2, buttonHeight)
}

func (renderer *loginButtonRenderer) Refresh() {
	frame := renderer.button.Frame()

	renderer.label.Text = renderer.button.Text()
	ink := renderer.button.ink
	ink.A = uint8(float64(ink.A) * frame.LabelAlpha)
	renderer.label.Color = ink
	if frame.LabelVisible {
		renderer.label.Show()
	} else {
		renderer.label.Hide()
	}

	if frame.SpinnerVisible {
		renderer.spinner.Show()
		renderer.spinner.Start()
	} else {
		renderer.spinner.Stop()
		renderer.spinner.Hide()
	}

	renderer.Layout(renderer.button.Size())
	canvas.Refresh(renderer.background)
	renderer.label.Refresh()
}

func (renderer *loginButtonRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *loginButtonRenderer) Destroy() {
	renderer.spinner.Stop()
}
