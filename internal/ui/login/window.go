package login

import (
	"image/color"
	"math"
	"time"

	"waveslogin/internal/core/screen"
	"waveslogin/internal/core/session"
	"waveslogin/internal/platform"
	"waveslogin/internal/ui/animation"
	"waveslogin/internal/ui/wave"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"
)

// Config defines login window visuals.
type Config struct {
	Fullscreen bool
}

// Window manages the login screen UI.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	machine    *session.Machine
	keyboard   platform.KeyboardObserver
	transition *animation.ButtonTransition
	startedAt  time.Time

	wave        *wave.Wave
	heading     *canvas.Text
	checking    *canvas.Text
	dashboard   *fyne.Container
	form        *fyne.Container
	email       *widget.Entry
	password    *widget.Entry
	button      *LoginButton
	signup      *widget.Button
	lastEmail   string
	lastPass    string
	onSignedOut func()
}

const (
	windowWidth     = float32(420)
	windowHeight    = float32(760)
	contentMargin   = float32(24)
	headingTextSize = float32(34)
	wavePhaseSpeed  = 1.6
)

var (
	waveColor    = color.NRGBA{R: 0x3D, G: 0x5A, B: 0xFE, A: 0xFF}
	buttonColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	buttonInk    = color.NRGBA{R: 0x3D, G: 0x5A, B: 0xFE, A: 0xFF}
	headingColor = color.NRGBA{R: 0x1A, G: 0x1A, B: 0x2E, A: 0xFF}
	lightText    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// New creates the login window for machine.
func New(app fyne.App, machine *session.Machine, config Config) *Window {
	window := app.NewWindow(lang.L("app_title"))
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	login := &Window{
		app:        app,
		window:     window,
		config:     config,
		machine:    machine,
		transition: animation.NewButtonTransition(animation.DefaultButtonConfig(), false),
		startedAt:  time.Now(),
		wave:       wave.New(waveColor),
	}
	login.keyboard = platform.NewKeyboardObserver(window.Canvas())

	login.heading = canvas.NewText(lang.L(screen.KeyLogin), headingColor)
	login.heading.TextSize = headingTextSize
	login.heading.TextStyle = fyne.TextStyle{Bold: true}

	login.checking = canvas.NewText(lang.L("checking_credentials"), lightText)
	login.checking.Alignment = fyne.TextAlignCenter
	login.checking.Hide()

	welcome := canvas.NewText(lang.L("welcome_back"), lightText)
	welcome.TextStyle = fyne.TextStyle{Bold: true}
	welcome.TextSize = 24
	description := widget.NewLabel(lang.L("welcome_back_description"))
	description.Wrapping = fyne.TextWrapWord

	login.email = widget.NewEntry()
	login.email.SetPlaceHolder(lang.L("type_your_email"))
	login.email.OnChanged = login.handleEmail

	login.password = widget.NewPasswordEntry()
	login.password.SetPlaceHolder(lang.L("type_password"))
	login.password.OnChanged = login.handlePassword
	login.password.OnSubmitted = func(string) { login.attempt() }

	forget := widget.NewButton(lang.L("forget_password"), nil)
	forget.Importance = widget.LowImportance

	login.form = container.NewVBox(welcome, description, login.email, login.password, forget)

	goToDashboard := canvas.NewText(lang.L("go_to_dashboard"), lightText)
	goToDashboard.Alignment = fyne.TextAlignCenter
	goToDashboard.TextSize = 18
	signOut := widget.NewButton(lang.L("sign_out"), func() { login.SignOut() })
	login.dashboard = container.NewVBox(goToDashboard, signOut)
	login.dashboard.Hide()

	login.button = NewLoginButton(lang.L(screen.KeyLogin), buttonColor, buttonInk, login.attempt)

	login.signup = widget.NewButton(lang.L("sign_up"), nil)
	login.signup.Importance = widget.LowImportance

	header := container.NewVBox(login.heading)
	footer := container.NewVBox(login.checking, login.dashboard, login.form, container.NewCenter(login.button), login.signup)

	window.SetContent(container.New(&screenLayout{}, login.wave, header, footer))
	login.applyWindowMode()

	return login
}

// Window returns the underlying fyne window.
func (login *Window) Window() fyne.Window {
	return login.window
}

// SetKeyboardObserver replaces the keyboard visibility source.
func (login *Window) SetKeyboardObserver(keyboard platform.KeyboardObserver) {
	login.keyboard = keyboard
}

// SetOnSignedOut sets the handler called after a successful sign-out.
func (login *Window) SetOnSignedOut(handler func()) {
	login.onSignedOut = handler
}

// Show displays the window.
func (login *Window) Show() {
	login.window.Show()
	login.window.RequestFocus()
}

// UpdateConfig applies new visuals.
func (login *Window) UpdateConfig(config Config) {
	login.config = config
	login.applyWindowMode()
}

// Render draws the current machine state. It must run on the fyne thread.
func (login *Window) Render(now time.Time) {
	keyboardVisible := login.keyboard != nil && login.keyboard.Visible()
	view := screen.Compose(login.machine.Snapshot(), keyboardVisible, login.machine.Config().Levels)

	phase := math.Mod(now.Sub(login.startedAt).Seconds()*wavePhaseSpeed, 2*math.Pi)
	login.wave.SetLevel(view.WaveLevel, phase)

	heading := lang.L(view.Heading)
	if login.heading.Text != heading {
		login.heading.Text = heading
		login.heading.Refresh()
	}
	setVisible(login.heading, view.HeadingVisible)
	setVisible(login.checking, view.CheckingVisible)
	setVisible(login.dashboard, view.DashboardVisible)
	setVisible(login.form, view.FormVisible)
	setVisible(login.signup, view.SignupVisible)

	login.transition.SetLoading(now, view.Loading)
	login.button.Apply(login.transition.Sample(now), lang.L(view.ButtonLabel))
}

func (login *Window) handleEmail(value string) {
	if !login.machine.SetEmail(value) {
		login.email.SetText(login.lastEmail)
		return
	}
	login.lastEmail = value
}

func (login *Window) handlePassword(value string) {
	if !login.machine.SetPassword(value) {
		login.password.SetText(login.lastPass)
		return
	}
	login.lastPass = value
}

func (login *Window) attempt() {
	now := time.Now()
	if login.machine.AttemptLogin(now) {
		login.window.Canvas().Unfocus()
	}
	login.Render(now)
}

// SignOut returns a resolved session to the form and clears the password.
// It reports false while an attempt is in flight. Must run on the fyne thread.
func (login *Window) SignOut() bool {
	now := time.Now()
	if !login.machine.Reset(now) {
		return false
	}
	login.lastPass = ""
	login.machine.SetPassword("")
	login.password.SetText("")
	if login.onSignedOut != nil {
		login.onSignedOut()
	}
	login.Render(now)
	return true
}

func (login *Window) applyWindowMode() {
	if login.config.Fullscreen {
		login.window.SetFullScreen(true)
		return
	}
	login.window.SetFullScreen(false)
	login.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	login.window.CenterOnScreen()
}

func setVisible(object fyne.CanvasObject, visible bool) {
	if object.Visible() == visible {
		return
	}
	if visible {
		object.Show()
		return
	}
	object.Hide()
}

// screenLayout stretches the wave over the whole window, pins the header to
// the top and the footer to the bottom.
type screenLayout struct{}

func (layout *screenLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	background := objects[0]
	header := objects[1]
	footer := objects[2]

	background.Move(fyne.NewPos(0, 0))
	background.Resize(size)

	width := size.Width - contentMargin*2
	if width < 0 {
		width = 0
	}

	headerSize := header.MinSize()
	header.Move(fyne.NewPos(contentMargin, contentMargin*2))
	header.Resize(fyne.NewSize(width, headerSize.Height))

	footerSize := footer.MinSize()
	footerY := size.Height - contentMargin - footerSize.Height
	if footerY < 0 {
		footerY = 0
	}
	footer.Move(fyne.NewPos(contentMargin, footerY))
	footer.Resize(fyne.NewSize(width, footerSize.Height))
}

func (layout *screenLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	headerMin := objects[1].MinSize()
	footerMin := objects[2].MinSize()
	width := headerMin.Width
	if footerMin.Width > width {
		width = footerMin.Width
	}
	return fyne.NewSize(width+contentMargin*2, headerMin.Height+footerMin.Height+contentMargin*3)
}
