package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	waveEntry  *widget.Entry
	delayEntry *widget.Entry
	fullscreen *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow(lang.L("settings_title"))

	waveEntry := widget.NewEntry()
	delayEntry := widget.NewEntry()
	fullscreen := widget.NewCheck(lang.L("fullscreen"), nil)

	form := container.NewVBox(
		container.NewHBox(widget.NewLabel(lang.L("wave_duration")), waveEntry, widget.NewLabel(lang.L("milliseconds"))),
		container.NewHBox(widget.NewLabel(lang.L("check_delay")), delayEntry, widget.NewLabel(lang.L("milliseconds"))),
		fullscreen,
	)

	saveButton := widget.NewButton(lang.L("save"), nil)
	cancelButton := widget.NewButton(lang.L("cancel"), nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 200))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		waveEntry:  waveEntry,
		delayEntry: delayEntry,
		fullscreen: fullscreen,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.waveEntry.SetText(strconv.FormatInt(settings.WaveDuration.Milliseconds(), 10))
	prefs.delayEntry.SetText(strconv.FormatInt(settings.CheckDelay.Milliseconds(), 10))
	prefs.fullscreen.SetChecked(settings.Fullscreen)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parseMillis(prefs.waveEntry.Text, false); ok {
		settings.WaveDuration = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parseMillis(prefs.delayEntry.Text, true); ok {
		settings.CheckDelay = time.Duration(millis) * time.Millisecond
	}
	settings.Fullscreen = prefs.fullscreen.Checked

	settings = settings.Normalize()
	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseMillis(value string, allowZero bool) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 || (parsed == 0 && !allowZero) {
		return 0, false
	}
	return parsed, true
}
