package platform

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// KeyboardObserver reports whether an on-screen keyboard is covering the UI.
type KeyboardObserver interface {
	Visible() bool
}

type focusKeyboard struct {
	canvas fyne.Canvas
}

// NewKeyboardObserver treats the keyboard as visible while a text entry on
// canvas holds focus, which is when mobile drivers raise the soft keyboard.
func NewKeyboardObserver(canvas fyne.Canvas) KeyboardObserver {
	return &focusKeyboard{canvas: canvas}
}

func (observer *focusKeyboard) Visible() bool {
	if observer.canvas == nil {
		return false
	}
	_, ok := observer.canvas.Focused().(*widget.Entry)
	return ok
}

// StaticKeyboard is a KeyboardObserver whose value is set explicitly.
type StaticKeyboard struct {
	visible atomic.Bool
}

// Set updates the reported visibility.
func (keyboard *StaticKeyboard) Set(visible bool) {
	keyboard.visible.Store(visible)
}

// Visible implements KeyboardObserver.
func (keyboard *StaticKeyboard) Visible() bool {
	return keyboard.visible.Load()
}
