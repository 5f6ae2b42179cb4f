package screen

import (
	"waveslogin/internal/core/model"
	"waveslogin/internal/core/session"
)

// Translation keys for the texts the screen can show.
const (
	KeyLogin        = "login"
	KeyLoginFailed  = "login_failed"
	KeyLoginSuccess = "login_success"
	KeyDone         = "done"
)

// View describes what the login screen shows for a given state.
type View struct {
	WaveLevel        float64
	HeadingVisible   bool
	Heading          string
	CheckingVisible  bool
	DashboardVisible bool
	FormVisible      bool
	SignupVisible    bool
	ButtonLabel      string
	Loading          bool
}

// Compose maps machine state and the keyboard signal to screen content.
func Compose(snapshot session.Snapshot, keyboardVisible bool, levels model.WaveLevels) View {
	started := snapshot.Phase == session.PhaseStarted
	stopped := snapshot.Phase == session.PhaseStopped
	succeeded := snapshot.Outcome == session.OutcomeSuccess

	view := View{
		WaveLevel:        waveLevel(snapshot, keyboardVisible, levels),
		HeadingVisible:   !keyboardVisible,
		Heading:          heading(snapshot.Outcome),
		CheckingVisible:  started,
		DashboardVisible: stopped && succeeded,
		FormVisible:      !succeeded && stopped,
		ButtonLabel:      KeyLogin,
		Loading:          snapshot.Loading,
	}
	view.SignupVisible = view.FormVisible
	if succeeded {
		view.ButtonLabel = KeyDone
	}
	return view
}

func waveLevel(snapshot session.Snapshot, keyboardVisible bool, levels model.WaveLevels) float64 {
	switch {
	case snapshot.Phase == session.PhaseStarted:
		return snapshot.Progress
	case keyboardVisible:
		return levels.KeyboardVisible
	case snapshot.Phase == session.PhaseStopped && snapshot.Outcome == session.OutcomeSuccess:
		return levels.Success
	default:
		return levels.Idle
	}
}

func heading(outcome session.Outcome) string {
	switch outcome {
	case session.OutcomeFailed:
		return KeyLoginFailed
	case session.OutcomeSuccess:
		return KeyLoginSuccess
	default:
		return KeyLogin
	}
}
