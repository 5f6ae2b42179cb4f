package tray

import (
	"strings"
	"testing"

	"waveslogin/internal/core/session"
)

func TestManager_HandleEvent(t *testing.T) {
	manager := New(nil, Callbacks{})
	if !manager.signOutItem.Disabled {
		t.Error("sign out should start disabled")
	}

	manager.HandleEvent(session.Event{
		Type:    session.EventPhaseChange,
		Phase:   session.PhaseStarted,
		Outcome: session.OutcomeIdle,
	})
	if manager.Status() != StatusText(session.PhaseStarted, session.OutcomeIdle) {
		t.Errorf("status = %q", manager.Status())
	}
	if !strings.Contains(manager.statusItem.Label, manager.Status()) {
		t.Errorf("status item %q should contain %q", manager.statusItem.Label, manager.Status())
	}

	manager.HandleEvent(session.Event{
		Type:    session.EventPhaseChange,
		Phase:   session.PhaseStopped,
		Outcome: session.OutcomeSuccess,
	})
	if manager.signOutItem.Disabled {
		t.Error("sign out should be enabled once signed in")
	}

	manager.HandleEvent(session.Event{Type: session.EventProgress, Phase: session.PhaseStarted})
	if manager.signOutItem.Disabled {
		t.Error("progress events should not touch the menu")
	}
}

func TestManager_Callbacks(t *testing.T) {
	signedOut := false
	manager := New(nil, Callbacks{OnSignOut: func() { signedOut = true }})
	manager.signOutItem.Action()
	if !signedOut {
		t.Error("sign out item should call OnSignOut")
	}
}

func TestStatusText_Distinct(t *testing.T) {
	seen := map[string]bool{}
	cases := []struct {
		phase   session.Phase
		outcome session.Outcome
	}{
		{session.PhaseStarted, session.OutcomeIdle},
		{session.PhaseStopped, session.OutcomeIdle},
		{session.PhaseStopped, session.OutcomeFailed},
		{session.PhaseStopped, session.OutcomeSuccess},
	}
	for _, c := range cases {
		text := StatusText(c.phase, c.outcome)
		if text == "" {
			t.Errorf("empty status for %v/%v", c.phase, c.outcome)
		}
		seen[text] = true
	}
	if len(seen) != len(cases) {
		t.Errorf("status texts should be distinct, got %v", seen)
	}
}
