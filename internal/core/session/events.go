package session

import "time"

// Phase represents the lifecycle of the wave countdown.
type Phase string

const (
	PhaseStopped Phase = "stopped"
	PhaseStarted Phase = "started"
)

// Outcome is the result of the most recent credential check.
type Outcome string

const (
	OutcomeIdle    Outcome = "idle"
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// EventType defines the type of session event.
type EventType string

const (
	EventPhaseChange     EventType = "phase_change"
	EventOutcome         EventType = "outcome"
	EventProgress        EventType = "progress"
	EventAttemptRejected EventType = "attempt_rejected"
	EventInputRejected   EventType = "input_rejected"
)

// Event represents a session update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Outcome   Outcome
	Loading   bool
	Progress  float64
	AttemptID string
	Err       error
	Message   string
	At        time.Time
}
