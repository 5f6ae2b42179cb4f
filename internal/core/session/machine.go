package session

import (
	"log/slog"
	"sync"
	"time"

	"waveslogin/internal/core/model"
	"waveslogin/internal/core/progress"

	"github.com/google/uuid"
)

// Snapshot is a read-only view of the session.
type Snapshot struct {
	Phase       Phase
	Outcome     Outcome
	Loading     bool
	Progress    float64
	Pending     bool
	Credentials Credentials
	AttemptID   string
	Err         error
}

// Machine is the login state machine. It is driven by Tick calls from the
// host's frame clock and never spawns goroutines of its own.
type Machine struct {
	mu           sync.Mutex
	config       model.LoginConfig
	animator     *progress.Animator
	verifier     Verifier
	logger       *slog.Logger
	credentials  Credentials
	phase        Phase
	outcome      Outcome
	loading      bool
	lastErr      error
	attemptID    string
	checkPending bool
	checkAt      time.Time
	lastProgress float64
	lastSent     time.Time
	progressGap  time.Duration
	events       []chan Event
}

// DefaultProgressInterval is the minimum spacing of EventProgress events.
const DefaultProgressInterval = 100 * time.Millisecond

// New creates a Machine in the stopped, idle state.
func New(config model.LoginConfig) *Machine {
	return &Machine{
		config:      normalizeConfig(config),
		animator:    progress.New(progress.DefaultConfig()),
		verifier:    PresenceVerifier{},
		logger:      slog.Default(),
		phase:       PhaseStopped,
		outcome:     OutcomeIdle,
		progressGap: DefaultProgressInterval,
	}
}

// SetProgressInterval sets the minimum spacing of progress events. Zero
// sends one on every tick that changes the value.
func (machine *Machine) SetProgressInterval(interval time.Duration) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if interval < 0 {
		interval = 0
	}
	machine.progressGap = interval
}

// SetVerifier replaces the credential verifier.
func (machine *Machine) SetVerifier(verifier Verifier) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if verifier == nil {
		verifier = PresenceVerifier{}
	}
	machine.verifier = verifier
}

// SetLogger replaces the structured logger.
func (machine *Machine) SetLogger(logger *slog.Logger) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if logger == nil {
		logger = slog.Default()
	}
	machine.logger = logger
}

// UpdateConfig applies new timings. An attempt in flight keeps the timings
// it was started with.
func (machine *Machine) UpdateConfig(config model.LoginConfig) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.config = normalizeConfig(config)
}

// Config returns the active configuration.
func (machine *Machine) Config() model.LoginConfig {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.config
}

// Subscribe registers a new observer channel.
func (machine *Machine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	machine.mu.Lock()
	machine.events = append(machine.events, ch)
	machine.mu.Unlock()
	return ch
}

// Close closes every observer channel.
func (machine *Machine) Close() {
	machine.mu.Lock()
	events := machine.events
	machine.events = nil
	machine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SetEmail stores the email unless it contains whitespace.
func (machine *Machine) SetEmail(value string) bool {
	return machine.setField("email", value, func(credentials *Credentials) *string {
		return &credentials.Email
	})
}

// SetPassword stores the password unless it contains whitespace.
func (machine *Machine) SetPassword(value string) bool {
	return machine.setField("password", value, func(credentials *Credentials) *string {
		return &credentials.Password
	})
}

func (machine *Machine) setField(name, value string, field func(*Credentials) *string) bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()

	if err := ValidateInput(value); err != nil {
		machine.emitLocked(Event{
			Type:    EventInputRejected,
			Phase:   machine.phase,
			Outcome: machine.outcome,
			Err:     err,
			Message: name,
			At:      time.Now(),
		})
		return false
	}
	*field(&machine.credentials) = value
	return true
}

// AttemptLogin starts a credential check. It is ignored once the outcome is
// Success and while another attempt is still in flight.
func (machine *Machine) AttemptLogin(now time.Time) bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()

	if machine.outcome == OutcomeSuccess {
		machine.rejectLocked(now, "already signed in")
		return false
	}
	if machine.phase == PhaseStarted || machine.checkPending {
		machine.rejectLocked(now, "attempt in progress")
		return false
	}

	machine.attemptID = uuid.NewString()
	machine.phase = PhaseStarted
	machine.loading = true
	machine.animator.Start(now, machine.config.WaveDuration)
	machine.checkPending = true
	machine.checkAt = now.Add(machine.config.CheckDelay)

	machine.logger.Info("login attempt started",
		"attempt_id", machine.attemptID,
		"wave_duration", machine.config.WaveDuration,
		"check_delay", machine.config.CheckDelay,
	)
	machine.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     machine.phase,
		Outcome:   machine.outcome,
		Loading:   machine.loading,
		AttemptID: machine.attemptID,
		At:        now,
	})
	return true
}

// Reset returns a resolved session to Idle. It does nothing while an
// attempt is in flight.
func (machine *Machine) Reset(now time.Time) bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()

	if machine.phase == PhaseStarted || machine.checkPending {
		return false
	}
	if machine.outcome == OutcomeIdle {
		return true
	}
	machine.outcome = OutcomeIdle
	machine.lastErr = nil
	machine.animator.Stop(now)

	machine.logger.Info("session reset", "attempt_id", machine.attemptID)
	machine.emitLocked(Event{
		Type:      EventOutcome,
		Phase:     machine.phase,
		Outcome:   machine.outcome,
		AttemptID: machine.attemptID,
		At:        now,
	})
	return true
}

// Tick advances the wave animation and resolves a due credential check.
func (machine *Machine) Tick(now time.Time) {
	machine.mu.Lock()
	defer machine.mu.Unlock()

	value := machine.animator.Tick(now)
	if value != machine.lastProgress && machine.progressDueLocked(now, value) {
		machine.lastSent = now
		machine.emitLocked(Event{
			Type:      EventProgress,
			Phase:     machine.phase,
			Outcome:   machine.outcome,
			Loading:   machine.loading,
			Progress:  value,
			AttemptID: machine.attemptID,
			At:        now,
		})
	}

	if machine.checkPending && !now.Before(machine.checkAt) {
		machine.resolveLocked(now)
	}

	if machine.phase == PhaseStarted && machine.lastProgress != 0 && value == 0 {
		machine.stopLocked(now)
	}
	machine.lastProgress = value
}

// Snapshot returns the current state.
func (machine *Machine) Snapshot() Snapshot {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return Snapshot{
		Phase:       machine.phase,
		Outcome:     machine.outcome,
		Loading:     machine.loading,
		Progress:    machine.lastProgress,
		Pending:     machine.checkPending,
		Credentials: machine.credentials,
		AttemptID:   machine.attemptID,
		Err:         machine.lastErr,
	}
}

func (machine *Machine) resolveLocked(now time.Time) {
	machine.checkPending = false
	err := machine.verifier.Verify(machine.credentials)
	if err != nil {
		machine.outcome = OutcomeFailed
		machine.lastErr = err
		machine.logger.Warn("login failed", "attempt_id", machine.attemptID, "error", err)
	} else {
		machine.outcome = OutcomeSuccess
		machine.lastErr = nil
		machine.logger.Info("login succeeded", "attempt_id", machine.attemptID)
	}

	machine.emitLocked(Event{
		Type:      EventOutcome,
		Phase:     machine.phase,
		Outcome:   machine.outcome,
		Loading:   machine.loading,
		AttemptID: machine.attemptID,
		Err:       err,
		At:        now,
	})
}

func (machine *Machine) stopLocked(now time.Time) {
	machine.phase = PhaseStopped
	machine.loading = false

	machine.logger.Debug("wave countdown finished",
		"attempt_id", machine.attemptID,
		"outcome", machine.outcome,
	)
	machine.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     machine.phase,
		Outcome:   machine.outcome,
		AttemptID: machine.attemptID,
		At:        now,
	})
}

func (machine *Machine) rejectLocked(now time.Time, reason string) {
	machine.logger.Debug("login attempt ignored",
		"reason", reason,
		"phase", machine.phase,
		"outcome", machine.outcome,
	)
	machine.emitLocked(Event{
		Type:      EventAttemptRejected,
		Phase:     machine.phase,
		Outcome:   machine.outcome,
		Loading:   machine.loading,
		AttemptID: machine.attemptID,
		Message:   reason,
		At:        now,
	})
}

// progressDueLocked reports whether a progress event may go out now. The
// final zero of a countdown is always sent.
func (machine *Machine) progressDueLocked(now time.Time, value float64) bool {
	if value == 0 || machine.lastSent.IsZero() {
		return true
	}
	return now.Sub(machine.lastSent) >= machine.progressGap
}

// emitLocked never blocks. Progress events are dropped when a subscriber is
// full; any other event evicts the oldest queued event to make room.
func (machine *Machine) emitLocked(event Event) {
	for _, ch := range machine.events {
		select {
		case ch <- event:
			continue
		default:
		}
		if event.Type == EventProgress {
			continue
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.LoginConfig) model.LoginConfig {
	defaults := model.DefaultLoginConfig()
	if config.WaveDuration <= 0 {
		config.WaveDuration = defaults.WaveDuration
	}
	if config.CheckDelay < 0 {
		config.CheckDelay = defaults.CheckDelay
	}
	if config.Levels == (model.WaveLevels{}) {
		config.Levels = defaults.Levels
	}
	return config
}
