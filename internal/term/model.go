package term

import (
	"time"

	"waveslogin/internal/core/screen"
	"waveslogin/internal/core/session"
	"waveslogin/internal/ui/animation"

	"fyne.io/fyne/v2/lang"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusTarget int

const (
	focusEmail focusTarget = iota
	focusPassword
	focusButton
	focusCount
)

const (
	defaultWidth = 48
	waveRows     = 10
	phaseSpeed   = 1.6
)

// TickMsg drives the session clock.
type TickMsg time.Time

// Model is the bubbletea model for the terminal login screen.
type Model struct {
	machine    *session.Machine
	transition *animation.ButtonTransition
	interval   time.Duration
	clock      func() time.Time

	email    textinput.Model
	password textinput.Model
	spinner  spinner.Model
	focus    focusTarget

	lastEmail    string
	lastPassword string
	notice       string

	width     int
	startedAt time.Time
	now       time.Time
}

// New creates a terminal login model that ticks machine every interval.
func New(machine *session.Machine, interval time.Duration) *Model {
	if interval <= 0 {
		interval = animation.DefaultFrameInterval
	}

	email := textinput.New()
	email.Placeholder = lang.L("type_your_email")
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = lang.L("type_password")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	now := time.Now()
	return &Model{
		machine:    machine,
		transition: animation.NewButtonTransition(animation.DefaultButtonConfig(), false),
		interval:   interval,
		clock:      time.Now,
		email:      email,
		password:   password,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(buttonStyle)),
		width:      defaultWidth,
		startedAt:  now,
		now:        now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case TickMsg:
		m.advance(time.Time(msg))
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "enter":
		m.attempt()
		return m, nil
	case "ctrl+r":
		now := m.clock()
		if m.machine.Reset(now) {
			m.password.SetValue("")
			m.lastPassword = ""
			m.machine.SetPassword("")
		}
		m.advance(now)
		return m, nil
	}

	if !m.formVisible() {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
		m.syncInput(&m.email, &m.lastEmail, m.machine.SetEmail)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
		m.syncInput(&m.password, &m.lastPassword, m.machine.SetPassword)
	}
	return m, cmd
}

// syncInput pushes the input value to the machine and restores the previous
// value when the machine rejects it.
func (m *Model) syncInput(input *textinput.Model, last *string, store func(string) bool) {
	value := input.Value()
	if value == *last {
		return
	}
	if !store(value) {
		input.SetValue(*last)
		m.notice = "whitespace_rejected"
		return
	}
	*last = value
	m.notice = ""
}

func (m *Model) attempt() {
	now := m.clock()
	if m.machine.AttemptLogin(now) {
		m.setFocus(focusButton)
	}
	m.advance(now)
}

func (m *Model) advance(now time.Time) {
	if now.Before(m.now) {
		now = m.now
	}
	m.now = now
	m.machine.Tick(now)
	m.transition.SetLoading(now, m.machine.Snapshot().Loading)
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	m.email.Blur()
	m.password.Blur()
	switch target {
	case focusEmail:
		return m.email.Focus()
	case focusPassword:
		return m.password.Focus()
	}
	return nil
}

func (m *Model) formVisible() bool {
	return m.view().FormVisible
}

// keyboardVisible reports whether a text field holds focus on a visible form.
func (m *Model) keyboardVisible() bool {
	snapshot := m.machine.Snapshot()
	formShown := snapshot.Phase == session.PhaseStopped && snapshot.Outcome != session.OutcomeSuccess
	return formShown && (m.focus == focusEmail || m.focus == focusPassword)
}

func (m *Model) view() screen.View {
	return screen.Compose(m.machine.Snapshot(), m.keyboardVisible(), m.machine.Config().Levels)
}
