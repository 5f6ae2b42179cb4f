package term

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#3D5AFE")
	Crest   = lipgloss.Color("#8C9EFF")
	Danger  = lipgloss.Color("#EF4444")
	Success = lipgloss.Color("#10B981")
	Muted   = lipgloss.Color("#6B7280")
	Text    = lipgloss.Color("#F9FAFB")

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			MarginBottom(1)

	failedHeadingStyle = headingStyle.
				Foreground(Danger)

	successHeadingStyle = headingStyle.
				Foreground(Success)

	waveStyle = lipgloss.NewStyle().
			Foreground(Primary)

	crestStyle = lipgloss.NewStyle().
			Foreground(Crest)

	checkingStyle = lipgloss.NewStyle().
			Foreground(Text).
			Italic(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(Muted)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Background(Text)

	focusedButtonStyle = buttonStyle.
				Underline(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(Crest)

	helpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(Danger)
)
