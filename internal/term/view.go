package term

import (
	"math"
	"strings"

	"waveslogin/internal/core/screen"
	"waveslogin/internal/ui/animation"
	"waveslogin/internal/ui/wave"

	"fyne.io/fyne/v2/lang"
	"github.com/charmbracelet/lipgloss"
)

const paddingPerCell = 6.0

// View implements tea.Model.
func (m *Model) View() string {
	view := m.view()
	var sections []string

	if view.HeadingVisible {
		sections = append(sections, headingFor(view.Heading).Render(lang.L(view.Heading)))
	}

	phase := math.Mod(m.now.Sub(m.startedAt).Seconds()*phaseSpeed, 2*math.Pi)
	sections = append(sections, RenderWave(m.width, waveRows, view.WaveLevel, phase))

	if view.CheckingVisible {
		sections = append(sections, checkingStyle.Render(lang.L("checking_credentials")))
	}
	if view.DashboardVisible {
		sections = append(sections,
			successHeadingStyle.Render(lang.L("go_to_dashboard")),
			subtitleStyle.Render("ctrl+r "+lang.L("sign_out")),
		)
	}
	if view.FormVisible {
		sections = append(sections,
			headingStyle.Render(lang.L("welcome_back")),
			subtitleStyle.Render(lang.L("welcome_back_description")),
			m.email.View(),
			m.password.View(),
			linkStyle.Render(lang.L("forget_password")),
		)
		if m.notice != "" {
			sections = append(sections, noticeStyle.Render(lang.L(m.notice)))
		}
	}

	sections = append(sections, m.renderButton(lang.L(view.ButtonLabel)))

	if view.SignupVisible {
		sections = append(sections, linkStyle.Render(lang.L("sign_up")))
	}
	sections = append(sections, helpStyle.Render("tab focus • enter "+lang.L("login")+" • ctrl+r reset • ctrl+c "+lang.L("quit")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderButton(label string) string {
	frame := m.transition.Sample(m.now)
	return RenderButton(frame, label, m.spinner.View(), m.focus == focusButton)
}

// RenderButton draws the login button for one animation frame. The label is
// cropped around its center by LabelScale and dimmed with LabelAlpha.
func RenderButton(frame animation.ButtonFrame, label, spinnerGlyph string, focused bool) string {
	padding := strings.Repeat(" ", int(math.Round(frame.Padding/paddingPerCell)))

	var content string
	switch {
	case frame.LabelVisible:
		content = scaleLabel(label, frame.LabelScale)
	case frame.SpinnerVisible:
		content = spinnerGlyph
	}

	style := buttonStyle
	if focused {
		style = focusedButtonStyle
	}
	if frame.LabelVisible && frame.LabelAlpha < 0.5 {
		style = style.Faint(true)
	}
	return style.Render(padding + content + padding)
}

func scaleLabel(label string, scale float64) string {
	runes := []rune(label)
	keep := int(math.Round(float64(len(runes)) * math.Max(0, math.Min(1, scale))))
	if keep >= len(runes) {
		return label
	}
	start := (len(runes) - keep) / 2
	return string(runes[start : start+keep])
}

// RenderWave draws the wave as block characters, one cell per column and
// two vertical samples per row.
func RenderWave(width, rows int, level, phase float64) string {
	if width <= 0 || rows <= 0 {
		return ""
	}
	height := rows * 2
	var builder strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		var line strings.Builder
		crest := false
		for x := 0; x < width; x++ {
			top := wave.Filled(x, row*2, width, height, level, phase)
			bottom := wave.Filled(x, row*2+1, width, height, level, phase)
			switch {
			case top && bottom:
				line.WriteRune('█')
			case bottom:
				line.WriteRune('▄')
				crest = true
			case top:
				line.WriteRune('▀')
			default:
				line.WriteRune(' ')
			}
		}
		if crest {
			builder.WriteString(crestStyle.Render(line.String()))
		} else {
			builder.WriteString(waveStyle.Render(line.String()))
		}
	}
	return builder.String()
}

func headingFor(key string) lipgloss.Style {
	switch key {
	case screen.KeyLoginFailed:
		return failedHeadingStyle
	case screen.KeyLoginSuccess:
		return successHeadingStyle
	default:
		return headingStyle
	}
}
