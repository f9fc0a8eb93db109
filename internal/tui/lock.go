package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/gate"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

// updateLock handles keys while the gate is closed. The mismatch reset
// runs on the gate's own timer; the tick loop repaints it.
func (a App) updateLock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return a, tea.Quit
	case tea.KeyBackspace:
		a.core.Backspace()
		return a, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == 'q' {
				return a, tea.Quit
			}
			st, err := a.core.PressKey(a.ctx, r)
			if err != nil {
				a.setError(err)
			}
			if st.Phase == gate.Unlocked {
				a.activeTab = tabDashboard
				break
			}
		}
	}
	return a, nil
}

func (a App) viewLock() string {
	t := theme.Active
	st := a.core.GateStatus()

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 4)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	errStyle := lipgloss.NewStyle().
		Foreground(t.Expense).
		Background(t.Surface).
		Bold(true)

	title := a.text(vocab.TextLockApp)
	hint := a.text(vocab.TextEnterPIN)
	if st.Phase == gate.AwaitingFirstEntry {
		title = a.text(vocab.TextSetupPIN)
		hint = a.text(vocab.TextSetupHint)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("৳ " + a.text(vocab.TextAppName)))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(hint))
	b.WriteString("\n\n")
	b.WriteString(renderPINBoxes(st))
	b.WriteString("\n\n")
	switch {
	case st.Phase == gate.Mismatch:
		b.WriteString(errStyle.Render(a.text(vocab.TextWrongPIN)))
	case a.flashErr && a.flash != "":
		b.WriteString(errStyle.Render(a.flash))
	default:
		b.WriteString(subtitleStyle.Render("esc: quit"))
	}

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderPINBoxes draws one box per PIN digit, filled for entered digits
// and red while a mismatch is shown.
func renderPINBoxes(st gate.Status) string {
	t := theme.Active

	color := t.Accent
	if st.Phase == gate.Mismatch {
		color = t.Expense
	}
	filled := lipgloss.NewStyle().
		Foreground(color).
		Background(t.Surface).
		Bold(true)
	empty := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	boxes := make([]string, gate.PINLength)
	for i := range boxes {
		if i < st.Entered {
			boxes[i] = filled.Render("[●]")
		} else {
			boxes[i] = empty.Render("[ ]")
		}
	}
	return strings.Join(boxes, space)
}
