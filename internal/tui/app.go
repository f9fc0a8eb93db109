// Package tui provides the interactive Bubble Tea front end for taka.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/app"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/components"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

const (
	tabDashboard = iota
	tabHistory
	tabBudgets
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5

	flashDuration = 3 * time.Second
)

// Options configures the TUI.
type Options struct {
	ExportDir string           // where CSV exports are written; cwd when empty
	Now       func() time.Time // used for export file names and flash timing
}

// App is the root Bubble Tea model.
type App struct {
	core *app.App
	ctx  context.Context
	opts Options

	// UI state
	width     int
	height    int
	activeTab int

	// Per-tab state
	hist    historyState
	budgets budgetsState

	// Active huh form, if any
	form     *huh.Form
	formKind formKind
	vals     *formValues

	// Pending y/n confirmation
	confirm *confirmation

	// Flash message shown in the status bar
	flash      string
	flashErr   bool
	flashUntil time.Time
}

type confirmation struct {
	prompt string
	run    func(a *App) error
	done   string
}

// NewApp creates the TUI model around an opened core app.
func NewApp(ctx context.Context, core *app.App, opts Options) App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	theme.SetActive(string(core.Settings().Theme))
	return App{
		core: core,
		ctx:  ctx,
		opts: opts,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		tickCmd(),
	)
}

func (a App) lang() model.Language {
	return a.core.Settings().Language
}

func (a App) text(key string) string {
	return vocab.Text(a.lang(), key)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil

	case tickMsg:
		if a.flash != "" && a.opts.Now().After(a.flashUntil) {
			a.flash = ""
		}
		return a, tickCmd()

	case tea.MouseMsg:
		if a.core.Locked() || a.form != nil || a.confirm != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.core.Locked() {
			return a.updateLock(msg)
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.confirm != nil {
			return a.updateConfirm(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		// Tab bar is the first line.
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return a, tea.Quit
	case "L":
		a.core.LockNow()
		a.clearFlash()
		return a, nil
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}
	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabDashboard:
		return a.updateDashboard(key)
	case tabHistory:
		return a.updateHistory(key)
	case tabBudgets:
		return a.updateBudgets(key)
	case tabSettings:
		return a.updateSettings(key)
	}
	return a, nil
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := a.confirm
	a.confirm = nil
	switch msg.String() {
	case "y", "Y", "enter":
		if err := c.run(&a); err != nil {
			a.setError(err)
		} else {
			a.setFlash(c.done)
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabHistory:
		a.hist.move(delta, a.historyLen())
	case tabBudgets:
		a.budgets.move(delta, a.budgetsLen())
	}
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashErr = false
	a.flashUntil = a.opts.Now().Add(flashDuration)
}

func (a *App) setError(err error) {
	a.flash = err.Error()
	a.flashErr = true
	a.flashUntil = a.opts.Now().Add(flashDuration)
}

func (a *App) clearFlash() {
	a.flash = ""
	a.flashErr = false
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.core.Locked() {
		return a.viewLock()
	}
	if a.form != nil {
		return a.viewForm()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  taka needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w, a.lang())

	message := a.flash
	isErr := a.flashErr
	if a.confirm != nil {
		message = a.confirm.prompt
		isErr = true
	}
	statusBar := components.RenderStatusBar(w, a.hints(), message, isErr)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabBudgets:
		content = a.renderBudgetsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch a.activeTab {
	case tabDashboard:
		return "[1-3] period  [n] new  [L] lock  [q] quit"
	case tabHistory:
		return "[j/k] move  [n] new  [e] edit  [x] delete  [/] filter  [c] clear  [q] quit"
	case tabBudgets:
		return "[j/k] move  [n] set budget  [x] delete  [q] quit"
	case tabSettings:
		return "[l] language  [t] theme  [c] currency  [E] export  [L] lock  [q] quit"
	}
	return ""
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, a.lang())
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
