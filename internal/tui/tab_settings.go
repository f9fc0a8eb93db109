package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/export"
	"github.com/theirongolddev/taka/internal/model"
	"github.com/theirongolddev/taka/internal/tui/components"
	"github.com/theirongolddev/taka/internal/tui/theme"
	"github.com/theirongolddev/taka/internal/vocab"
)

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "l":
		next := model.English
		if a.lang() == model.English {
			next = model.Bengali
		}
		if err := a.core.SetLanguage(a.ctx, next); err != nil {
			a.setError(err)
			return a, nil
		}
		a.setFlash(a.text(vocab.TextSaved))
	case "t":
		th, err := a.core.ToggleTheme(a.ctx)
		theme.SetActive(string(th))
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.setFlash(a.text(vocab.TextSaved))
	case "c":
		return a.openCurrencyForm()
	case "E":
		path, err := a.exportCSV()
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.setFlash(a.text(vocab.TextExportDone) + ": " + path)
	}
	return a, nil
}

// exportCSV writes every transaction to a dated CSV file in the export
// directory and returns its path.
func (a App) exportCSV() (string, error) {
	rows, err := a.core.ExportRows()
	if err != nil {
		return "", err
	}
	path := filepath.Join(a.opts.ExportDir, export.FileName(export.AppName, a.opts.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	if err := export.WriteCSV(f, rows); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	lang := a.lang()
	s := a.core.Settings()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	langName := "বাংলা"
	if lang == model.English {
		langName = "English"
	}
	dark := "off"
	if s.Theme == model.Dark {
		dark = "on"
	}

	rows := []struct{ key, label, value string }{
		{"l", vocab.Text(lang, vocab.TextLanguage), langName},
		{"t", vocab.Text(lang, vocab.TextDarkMode), dark},
		{"c", vocab.Text(lang, vocab.TextCurrency), s.Currency},
		{"E", vocab.Text(lang, vocab.TextExportCSV), ""},
		{"L", vocab.Text(lang, vocab.TextLogout), ""},
	}

	labelW := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.label); w > labelW {
			labelW = w
		}
	}

	var b strings.Builder
	for i, r := range rows {
		label := r.label + strings.Repeat(" ", labelW-lipgloss.Width(r.label))
		b.WriteString(keyStyle.Render("[" + r.key + "] "))
		b.WriteString(labelStyle.Render(label))
		if r.value != "" {
			b.WriteString(labelStyle.Render("  "))
			b.WriteString(valueStyle.Render(r.value))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return components.ContentCard(vocab.Text(lang, vocab.TextSettings), b.String(), cw)
}
