package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/config"
	"github.com/theirongolddev/taka/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Log lines on stderr would tear the alt screen.
	logPath := filepath.Join(config.ConfigDir(), "taka.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			defer f.Close()
			logger.SetOutput(f)
		}
	}

	s, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	if flagPIN != "" || config.GetPIN() != "" {
		if err := unlock(ctx, s.App); err != nil {
			return err
		}
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	cwd, _ := os.Getwd()
	model := tui.NewApp(ctx, s.App, tui.Options{ExportDir: cwd})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
