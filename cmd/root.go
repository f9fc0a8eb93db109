// Package cmd implements the taka CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/app"
	"github.com/theirongolddev/taka/internal/config"
	"github.com/theirongolddev/taka/internal/gate"
	"github.com/theirongolddev/taka/internal/store"
	"github.com/theirongolddev/taka/internal/vocab"
)

var (
	flagConfig  string
	flagDB      string
	flagVerbose bool
	flagPIN     string
)

// Loaded by the root PersistentPreRunE.
var (
	cfg    config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "taka",
	Short:         "Personal income and expense tracker",
	Long:          "Track income, expenses and monthly category budgets, locked behind a 4-digit PIN.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStats,

	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// A .env in the working directory may carry TAKA_PIN.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagDB != "" {
			cfg.General.DBPath = flagDB
		}
		logger = newLogger(cfg)
		return nil
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (overrides general.db_path)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flagPIN, "pin", "", "PIN to unlock with (or set TAKA_PIN)")
}

func newLogger(c config.Config) *log.Logger {
	level, err := log.ParseLevel(c.General.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "taka",
		Level:           level,
		ReportTimestamp: flagVerbose,
	})
}

// session is an opened app with the store behind it.
type session struct {
	*app.App
	db *store.SQLite
}

func (s *session) Close(ctx context.Context) {
	if err := s.App.Close(ctx); err != nil {
		logger.Error("closing app", "err", err)
	}
	if err := s.db.Close(); err != nil {
		logger.Error("closing database", "err", err)
	}
}

// openApp opens the database and loads the app. It starts locked.
func openApp(ctx context.Context) (*session, error) {
	path := cfg.DBPath()
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Debug("opened database", "path", path)

	core, err := app.New(ctx, db, app.Options{
		Logger:   logger,
		Defaults: cfg.Settings(),
		Gate:     []gate.Option{gate.WithErrorDelay(cfg.ErrorDelay())},
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &session{App: core, db: db}, nil
}

// openUnlocked opens the app and unlocks it with the PIN from --pin,
// TAKA_PIN, or an interactive prompt, in that order.
func openUnlocked(ctx context.Context) (*session, error) {
	s, err := openApp(ctx)
	if err != nil {
		return nil, err
	}
	if err := unlock(ctx, s.App); err != nil {
		s.Close(ctx)
		return nil, err
	}
	return s, nil
}

func unlock(ctx context.Context, core *app.App) error {
	first := core.GateStatus().Phase == gate.AwaitingFirstEntry

	pin := flagPIN
	if pin == "" {
		pin = config.GetPIN()
	}
	if pin == "" {
		var err error
		if pin, err = promptPIN(core, first); err != nil {
			return err
		}
	}
	if !validPIN(pin) {
		return fmt.Errorf("pin must be %d digits", gate.PINLength)
	}

	st, err := core.UnlockWithPin(ctx, pin)
	if err != nil {
		// The PIN was adopted but not saved; this run is still unlocked.
		logger.Warn("pin not saved", "err", err)
	}
	if st.Phase != gate.Unlocked {
		return errors.New(vocab.Text(core.Settings().Language, vocab.TextWrongPIN))
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != gate.PINLength {
		return false
	}
	return strings.Trim(pin, "0123456789") == ""
}

func promptPIN(core *app.App, first bool) (string, error) {
	lang := core.Settings().Language
	title := vocab.Text(lang, vocab.TextEnterPIN)
	if first {
		title = vocab.Text(lang, vocab.TextSetupHint)
	}

	var pin string
	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		CharLimit(gate.PINLength).
		Validate(func(s string) error {
			if !validPIN(s) {
				return fmt.Errorf("enter %d digits", gate.PINLength)
			}
			return nil
		}).
		Value(&pin).
		Run()
	if err != nil {
		return "", fmt.Errorf("reading pin: %w", err)
	}
	return pin, nil
}
