package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/taka/internal/config"
	"github.com/theirongolddev/taka/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

// storedKeys lists the keys held in the database at path, or nil when no
// database exists there yet.
func storedKeys(ctx context.Context, path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return db.Keys(ctx)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", configPath())
	if config.Exists(flagConfig) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:  %s\n", cfg.DBPath())
	fmt.Printf("    Log level: %s\n", cfg.General.LogLevel)
	keys, err := storedKeys(cmd.Context(), cfg.DBPath())
	if err != nil {
		return fmt.Errorf("reading store: %w", err)
	}
	if len(keys) == 0 {
		fmt.Println("    Stored:    nothing yet")
	} else {
		fmt.Printf("    Stored:    %s\n", strings.Join(keys, ", "))
	}
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Language: %s\n", cfg.Defaults.Language)
	fmt.Printf("    Theme:    %s\n", cfg.Defaults.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Defaults.Currency)
	fmt.Println()

	fmt.Println("  [Lock]")
	fmt.Printf("    Error delay: %s\n", cfg.ErrorDelay())
	if config.GetPIN() != "" {
		fmt.Println("    TAKA_PIN:    set")
	}
	fmt.Println()
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists(flagConfig) {
		return fmt.Errorf("%s already exists", configPath())
	}
	if err := config.Save(flagConfig, config.DefaultConfig()); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("  Saved to %s\n", configPath())
	return nil
}
