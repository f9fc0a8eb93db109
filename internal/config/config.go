package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/theirongolddev/taka/internal/model"
)

// Config holds all taka process configuration. User data (transactions,
// budgets, the PIN and in-app settings) lives in the database, not here.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Defaults DefaultsConfig `toml:"defaults"`
	Lock     LockConfig     `toml:"lock"`
}

// GeneralConfig holds paths and logging.
type GeneralConfig struct {
	DBPath   string `toml:"db_path,omitempty"`
	LogLevel string `toml:"log_level"`
}

// DefaultsConfig holds the settings used until the user changes them.
type DefaultsConfig struct {
	Language string `toml:"language"`
	Theme    string `toml:"theme"`
	Currency string `toml:"currency"`
}

// LockConfig holds access gate settings.
type LockConfig struct {
	ErrorDelayMS int `toml:"error_delay_ms"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Defaults: DefaultsConfig{
			Language: string(model.Bengali),
			Theme:    string(model.Light),
			Currency: "৳",
		},
		Lock: LockConfig{
			ErrorDelayMS: 800,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taka")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "taka")
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path (ConfigPath when empty), returning
// defaults if it doesn't exist.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to path (ConfigPath when empty).
func Save(path string, cfg Config) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists at path (ConfigPath when empty).
func Exists(path string) bool {
	if path == "" {
		path = ConfigPath()
	}
	_, err := os.Stat(path)
	return err == nil
}

// Validate rejects values the app cannot run with.
func (c Config) Validate() error {
	switch model.Language(c.Defaults.Language) {
	case model.Bengali, model.English:
	default:
		return fmt.Errorf("defaults.language: %q is not bn or en", c.Defaults.Language)
	}
	switch model.Theme(c.Defaults.Theme) {
	case model.Light, model.Dark:
	default:
		return fmt.Errorf("defaults.theme: %q is not light or dark", c.Defaults.Theme)
	}
	if c.Defaults.Currency == "" {
		return fmt.Errorf("defaults.currency: must not be empty")
	}
	if c.Lock.ErrorDelayMS < 0 {
		return fmt.Errorf("lock.error_delay_ms: must not be negative")
	}
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("general.log_level: %w", err)
	}
	return nil
}

// DBPath returns the database path, defaulting to the config directory.
func (c Config) DBPath() string {
	if c.General.DBPath != "" {
		return c.General.DBPath
	}
	return filepath.Join(ConfigDir(), "taka.db")
}

// ErrorDelay returns the PIN mismatch display duration.
func (c Config) ErrorDelay() time.Duration {
	return time.Duration(c.Lock.ErrorDelayMS) * time.Millisecond
}

// Settings returns the configured defaults as model settings.
func (c Config) Settings() model.Settings {
	return model.Settings{
		Language: model.Language(c.Defaults.Language),
		Theme:    model.Theme(c.Defaults.Theme),
		Currency: c.Defaults.Currency,
	}
}

// GetPIN returns the PIN from the TAKA_PIN environment variable, if set.
func GetPIN() string {
	return os.Getenv("TAKA_PIN")
}
