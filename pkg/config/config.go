package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"podo/pkg/keymaps"
	"podo/pkg/storage"
)

// SettingsStorageKey is the logical key the settings are mirrored
// under, so the stored data is self-contained.
const SettingsStorageKey = "productivity-settings"

// Settings holds the user-tunable behavior consumed by the timer and
// the UI.
type Settings struct {
	FocusMinutes      int    `json:"focus_minutes" mapstructure:"focus_minutes"`
	ShortBreakMinutes int    `json:"short_break_minutes" mapstructure:"short_break_minutes"`
	LongBreakMinutes  int    `json:"long_break_minutes" mapstructure:"long_break_minutes"`
	Theme             string `json:"theme" mapstructure:"theme"`
	SoundEnabled      bool   `json:"sound_enabled" mapstructure:"sound_enabled"`
}

// Storage selects and parameterizes the storage driver.
type Storage struct {
	Driver string `json:"driver" mapstructure:"driver"`
	Path   string `json:"path" mapstructure:"path"`
	DSN    string `json:"dsn" mapstructure:"dsn"`
}

// Config holds the application configuration.
type Config struct {
	Storage    Storage           `json:"storage" mapstructure:"storage"`
	Settings   Settings          `json:"settings" mapstructure:"settings"`
	StylesFile string            `json:"styles_file" mapstructure:"styles_file"`
	KeyMap     map[string]string `json:"keymap" mapstructure:"keymap"`
}

// DefaultSettings matches the classic 25/5/15 Pomodoro split.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		Theme:             "dark",
		SoundEnabled:      true,
	}
}

// Validate checks the settings ranges.
func (s Settings) Validate() error {
	if s.FocusMinutes < 1 || s.FocusMinutes > 60 {
		return fmt.Errorf("focus_minutes must be between 1 and 60, got %d", s.FocusMinutes)
	}
	if s.ShortBreakMinutes < 1 || s.ShortBreakMinutes > 30 {
		return fmt.Errorf("short_break_minutes must be between 1 and 30, got %d", s.ShortBreakMinutes)
	}
	if s.LongBreakMinutes < 5 || s.LongBreakMinutes > 60 {
		return fmt.Errorf("long_break_minutes must be between 5 and 60, got %d", s.LongBreakMinutes)
	}
	if s.Theme != "light" && s.Theme != "dark" {
		return fmt.Errorf("theme must be light or dark, got %q", s.Theme)
	}
	return nil
}

// Load reads the configuration, creating a default config file on
// first run.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "podo")

	config := Config{
		Storage: Storage{
			Driver: "sqlite",
			Path:   filepath.Join(configDir, "podo.db"),
		},
		Settings:   DefaultSettings(),
		StylesFile: filepath.Join(configDir, "styles.json"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
	}

	v := viper.New()
	v.SetConfigType("json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return config, Styles{}, err
		}

		// Config file not found, create the default one
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		v.Set("storage", config.Storage)
		v.Set("settings", config.Settings)
		v.Set("styles_file", config.StylesFile)
		v.Set("keymap", config.KeyMap)
		if err := v.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	} else {
		if err := v.Unmarshal(&config); err != nil {
			return config, Styles{}, err
		}
	}

	if err := config.Settings.Validate(); err != nil {
		return config, Styles{}, err
	}

	styles, err := loadStyles(config.StylesFile, config.Settings.Theme)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

// SaveSettings mirrors the settings into the storage collaborator.
func SaveSettings(st storage.Store, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return st.Write(SettingsStorageKey, data)
}
