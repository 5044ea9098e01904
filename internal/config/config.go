// Package config holds application constants and the optional YAML settings
// file read at startup. Durations are fixed once the engine is constructed;
// the file only influences construction.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomo/internal/timer"
	"pomo/internal/util"
)

// FileSettings mirrors the YAML config file. Zero-valued fields fall back to
// the defaults; explicitly negative values are rejected by validation.
type FileSettings struct {
	WorkMinutes             int `yaml:"work_minutes"`
	ShortBreakMinutes       int `yaml:"short_break_minutes"`
	LongBreakMinutes        int `yaml:"long_break_minutes"`
	SessionsBeforeLongBreak int `yaml:"sessions_before_long_break"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/pomo/config.yaml.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads timer settings from the YAML file at path. A missing file is
// not an error: it yields the defaults. A file that parses but fails
// validation is a fatal configuration error for the caller to report.
func Load(path string) (timer.Settings, error) {
	settings := timer.DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read config %s: %w", path, err)
	}

	var file FileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return settings, fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.WorkMinutes != 0 {
		settings.WorkMinutes = file.WorkMinutes
	}
	if file.ShortBreakMinutes != 0 {
		settings.ShortBreakMinutes = file.ShortBreakMinutes
	}
	if file.LongBreakMinutes != 0 {
		settings.LongBreakMinutes = file.LongBreakMinutes
	}
	if file.SessionsBeforeLongBreak != 0 {
		settings.SessionsBeforeLongBreak = file.SessionsBeforeLongBreak
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", path, err)
	}
	return settings, nil
}
