package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pomo/internal/config"
	"pomo/internal/database"
	"pomo/internal/timer"
	"pomo/internal/tui"
	"pomo/internal/util"
)

var (
	flagConfig   string
	flagWork     int
	flagShort    int
	flagLong     int
	flagSessions int
)

func main() {
	root := &cobra.Command{
		Use:           "pomo",
		Short:         "Pomodoro timer for the terminal",
		Version:       tui.AppVersion,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/pomo/config.yaml)")
	root.Flags().IntVar(&flagWork, "work", 0, "work interval in minutes")
	root.Flags().IntVar(&flagShort, "short-break", 0, "short break in minutes")
	root.Flags().IntVar(&flagLong, "long-break", 0, "long break in minutes")
	root.Flags().IntVar(&flagSessions, "sessions", 0, "work sessions before a long break")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pomo: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pomo needs an interactive terminal")
	}

	settings, err := loadSettings(flagConfig)
	if err != nil {
		return err
	}

	dataRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dataRoot, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := database.Open(filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	model, err := tui.NewModel(settings, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// loadSettings resolves the config file, then layers flag overrides on top.
// Durations are fixed from here on; nothing changes them at runtime.
func loadSettings(path string) (timer.Settings, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}
	settings = applyOverrides(settings, flagWork, flagShort, flagLong, flagSessions)
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// applyOverrides replaces any setting a flag was given for. Zero means the
// flag was not set; negative values flow through so validation rejects them.
func applyOverrides(s timer.Settings, work, short, long, sessions int) timer.Settings {
	if work != 0 {
		s.WorkMinutes = work
	}
	if short != 0 {
		s.ShortBreakMinutes = short
	}
	if long != 0 {
		s.LongBreakMinutes = long
	}
	if sessions != 0 {
		s.SessionsBeforeLongBreak = sessions
	}
	return s
}
