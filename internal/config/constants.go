package config

// Application settings.
const (
	AppName        = "pomo"
	DBFileName     = "history.db"
	ConfigFileName = "config.yaml"
)

// Default interval lengths (minutes) and long-break cadence.
const (
	DefaultWorkMinutes             = 25
	DefaultShortBreakMinutes       = 5
	DefaultLongBreakMinutes        = 15
	DefaultSessionsBeforeLongBreak = 4
)

// Layout tuning for the TUI.
const (
	TargetProgressWidth  = 40
	MinProgressWidth     = 20
	CompactModeThreshold = 72
)
