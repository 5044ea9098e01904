package tui

import "github.com/charmbracelet/lipgloss"

const DefaultThemeName = "default"

type Theme struct {
	Name         string
	Border       lipgloss.Color
	Header       lipgloss.Style
	Clock        lipgloss.Style
	ModeActive   lipgloss.Style
	ModeInactive lipgloss.Style
	Break        lipgloss.Style
	Sessions     lipgloss.Style
	Dim          lipgloss.Style
	Highlight    lipgloss.Style
	Message      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ModeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		ModeInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Break:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Sessions:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	},
	"dracula": {
		Name:         "Dracula",
		Border:       lipgloss.Color("62"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Clock:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		ModeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Underline(true),
		ModeInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Break:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Sessions:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("84")),
	},
}

var themeOrder = []string{"default", "dracula"}

func nextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return DefaultThemeName
}
