package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	DebugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95A5A6")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F39C12")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")).
			Bold(true)

	// Style for key/value pairs attached to debug records
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9B59B6"))
)

// LogStyles returns the level badges used by the logger.
func LogStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = DebugStyle.SetString("DEBU")
	styles.Levels[log.InfoLevel] = InfoStyle.SetString("INFO")
	styles.Levels[log.WarnLevel] = WarningStyle.SetString("WARN")
	styles.Levels[log.ErrorLevel] = ErrorStyle.SetString("rm:")
	styles.Key = KeyStyle
	return styles
}
