package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI sequences keyed by role. The zero value of every
// sequence is the empty string, so a theme with only a Name prints plain text.
type Theme struct {
	Name string

	Primary   string // values, register names
	Secondary string // labels
	Success   string // checks in agreement
	Warning   string // carries, overflow flags
	Error     string // failures, mismatches
	Info      string
	Bold      string
	Underline string
	Reset     string

	// Accent colors lipgloss frames and the TUI.
	Accent lipgloss.TerminalColor
}

func ansi256(code string) string { return "\033[38;5;" + code + "m" }

var (
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   ansi256("39"),
		Secondary: ansi256("245"),
		Success:   ansi256("82"),
		Warning:   ansi256("220"),
		Error:     ansi256("196"),
		Info:      ansi256("51"),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("39"),
	}

	LightTheme = Theme{
		Name:      "light",
		Primary:   ansi256("27"),
		Secondary: ansi256("240"),
		Success:   ansi256("28"),
		Warning:   ansi256("130"),
		Error:     ansi256("124"),
		Info:      ansi256("30"),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("27"),
	}

	NoColorTheme = Theme{Name: "none", Accent: lipgloss.NoColor{}}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	active   = DarkTheme
	activeMu sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	activeMu.Lock()
	active = t
	activeMu.Unlock()
}

// SetTheme selects a theme by name; unknown names fall back to dark.
func SetTheme(name string) {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme picks the startup theme. NO_COLOR (https://no-color.org/)
// disables colors whenever it is present, even if empty.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); set || noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// Box frames content with a rounded border in the accent color, with an
// optional bold title line.
func Box(title, content string) string {
	t := GetCurrentTheme()
	if title != "" {
		head := lipgloss.NewStyle().Bold(t.Name != NoColorTheme.Name).Foreground(t.Accent)
		content = head.Render(title) + "\n" + content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		Render(content)
}
