package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fixcalc/internal/ui"
)

// Style variables for the dashboard, rebuilt from the active ui theme by
// initTUIStyles.
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	dimStyle           lipgloss.Style
	valueStyle         lipgloss.Style
	checkNameStyle     lipgloss.Style
	statusRunningStyle lipgloss.Style
	statusPausedStyle  lipgloss.Style
	statusDoneStyle    lipgloss.Style
	statusErrorStyle   lipgloss.Style
	cpuSparklineStyle  lipgloss.Style
	memSparklineStyle  lipgloss.Style
)

// palette holds the lipgloss colors of one ui theme.
type palette struct {
	accent, dim, success, warning, danger lipgloss.TerminalColor
}

func paletteFor(t ui.Theme) palette {
	switch t.Name {
	case "none":
		none := lipgloss.NoColor{}
		return palette{none, none, none, none, none}
	case "light":
		return palette{t.Accent, lipgloss.Color("240"), lipgloss.Color("28"), lipgloss.Color("130"), lipgloss.Color("124")}
	default:
		return palette{t.Accent, lipgloss.Color("245"), lipgloss.Color("82"), lipgloss.Color("220"), lipgloss.Color("196")}
	}
}

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTheme()
	p := paletteFor(t)
	bold := t.Name != "none"

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.accent).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.accent)
	dimStyle = lipgloss.NewStyle().Foreground(p.dim)
	valueStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.accent)
	checkNameStyle = lipgloss.NewStyle().Foreground(p.accent)
	statusRunningStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.success)
	statusPausedStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.warning)
	statusDoneStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.accent)
	statusErrorStyle = lipgloss.NewStyle().Bold(bold).Foreground(p.danger)
	cpuSparklineStyle = lipgloss.NewStyle().Foreground(p.accent)
	memSparklineStyle = lipgloss.NewStyle().Foreground(p.warning)
}
