package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/user/gpudoctor/pkg/engine"
)

var (
	critStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// StyledSeverity renders a severity tag with terminal colors for console
// output. File renderings stay plain; only interactive output is styled.
func StyledSeverity(s engine.Severity) string {
	tag := "[" + string(s) + "]"
	switch s {
	case engine.SeverityCrit:
		return critStyle.Render(tag)
	case engine.SeverityWarn:
		return warnStyle.Render(tag)
	case engine.SeverityInfo:
		return infoStyle.Render(tag)
	default:
		return dimStyle.Render(tag)
	}
}
