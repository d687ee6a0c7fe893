package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

// defaultStyles returns the styled set for terminal output.
func defaultStyles() Styles {
	return Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FilePath: lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

// plainStyles returns pass-through styles for non-terminal output.
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Muted:    plain,
		Bold:     plain,
		Success:  plain,
		FilePath: plain,
	}
}
