package sinks

import (
	"github.com/charmbracelet/lipgloss"
)

// ConsoleTheme styles each output channel of the console sink. Styles
// apply to the whole block; the block's text content is never altered,
// only wrapped in terminal escapes.
type ConsoleTheme struct {
	Info       lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Diagnostic lipgloss.Style
}

// DefaultTheme returns the standard channel colors: warnings yellow,
// errors red, checkpoints cyan, info unstyled.
func DefaultTheme() *ConsoleTheme {
	return &ConsoleTheme{
		Info:       lipgloss.NewStyle(),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Diagnostic: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// LiteTheme returns a muted variant: errors red, everything else
// unstyled.
func LiteTheme() *ConsoleTheme {
	return &ConsoleTheme{
		Info:       lipgloss.NewStyle(),
		Warning:    lipgloss.NewStyle(),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Diagnostic: lipgloss.NewStyle(),
	}
}

// PlainTheme returns a theme with no styling at all. Output bytes are
// identical to the formatted block.
func PlainTheme() *ConsoleTheme {
	return &ConsoleTheme{}
}

// styleFor returns the style for one channel.
func (t *ConsoleTheme) styleFor(channel Channel) lipgloss.Style {
	switch channel {
	case WarningChannel:
		return t.Warning
	case ErrorChannel:
		return t.Error
	case DiagnosticChannel:
		return t.Diagnostic
	default:
		return t.Info
	}
}
