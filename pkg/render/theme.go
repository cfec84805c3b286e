package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the three text styles the breakdown printers use. Themes
// are immutable once constructed; printers only read them.
type Theme struct {
	Name     string
	Header   lipgloss.Style // group header lines
	Language lipgloss.Style // language annotations in the strategy breakdown
	Default  lipgloss.Style // everything else
}

// DefaultTheme returns the standard color theme: magenta headers, green
// language annotations.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Language: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Default:  lipgloss.NewStyle(),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Header:   lipgloss.NewStyle(),
		Language: lipgloss.NewStyle(),
		Default:  lipgloss.NewStyle(),
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
