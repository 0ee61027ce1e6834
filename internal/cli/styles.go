package cli

import (
	"github.com/charmbracelet/lipgloss"

	"vessel/internal/runtime"
)

// Styles contains the lipgloss styles for status and doctor output
type Styles struct {
	Name  lipgloss.Style
	Label lipgloss.Style

	StateRunning lipgloss.Style
	StateStopped lipgloss.Style
	StateAbsent  lipgloss.Style

	Warn lipgloss.Style
	OK   lipgloss.Style
	Fail lipgloss.Style
}

// DefaultStyles returns the default output styles
func DefaultStyles() Styles {
	return Styles{
		Name:  lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		StateRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StateStopped: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StateAbsent:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Warn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		OK:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Icons used in status output
const (
	IconRunning = "●"
	IconStopped = "◌"
	IconAbsent  = "·"
	IconOK      = "✓"
	IconFail    = "✗"
)

// ForState maps a container state to its icon and style.
func (s Styles) ForState(state runtime.State) (string, lipgloss.Style) {
	switch state {
	case runtime.StateRunning:
		return IconRunning, s.StateRunning
	case runtime.StateStopped, runtime.StateCreated:
		return IconStopped, s.StateStopped
	default:
		return IconAbsent, s.StateAbsent
	}
}
