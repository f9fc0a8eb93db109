// Package theme defines the light and dark color themes for the taka TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/taka/internal/model"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (active tab, selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (links, active states)
	Income       lipgloss.Color
	Expense      lipgloss.Color
	Warning      lipgloss.Color
}

// Palette colors the expense breakdown; slice i uses Palette[i%len(Palette)].
var Palette = [8]lipgloss.Color{
	"#10B981", "#34D399", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#6366F1", "#14B8A6",
}

// Active is the currently selected theme.
var Active = Light

// Light is the default theme.
var Light = Theme{
	Name:         string(model.Light),
	Background:   lipgloss.Color("#F8FAFC"),
	Surface:      lipgloss.Color("#FFFFFF"),
	SurfaceHover: lipgloss.Color("#F1F5F9"),
	Border:       lipgloss.Color("#E2E8F0"),
	BorderAccent: lipgloss.Color("#059669"),
	TextDim:      lipgloss.Color("#CBD5E1"),
	TextMuted:    lipgloss.Color("#94A3B8"),
	TextPrimary:  lipgloss.Color("#0F172A"),
	Accent:       lipgloss.Color("#059669"),
	Income:       lipgloss.Color("#10B981"),
	Expense:      lipgloss.Color("#F43F5E"),
	Warning:      lipgloss.Color("#F59E0B"),
}

// Dark mirrors Light on a slate background.
var Dark = Theme{
	Name:         string(model.Dark),
	Background:   lipgloss.Color("#020617"),
	Surface:      lipgloss.Color("#0F172A"),
	SurfaceHover: lipgloss.Color("#1E293B"),
	Border:       lipgloss.Color("#1E293B"),
	BorderAccent: lipgloss.Color("#34D399"),
	TextDim:      lipgloss.Color("#334155"),
	TextMuted:    lipgloss.Color("#64748B"),
	TextPrimary:  lipgloss.Color("#F8FAFC"),
	Accent:       lipgloss.Color("#34D399"),
	Income:       lipgloss.Color("#34D399"),
	Expense:      lipgloss.Color("#FB7185"),
	Warning:      lipgloss.Color("#FBBF24"),
}

// ByName returns a theme by its name, defaulting to Light.
func ByName(name string) Theme {
	if name == Dark.Name {
		return Dark
	}
	return Light
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SliceColor returns the palette color for a breakdown slice.
func SliceColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
