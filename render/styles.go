package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keydex/keydex/pkg/x_log"
)

// Styles defines the visual styles of the level-order view.
type Styles struct {
	Depth    lipgloss.Style // level label on the left
	Internal lipgloss.Style // internal node brackets and separator keys
	Leaf     lipgloss.Style // leaf braces
	Key      lipgloss.Style // keys inside leaves
	Colon    lipgloss.Style // key/value divider
	Value    lipgloss.Style // values inside leaves
	Arrow    lipgloss.Style // leaf chain arrows
}

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

// DefaultStylesDark is the theme for dark terminals.
func DefaultStylesDark() *Styles {
	return &Styles{
		Depth:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
		Internal: lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorOrange40)).Bold(true),
		Leaf:     lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorBlue40)),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorBlue60)).Bold(true),
		Colon:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGreen40)),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
	}
}

// DefaultStylesLight is the theme for light terminals.
func DefaultStylesLight() *Styles {
	return &Styles{
		Depth:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
		Internal: lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorOrange40)).Bold(true),
		Leaf:     lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorBlueBase)),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorBlueBase)).Bold(true),
		Colon:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray90)),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60)),
	}
}
