// file: keydex/pkg/x_log/style.go
package x_log

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGreen40   = "#42be65"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for console log output.
type Styles struct {
	Timestamp         lipgloss.Style                   // style for timestamps
	Levels            map[zerolog.Level]lipgloss.Style // level badge styles
	Keys              map[string]lipgloss.Style        // well-known field keys
	DefaultKeyStyle   lipgloss.Style                   // fallback for unknown keys
	DefaultValueStyle lipgloss.Style                   // style for field values
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter that renders
// level badges, timestamps and fields through the given styles.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		TimeFormat: "01-02 15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			var color string

			switch lvl {
			case "debug":
				color = ColorTeal40
			case "info":
				color = ColorBlue60
			case "warn":
				color = ColorOrange40
			case "error":
				color = ColorRed60
			case "fatal":
				color = ColorRedStrong
			default:
				color = ColorGray60
			}

			badge := lvl
			if len(badge) > 3 {
				badge = badge[:3]
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(strings.ToUpper(badge))
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return style.Render(key) + eqStyle.Render("=")
		},

		FormatFieldValue: func(i any) string {
			return styles.DefaultValueStyle.Render(fmt.Sprint(i))
		},

		FormatMessage: func(i any) string {
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorGray10)).
				Render(fmt.Sprint(i))
		},
	}
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"key":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"value":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"addr":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"req_id": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			"err":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)).
			Width(16),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"key":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"value":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"op":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"addr":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"req_id": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			"err":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}
