// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the presentation layer asks for.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleSearchHighlight   = "SearchHighlight"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleTabBar            = "TabBar"
	StyleTabBarActive      = "TabBar.active"
	StyleTabBarModified    = "TabBar.modified"
	StylePrompt            = "Prompt"
	StylePromptLabel       = "Prompt.label"
)

// Theme is a named set of styles. It is passed explicitly to whatever draws.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to the part before the
// first dot, then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the built-in theme.
func DevComfortDark() *Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38) // muted dark blue/grey (bars)
	dcForeground := tcell.NewHexColor(0xc5cdd9) // soft off-white (text)
	dcComment := tcell.NewHexColor(0x5c6370)    // muted grey
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcBlue := tcell.NewHexColor(0x61afef)

	// Terminal background, theme foreground
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	bar := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)

	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           baseStyle,
			StyleSelection:         baseStyle.Reverse(true),
			StyleSearchHighlight:   tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(dcYellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleTabBar:            bar.Foreground(dcComment),
			StyleTabBarActive:      baseStyle.Foreground(dcBlue).Bold(true).Underline(true),
			StyleTabBarModified:    bar.Foreground(dcYellow),
			StylePrompt:            bar,
			StylePromptLabel:       bar.Foreground(dcGreen).Bold(true),
		},
	}
}
