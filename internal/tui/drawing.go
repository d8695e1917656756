// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Rect is a screen region.
type Rect struct {
	X, Y          int
	Width, Height int
}

// DrawText draws text at (x, y) clipped before maxX and returns the next free column.
func DrawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, style)
		}
		x += clusterWidth
	}
	return x
}

// FillRow paints row y from x to maxX with blanks.
func FillRow(screen tcell.Screen, x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// TabLabel is one entry of the tab bar.
type TabLabel struct {
	Title  string
	Active bool
	Dirty  bool
}

// DrawTabBar draws the tab strip on row y. Labels that do not fit are cut off.
func DrawTabBar(screen tcell.Screen, y, width int, labels []TabLabel, th *theme.Theme) {
	barStyle := th.GetStyle(theme.StyleTabBar)
	FillRow(screen, 0, y, width, barStyle)

	x := 0
	for _, l := range labels {
		style := barStyle
		switch {
		case l.Active:
			style = th.GetStyle(theme.StyleTabBarActive)
		case l.Dirty:
			style = th.GetStyle(theme.StyleTabBarModified)
		}
		x = DrawText(screen, x, y, width, " "+l.Title+" ", style)
		if x >= width {
			return
		}
		x = DrawText(screen, x, y, width, "|", barStyle)
	}
}

// DrawPrompt draws "label text" on row y and places the cursor at the rune
// index cursor within text.
func DrawPrompt(screen tcell.Screen, y, width int, label, text string, cursor int, th *theme.Theme) {
	promptStyle := th.GetStyle(theme.StylePrompt)
	FillRow(screen, 0, y, width, promptStyle)
	x := DrawText(screen, 0, y, width, label, th.GetStyle(theme.StylePromptLabel))

	runes := []rune(text)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	cursorX := x + uniseg.StringWidth(string(runes[:cursor]))
	DrawText(screen, x, y, width, text, promptStyle)
	if cursorX < width {
		screen.ShowCursor(cursorX, y)
	} else {
		screen.HideCursor()
	}
}
