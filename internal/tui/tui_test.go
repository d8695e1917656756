package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s, theme.DevComfortDark())
	require.NoError(t, err)
	t.Cleanup(ui.Close)
	s.SetSize(w, h)
	return ui, s
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(s tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func TestDrawDocumentExpandsTabs(t *testing.T) {
	ui, s := newSimScreen(t, 20, 3)
	vp := &Viewport{}
	DrawDocument(ui.Screen(), Rect{Width: 20, Height: 3}, DocumentView{
		Content:  "a\tb\nsecond",
		Caret:    2,
		TabWidth: 4,
	}, vp, theme.DevComfortDark())
	ui.Show()

	assert.Equal(t, "a   b", row(s, 0))
	assert.Equal(t, "second", row(s, 1))
	assert.Equal(t, "", row(s, 2))

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 4, x)
	assert.Equal(t, 0, y)
}

func TestDrawDocumentStyles(t *testing.T) {
	th := theme.DevComfortDark()
	ui, s := newSimScreen(t, 20, 1)
	DrawDocument(ui.Screen(), Rect{Width: 20, Height: 1}, DocumentView{
		Content:      "foo bar foo",
		Selection:    types.Span{Start: 4, End: 7},
		HasSelection: true,
		Highlights:   []types.Span{{Start: 0, End: 3}, {Start: 8, End: 11}},
	}, &Viewport{}, th)
	ui.Show()

	assert.Equal(t, th.GetStyle(theme.StyleSearchHighlight), cellStyle(s, 0, 0))
	assert.Equal(t, th.GetStyle(theme.StyleDefault), cellStyle(s, 3, 0))
	assert.Equal(t, th.GetStyle(theme.StyleSelection), cellStyle(s, 5, 0))
	assert.Equal(t, th.GetStyle(theme.StyleSearchHighlight), cellStyle(s, 10, 0))
}

func TestDrawDocumentScrollsToCaret(t *testing.T) {
	ui, s := newSimScreen(t, 10, 3)
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, strings.Repeat(string(rune('a'+i)), 3))
	}
	content := strings.Join(lines, "\n")
	vp := &Viewport{}
	DrawDocument(ui.Screen(), Rect{Width: 10, Height: 3}, DocumentView{
		Content: content,
		Caret:   len(content),
	}, vp, theme.DevComfortDark())
	ui.Show()

	assert.Equal(t, 7, vp.TopLine)
	assert.Equal(t, "hhh", row(s, 0))
	assert.Equal(t, "jjj", row(s, 2))
}

func TestViewportScrollTo(t *testing.T) {
	vp := Viewport{TopLine: 5, LeftCol: 10}
	vp.ScrollTo(2, 3, 10, 40)
	assert.Equal(t, Viewport{TopLine: 2, LeftCol: 3}, vp)

	vp.ScrollTo(20, 50, 10, 40)
	assert.Equal(t, Viewport{TopLine: 11, LeftCol: 11}, vp)
}

func TestDrawTabBarAndPrompt(t *testing.T) {
	th := theme.DevComfortDark()
	ui, s := newSimScreen(t, 40, 2)
	DrawTabBar(ui.Screen(), 0, 40, []TabLabel{
		{Title: "Untitled-1"},
		{Title: "notes.txt*", Active: true, Dirty: true},
	}, th)
	DrawPrompt(ui.Screen(), 1, 40, "Find: ", "needle", 6, th)
	ui.Show()

	assert.Equal(t, " Untitled-1 | notes.txt* |", row(s, 0))
	assert.Equal(t, th.GetStyle(theme.StyleTabBarActive), cellStyle(s, 14, 0))
	assert.Equal(t, "Find: needle", row(s, 1))
	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 12, x)
	assert.Equal(t, 1, y)
}
