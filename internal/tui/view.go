// internal/tui/view.go
package tui

import (
	"strings"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/bethropolis/tidepad/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Viewport is the scroll state of one tab's text area.
type Viewport struct {
	TopLine int // first visible line
	LeftCol int // first visible visual column
}

// ScrollTo adjusts the viewport so (line, col) lies inside a height x width area.
func (v *Viewport) ScrollTo(line, col, height, width int) {
	if line < v.TopLine {
		v.TopLine = line
	} else if height > 0 && line >= v.TopLine+height {
		v.TopLine = line - height + 1
	}
	if col < v.LeftCol {
		v.LeftCol = col
	} else if width > 0 && col >= v.LeftCol+width {
		v.LeftCol = col - width + 1
	}
}

// DocumentView is what the text area shows for the active tab.
type DocumentView struct {
	Content      string
	Caret        int
	Selection    types.Span
	HasSelection bool
	Highlights   []types.Span // ascending, non-overlapping
	TabWidth     int
}

// DrawDocument renders view into area, scrolling vp to keep the caret
// visible, and places the terminal cursor on the caret.
func DrawDocument(screen tcell.Screen, area Rect, view DocumentView, vp *Viewport, th *theme.Theme) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	if view.TabWidth <= 0 {
		view.TabWidth = 4
	}
	content := view.Content
	caret := utils.ClampOffset(content, view.Caret)
	caretLine := strings.Count(content[:caret], "\n")
	caretLineStart := strings.LastIndexByte(content[:caret], '\n') + 1
	caretCol := visualColumn(content[caretLineStart:caret], view.TabWidth)
	vp.ScrollTo(caretLine, caretCol, area.Height, area.Width)

	painter := linePainter{
		screen:     screen,
		area:       area,
		view:       view,
		leftCol:    vp.LeftCol,
		base:       th.GetStyle(theme.StyleDefault),
		selection:  th.GetStyle(theme.StyleSelection),
		highlight:  th.GetStyle(theme.StyleSearchHighlight),
		highlights: view.Highlights,
	}

	offset := lineStart(content, vp.TopLine)
	for row := 0; row < area.Height; row++ {
		y := area.Y + row
		FillRow(screen, area.X, y, area.X+area.Width, painter.base)
		if offset < 0 {
			continue
		}
		end := len(content)
		if i := strings.IndexByte(content[offset:], '\n'); i >= 0 {
			end = offset + i
		}
		painter.draw(y, offset, content[offset:end])
		if end == len(content) {
			offset = -1
		} else {
			offset = end + 1
		}
	}

	x := caretCol - vp.LeftCol
	y := caretLine - vp.TopLine
	if x >= 0 && x < area.Width && y >= 0 && y < area.Height {
		screen.ShowCursor(area.X+x, area.Y+y)
	} else {
		screen.HideCursor()
	}
}

// lineStart returns the byte offset where line begins, or -1 past the last line.
func lineStart(content string, line int) int {
	offset := 0
	for ; line > 0; line-- {
		i := strings.IndexByte(content[offset:], '\n')
		if i < 0 {
			return -1
		}
		offset += i + 1
	}
	return offset
}

// visualColumn is the display width of text with tabs expanded.
func visualColumn(text string, tabWidth int) int {
	col := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		col += clusterWidth(gr, col, tabWidth)
	}
	return col
}

func clusterWidth(gr *uniseg.Graphemes, col, tabWidth int) int {
	if gr.Runes()[0] == '\t' {
		return tabWidth - col%tabWidth
	}
	return gr.Width()
}

type linePainter struct {
	screen     tcell.Screen
	area       Rect
	view       DocumentView
	leftCol    int
	base       tcell.Style
	selection  tcell.Style
	highlight  tcell.Style
	highlights []types.Span // consumed as drawing moves forward
}

func (p *linePainter) styleAt(offset int) tcell.Style {
	sel := p.view.Selection
	if p.view.HasSelection && offset >= sel.Start && offset < sel.End {
		return p.selection
	}
	for len(p.highlights) > 0 && p.highlights[0].End <= offset {
		p.highlights = p.highlights[1:]
	}
	if len(p.highlights) > 0 && p.highlights[0].Start <= offset {
		return p.highlight
	}
	return p.base
}

func (p *linePainter) draw(y, offset int, line string) {
	right := p.leftCol + p.area.Width
	col := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if col >= right {
			return
		}
		runes := gr.Runes()
		w := clusterWidth(gr, col, p.view.TabWidth)
		style := p.styleAt(offset)
		for i := 0; i < w; i++ {
			sx := col + i - p.leftCol
			if sx < 0 || sx >= p.area.Width {
				continue
			}
			if i == 0 && runes[0] != '\t' {
				p.screen.SetContent(p.area.X+sx, y, runes[0], runes[1:], style)
			} else {
				p.screen.SetContent(p.area.X+sx, y, ' ', nil, style)
			}
		}
		col += w
		offset += len(gr.Str())
	}
}
