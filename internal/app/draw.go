package app

import (
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/tui"
)

// textArea is the region between the tab bar and the status bar.
func (a *App) textArea() tui.Rect {
	width, height := a.tuiManager.Size()
	h := height - config.TabBarHeight - config.StatusBarHeight - config.PromptHeight
	if h < 1 {
		h = 1
	}
	return tui.Rect{X: 0, Y: config.TabBarHeight, Width: width, Height: h}
}

func (a *App) viewport(id tabs.ID) *tui.Viewport {
	vp, ok := a.viewports[id]
	if !ok {
		vp = &tui.Viewport{}
		a.viewports[id] = vp
	}
	return vp
}

// draw clears screen and redraws all components.
func (a *App) draw() {
	screen := a.tuiManager.Screen()
	width, height := a.tuiManager.Size()
	registry := a.controller.Registry()
	current := registry.Current()

	a.tuiManager.Clear()

	labels := make([]tui.TabLabel, 0, registry.Len())
	for _, t := range registry.Tabs() {
		labels = append(labels, tui.TabLabel{
			Title:  t.Title(),
			Active: t.ID == current.ID,
			Dirty:  t.Doc.IsDirty(),
		})
	}
	tui.DrawTabBar(screen, 0, width, labels, a.activeTheme)

	doc := current.Doc
	sel, hasSel := doc.Selection()
	tui.DrawDocument(screen, a.textArea(), tui.DocumentView{
		Content:      doc.Content(),
		Caret:        doc.Caret(),
		Selection:    sel,
		HasSelection: hasSel,
		Highlights:   a.modeHandler.Highlights(doc.Content()),
		TabWidth:     a.tabWidth,
	}, a.viewport(current.ID), a.activeTheme)

	promptY := height - config.PromptHeight
	a.statusBar.Draw(screen, promptY-config.StatusBarHeight, width, a.activeTheme)
	if p := a.modeHandler.ActivePrompt(); p != nil {
		tui.DrawPrompt(screen, promptY, width, p.Label, p.Text(), p.Cursor(), a.activeTheme)
	}

	a.tuiManager.Show()
}
