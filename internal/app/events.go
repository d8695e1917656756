package app

import (
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
)

func (a *App) subscribe() {
	for _, t := range []event.Type{
		event.TypeTabActivated,
		event.TypeDocumentChanged,
		event.TypeDocumentLoaded,
		event.TypeDocumentSaved,
	} {
		a.eventManager.Subscribe(t, a.handleFileInfoChange)
	}
	a.eventManager.Subscribe(event.TypeTabClosed, a.handleTabClosed)
	a.eventManager.Subscribe(event.TypeClockTick, a.handleClockTick)
}

// handleFileInfoChange keeps the status bar title and modified flag current.
func (a *App) handleFileInfoChange(e event.Event) bool {
	if a.controller == nil {
		return false // first tab is created before the controller exists
	}
	tab := a.controller.Registry().Current()
	a.statusBar.SetFileInfo(tab.BaseTitle(), tab.Doc.IsDirty())
	return false
}

// handleTabClosed drops the closed tab's scroll state.
func (a *App) handleTabClosed(e event.Event) bool {
	if data, ok := e.Data.(event.TabData); ok {
		delete(a.viewports, data.TabID)
		logger.DebugTagf("app", "tab %d closed", data.TabID)
	}
	return false
}

func (a *App) handleClockTick(e event.Event) bool {
	if data, ok := e.Data.(event.ClockTickData); ok {
		a.statusBar.SetClock(data.Time)
	}
	return false
}
