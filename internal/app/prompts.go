package app

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/textstats"
	"github.com/bethropolis/tidepad/internal/types"
)

// The App is the controller's UI: notifications go to the status bar and
// questions are asked on the prompt line.

// Status shows msg on the status bar.
func (a *App) Status(msg string) { a.statusBar.Status(msg) }

// Position updates the caret position on the status bar.
func (a *App) Position(pos types.Position) { a.statusBar.Position(pos) }

// Stats updates the document statistics on the status bar.
func (a *App) Stats(stats textstats.Stats) { a.statusBar.Stats(stats) }

// ConfirmClose asks whether to save tab before closing it.
func (a *App) ConfirmClose(tab *tabs.Tab) tabs.Decision {
	return a.choose(fmt.Sprintf("Save changes to %s? (y)es (n)o (c)ancel ", tab.BaseTitle()))
}

// ConfirmExit asks what to do with unsaved tabs before quitting.
func (a *App) ConfirmExit() tabs.Decision {
	return a.choose("You have unsaved changes. Save before exiting? (y)es (n)o (c)ancel ")
}

// AskSavePath asks for a file name to save under.
func (a *App) AskSavePath(suggested string) (string, bool) {
	path, ok := a.ask("Save as: ", suggested)
	if path == "" {
		return "", false
	}
	return path, ok
}

func (a *App) choose(label string) tabs.Decision {
	answer, ok := a.runPrompt(func(done func(string, bool)) {
		a.modeHandler.BeginChoice(label, "ync", done)
	})
	if !ok {
		return tabs.Cancel
	}
	switch answer {
	case "y":
		return tabs.Save
	case "n":
		return tabs.Discard
	default:
		return tabs.Cancel
	}
}

func (a *App) ask(label, initial string) (string, bool) {
	return a.runPrompt(func(done func(string, bool)) {
		a.modeHandler.BeginPrompt(label, initial, done)
	})
}

// runPrompt opens a prompt and runs a nested event loop on the main goroutine
// until it is answered.
func (a *App) runPrompt(open func(done func(string, bool))) (string, bool) {
	var (
		answer   string
		accepted bool
		finished bool
	)
	open(func(text string, ok bool) {
		answer, accepted, finished = text, ok, true
	})
	for !finished {
		a.draw()
		ev, ok := <-a.termEvents
		if !ok {
			logger.Warnf("App: terminal closed during prompt")
			a.modeHandler.CancelPrompt()
			break
		}
		a.handleTermEvent(ev)
	}
	return answer, accepted
}
