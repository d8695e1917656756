// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/session"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrompt           // keys edit the prompt line
)

// ModeHandler turns key events into controller commands and owns the
// prompt line and the search settings.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	controller     *session.Controller
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{} // Channel to signal app termination
	pageSize       func() int

	// Internal State
	currentMode InputMode
	prompt      *Prompt
	search      searchState
	quitting    bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Controller     *session.Controller
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
	PageSize       func() int      // text rows moved by PageUp/PageDown
	CaseSensitive  bool            // initial match-case setting
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Controller == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.PageSize == nil {
		cfg.PageSize = func() int { return 1 }
	}
	return &ModeHandler{
		controller:     cfg.Controller,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		pageSize:       cfg.PageSize,
		currentMode:    ModeNormal,
		search:         searchState{caseSensitive: cfg.CaseSensitive},
	}
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("modehandler", "key %v -> %s", ev.Name(), actionEvent.Action)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModePrompt:
		return mh.handleActionPrompt(actionEvent)
	default:
		logger.Warnf("Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// handleActionNormal runs an editor command.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	c := mh.controller
	var err error

	switch ae.Action {
	case input.ActionQuit:
		if c.RequestExit() {
			mh.signalQuit()
		}
	case input.ActionCancel:
		c.Registry().CurrentDocument().ClearSelection()
		mh.search.highlight = false

	// --- Files and tabs ---
	case input.ActionNewTab:
		c.NewTab()
	case input.ActionOpenFile:
		mh.BeginPrompt("Open: ", "", func(path string, ok bool) {
			if ok && path != "" {
				mh.logErr("open", c.OpenFile(path))
			}
		})
	case input.ActionSave:
		c.Save()
	case input.ActionSaveAs:
		suggested := c.Registry().CurrentDocument().File()
		mh.BeginPrompt("Save as: ", suggested, func(path string, ok bool) {
			if ok && path != "" {
				c.SaveAs(path)
			}
		})
	case input.ActionCloseTab:
		_, err = c.CloseActiveTab()
	case input.ActionNextTab:
		c.NextTab()
	case input.ActionPrevTab:
		c.PrevTab()
	case input.ActionGotoTab:
		open := c.Registry().Tabs()
		if ae.Index < 1 || ae.Index > len(open) {
			return false
		}
		err = c.SwitchTab(open[ae.Index-1].ID)

	// --- Movement ---
	case input.ActionMoveLeft:
		c.MoveCaret(-1, ae.Extend)
	case input.ActionMoveRight:
		c.MoveCaret(1, ae.Extend)
	case input.ActionMoveUp:
		c.MoveCaretLines(-1, ae.Extend)
	case input.ActionMoveDown:
		c.MoveCaretLines(1, ae.Extend)
	case input.ActionMovePageUp:
		c.MoveCaretLines(-mh.pageSize(), ae.Extend)
	case input.ActionMovePageDown:
		c.MoveCaretLines(mh.pageSize(), ae.Extend)
	case input.ActionMoveHome:
		c.MoveCaretLineEdge(false, ae.Extend)
	case input.ActionMoveEnd:
		c.MoveCaretLineEdge(true, ae.Extend)

	// --- Text Modification ---
	case input.ActionInsertRune:
		err = c.InsertText(string(ae.Rune))
	case input.ActionInsertNewLine:
		err = c.InsertText("\n")
	case input.ActionInsertTab:
		err = c.InsertText("\t")
	case input.ActionDeleteCharBackward:
		err = c.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = c.DeleteForward()

	// --- Edit menu ---
	case input.ActionCut:
		err = c.Cut()
	case input.ActionCopy:
		err = c.Copy()
	case input.ActionPaste:
		err = c.Paste()
	case input.ActionSelectAll:
		c.SelectAll()
	case input.ActionUndo:
		c.Undo()
	case input.ActionRedo:
		c.Redo()

	// --- Search ---
	case input.ActionFind:
		mh.startFind()
	case input.ActionFindNext:
		mh.findNext()
	case input.ActionReplace:
		mh.startReplace(false)
	case input.ActionReplaceAll:
		mh.startReplace(true)
	case input.ActionToggleCase:
		mh.toggleCase()

	default:
		return false
	}
	mh.logErr(ae.Action.String(), err)
	return true
}

func (mh *ModeHandler) signalQuit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// logErr records command errors. The controller has already reported them
// on the status bar.
func (mh *ModeHandler) logErr(what string, err error) {
	if err != nil {
		logger.DebugTagf("modehandler", "%s: %v", what, err)
	}
}
