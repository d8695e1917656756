// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionCancel // Esc: clear selection, dismiss prompt

	// --- Files ---
	ActionNewTab
	ActionOpenFile
	ActionSave
	ActionSaveAs

	// --- Tabs ---
	ActionCloseTab
	ActionNextTab
	ActionPrevTab
	ActionGotoTab // Index holds the 1-based tab position

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- Edit menu ---
	ActionCut
	ActionCopy
	ActionPaste
	ActionSelectAll
	ActionUndo
	ActionRedo

	// --- Search ---
	ActionFind
	ActionFindNext
	ActionReplace
	ActionReplaceAll
	ActionToggleCase
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionCancel:             "Cancel",
	ActionNewTab:             "NewTab",
	ActionOpenFile:           "OpenFile",
	ActionSave:               "Save",
	ActionSaveAs:             "SaveAs",
	ActionCloseTab:           "CloseTab",
	ActionNextTab:            "NextTab",
	ActionPrevTab:            "PrevTab",
	ActionGotoTab:            "GotoTab",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionCut:                "Cut",
	ActionCopy:               "Copy",
	ActionPaste:              "Paste",
	ActionSelectAll:          "SelectAll",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionFind:               "Find",
	ActionFindNext:           "FindNext",
	ActionReplace:            "Replace",
	ActionReplaceAll:         "ReplaceAll",
	ActionToggleCase:         "ToggleCase",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	Extend bool // Shift held: movement extends the selection
	Index  int  // Used for ActionGotoTab
}
