// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For Alt+rune bindings
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt)

// movement actions honour Shift as "extend selection".
var movement = map[Action]bool{
	ActionMoveUp:       true,
	ActionMoveDown:     true,
	ActionMoveLeft:     true,
	ActionMoveRight:    true,
	ActionMovePageUp:   true,
	ActionMovePageDown: true,
	ActionMoveHome:     true,
	ActionMoveEnd:      true,
}

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	altRunes  RuneKeymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		altRunes:  make(RuneKeymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyF3] = ActionFindNext

	// --- Ctrl bindings, following the usual desktop editor layout ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlQ] = ActionQuit
	ctrlMap[tcell.KeyCtrlN] = ActionNewTab
	ctrlMap[tcell.KeyCtrlO] = ActionOpenFile
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlW] = ActionCloseTab
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlA] = ActionSelectAll
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlF] = ActionFind
	ctrlMap[tcell.KeyCtrlG] = ActionFindNext
	ctrlMap[tcell.KeyCtrlR] = ActionReplace
	ctrlMap[tcell.KeyPgDn] = ActionNextTab
	ctrlMap[tcell.KeyPgUp] = ActionPrevTab
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	altMap := make(Keymap)
	altMap[tcell.KeyRight] = ActionNextTab
	altMap[tcell.KeyLeft] = ActionPrevTab
	p.modKeymap[tcell.ModAlt] = altMap

	p.altRunes['s'] = ActionSaveAs
	p.altRunes['r'] = ActionReplaceAll
	p.altRunes['c'] = ActionToggleCase
	for r := '1'; r <= '9'; r++ {
		p.altRunes[r] = ActionGotoTab
	}
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Alt+rune bindings
	if key == tcell.KeyRune && mod&tcell.ModAlt != 0 {
		if action, ok := p.altRunes[runeVal]; ok {
			ae := ActionEvent{Action: action, Rune: runeVal}
			if action == ActionGotoTab {
				ae.Index = int(runeVal - '0')
			}
			return ae
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// 2. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod&^tcell.ModShift]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Plain keys; Shift only matters for movement
	if mod&(tcell.ModCtrl|tcell.ModAlt) == 0 || (key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ) {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Extend: movement[action] && mod&tcell.ModShift != 0}
		}
	}

	// 4. Plain runes are inserted
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
