package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"ctrl+s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"ctrl+z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"ctrl+f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), ActionEvent{Action: ActionFind}},
		{"ctrl+pgdn", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModCtrl), ActionEvent{Action: ActionNextTab}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionEvent{Action: ActionMoveLeft}},
		{"shift+left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionMoveLeft, Extend: true}},
		{"alt+right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), ActionEvent{Action: ActionNextTab}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertTab}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionCancel}},
		{"alt+3", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModAlt), ActionEvent{Action: ActionGotoTab, Rune: '3', Index: 3}},
		{"alt+s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModAlt), ActionEvent{Action: ActionSaveAs, Rune: 's'}},
		{"alt+unbound", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"f3", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), ActionEvent{Action: ActionFindNext}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "ReplaceAll", ActionReplaceAll.String())
	assert.Equal(t, "Unknown", Action(-1).String())
}
