package modehandler

import (
	"testing"

	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/session"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUI struct {
	*statusbar.StatusBar
	exitDecision tabs.Decision
}

func (u *testUI) ConfirmClose(*tabs.Tab) tabs.Decision { return tabs.Discard }
func (u *testUI) ConfirmExit() tabs.Decision           { return u.exitDecision }
func (u *testUI) AskSavePath(string) (string, bool)    { return "", false }

type fixture struct {
	mh   *ModeHandler
	c    *session.Controller
	ui   *testUI
	quit chan struct{}
}

func newFixture() *fixture {
	events := event.NewManager()
	ui := &testUI{StatusBar: statusbar.New(statusbar.DefaultConfig()), exitDecision: tabs.Cancel}
	c := session.New(session.Options{
		Registry: tabs.NewRegistry(tabs.DefaultOptions(), events),
		UI:       ui,
		Events:   events,
	})
	quit := make(chan struct{})
	mh := New(Config{
		Controller:     c,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      ui.StatusBar,
		QuitSignal:     quit,
		PageSize:       func() int { return 2 },
	})
	return &fixture{mh: mh, c: c, ui: ui, quit: quit}
}

func (f *fixture) typeText(text string) {
	for _, r := range text {
		f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (f *fixture) key(k tcell.Key, mod tcell.ModMask) bool {
	return f.mh.HandleKeyEvent(tcell.NewEventKey(k, 0, mod))
}

func (f *fixture) alt(r rune) bool {
	return f.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt))
}

func (f *fixture) content() string {
	return f.c.Registry().CurrentDocument().Content()
}

func TestTypingAndUndo(t *testing.T) {
	f := newFixture()
	f.typeText("hi")
	f.key(tcell.KeyEnter, tcell.ModNone)
	f.typeText("yo")
	assert.Equal(t, "hi\nyo", f.content())

	f.key(tcell.KeyCtrlZ, tcell.ModCtrl)
	assert.Equal(t, "hi\ny", f.content())
	f.key(tcell.KeyCtrlY, tcell.ModCtrl)
	assert.Equal(t, "hi\nyo", f.content())
}

func TestMovementWithShiftSelects(t *testing.T) {
	f := newFixture()
	f.typeText("abc\ndef\nghi")
	f.key(tcell.KeyHome, tcell.ModNone)
	f.key(tcell.KeyUp, tcell.ModShift)

	sel, ok := f.c.Registry().CurrentDocument().Selection()
	require.True(t, ok)
	assert.Equal(t, types.Span{Start: 4, End: 8}, sel)

	f.key(tcell.KeyPgUp, tcell.ModNone)
	assert.Equal(t, 0, f.c.Registry().CurrentDocument().Caret())
	_, ok = f.c.Registry().CurrentDocument().Selection()
	assert.False(t, ok)
}

func TestFindPrompt(t *testing.T) {
	f := newFixture()
	f.typeText("foo bar foo")
	f.c.SetCaret(0)

	f.key(tcell.KeyCtrlF, tcell.ModCtrl)
	require.Equal(t, ModePrompt, f.mh.GetCurrentMode())
	assert.Equal(t, "Find: ", f.mh.ActivePrompt().Label)

	f.typeText("foo")
	assert.Equal(t, "foo bar foo", f.content(), "prompt keys must not edit the document")
	f.key(tcell.KeyEnter, tcell.ModNone)

	assert.Equal(t, ModeNormal, f.mh.GetCurrentMode())
	sel, ok := f.c.Registry().CurrentDocument().Selection()
	require.True(t, ok)
	assert.Equal(t, types.Span{Start: 0, End: 3}, sel)
	assert.Equal(t, "Found: foo", f.ui.Message())
	assert.Equal(t, []types.Span{{Start: 0, End: 3}, {Start: 8, End: 11}}, f.mh.Highlights(f.content()))

	f.key(tcell.KeyF3, tcell.ModNone)
	sel, _ = f.c.Registry().CurrentDocument().Selection()
	assert.Equal(t, types.Span{Start: 8, End: 11}, sel)

	f.key(tcell.KeyEscape, tcell.ModNone)
	assert.Nil(t, f.mh.Highlights(f.content()))
}

func TestPromptCancel(t *testing.T) {
	f := newFixture()
	f.typeText("text")
	f.key(tcell.KeyCtrlR, tcell.ModCtrl)
	f.typeText("t")
	f.key(tcell.KeyEscape, tcell.ModNone)

	assert.Equal(t, ModeNormal, f.mh.GetCurrentMode())
	assert.Equal(t, "text", f.content())
	assert.Equal(t, "", f.mh.SearchTerm())
}

func TestReplaceAllChainsPrompts(t *testing.T) {
	f := newFixture()
	f.typeText("aXaXa")

	f.alt('r')
	f.typeText("a")
	f.key(tcell.KeyEnter, tcell.ModNone)
	require.NotNil(t, f.mh.ActivePrompt())
	assert.Equal(t, "With: ", f.mh.ActivePrompt().Label)
	f.typeText("bb")
	f.key(tcell.KeyEnter, tcell.ModNone)

	assert.Equal(t, "bbXbbXbb", f.content())
	assert.Equal(t, "Replaced 3 occurrences", f.ui.Message())

	f.key(tcell.KeyCtrlZ, tcell.ModCtrl)
	assert.Equal(t, "aXaXa", f.content())
}

func TestToggleCase(t *testing.T) {
	f := newFixture()
	f.typeText("Foo foo")
	f.alt('c')
	assert.True(t, f.mh.CaseSensitive())
	assert.Equal(t, "Match case: on", f.ui.Message())

	f.c.SetCaret(0)
	f.key(tcell.KeyCtrlF, tcell.ModCtrl)
	assert.Equal(t, "Find (Aa): ", f.mh.ActivePrompt().Label)
	f.typeText("foo")
	f.key(tcell.KeyEnter, tcell.ModNone)
	sel, _ := f.c.Registry().CurrentDocument().Selection()
	assert.Equal(t, types.Span{Start: 4, End: 7}, sel)
}

func TestTabActions(t *testing.T) {
	f := newFixture()
	reg := f.c.Registry()
	first := reg.Active()
	f.key(tcell.KeyCtrlN, tcell.ModCtrl)
	assert.Equal(t, 2, reg.Len())

	f.alt('1')
	assert.Equal(t, first, reg.Active())
	assert.False(t, f.alt('9'), "missing tab position is ignored")

	f.key(tcell.KeyCtrlW, tcell.ModCtrl)
	assert.Equal(t, 1, reg.Len())
}

func TestQuit(t *testing.T) {
	f := newFixture()
	f.typeText("unsaved")

	f.key(tcell.KeyCtrlQ, tcell.ModCtrl)
	select {
	case <-f.quit:
		t.Fatal("quit with unsaved changes after cancel")
	default:
	}

	f.ui.exitDecision = tabs.Discard
	f.key(tcell.KeyCtrlQ, tcell.ModCtrl)
	f.key(tcell.KeyCtrlQ, tcell.ModCtrl) // second close must not panic
	select {
	case <-f.quit:
	default:
		t.Fatal("quit signal not sent")
	}
}

func TestChoicePrompt(t *testing.T) {
	f := newFixture()
	var got string
	var gotOK bool
	f.mh.BeginChoice("Save changes? (y/n/c) ", "ync", func(text string, ok bool) {
		got, gotOK = text, ok
	})
	f.typeText("x")
	assert.Equal(t, ModePrompt, f.mh.GetCurrentMode(), "keys outside the choices are ignored")
	f.typeText("N")
	assert.Equal(t, ModeNormal, f.mh.GetCurrentMode())
	assert.True(t, gotOK)
	assert.Equal(t, "n", got)
}

func TestLineEditor(t *testing.T) {
	e := NewLineEditor("héllo")
	assert.Equal(t, 5, e.Cursor())
	e.Home()
	e.Move(1)
	assert.True(t, e.Delete())
	e.Insert('e')
	assert.Equal(t, "hello", e.Text())
	e.End()
	assert.True(t, e.Backspace())
	assert.False(t, e.Delete())
	e.Move(-10)
	assert.False(t, e.Backspace())
	assert.Equal(t, "hell", e.Text())
}
