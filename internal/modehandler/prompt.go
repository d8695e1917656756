package modehandler

import (
	"strings"
	"unicode"

	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
)

// PromptFunc receives the prompt's answer. ok is false when it was cancelled.
type PromptFunc func(text string, ok bool)

// Prompt is an open question on the prompt line.
type Prompt struct {
	Label   string
	Choices string // single-key answers; empty for free text
	editor  *LineEditor
	done    PromptFunc
}

// Text returns the answer typed so far.
func (p *Prompt) Text() string { return p.editor.Text() }

// Cursor returns the rune index of the prompt cursor.
func (p *Prompt) Cursor() int { return p.editor.Cursor() }

// BeginPrompt opens a free-text prompt prefilled with initial.
func (mh *ModeHandler) BeginPrompt(label, initial string, done PromptFunc) {
	mh.openPrompt(&Prompt{Label: label, editor: NewLineEditor(initial), done: done})
}

// BeginChoice opens a prompt answered by a single key from choices.
func (mh *ModeHandler) BeginChoice(label, choices string, done PromptFunc) {
	mh.openPrompt(&Prompt{Label: label, Choices: strings.ToLower(choices), editor: NewLineEditor(""), done: done})
}

func (mh *ModeHandler) openPrompt(p *Prompt) {
	if mh.prompt != nil {
		logger.WarnTagf("modehandler", "prompt %q replaced by %q", mh.prompt.Label, p.Label)
	}
	mh.prompt = p
	mh.currentMode = ModePrompt
	logger.DebugTagf("modehandler", "prompt opened: %q", p.Label)
}

// ActivePrompt returns the open prompt, or nil in normal mode.
func (mh *ModeHandler) ActivePrompt() *Prompt {
	return mh.prompt
}

// finishPrompt closes the open prompt before running its callback, so the
// callback may open another one.
func (mh *ModeHandler) finishPrompt(text string, ok bool) {
	p := mh.prompt
	mh.prompt = nil
	mh.currentMode = ModeNormal
	if p.done != nil {
		p.done(text, ok)
	}
}

// handleActionPrompt edits the prompt line.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	p := mh.prompt
	switch actionEvent.Action {
	case input.ActionInsertRune:
		if p.Choices == "" {
			p.editor.Insert(actionEvent.Rune)
			return true
		}
		r := unicode.ToLower(actionEvent.Rune)
		if strings.ContainsRune(p.Choices, r) {
			mh.finishPrompt(string(r), true)
		}
	case input.ActionDeleteCharBackward:
		p.editor.Backspace()
	case input.ActionDeleteCharForward:
		p.editor.Delete()
	case input.ActionMoveLeft:
		p.editor.Move(-1)
	case input.ActionMoveRight:
		p.editor.Move(1)
	case input.ActionMoveHome:
		p.editor.Home()
	case input.ActionMoveEnd:
		p.editor.End()
	case input.ActionInsertNewLine:
		if p.Choices == "" {
			mh.finishPrompt(p.editor.Text(), true)
		}
	case input.ActionCancel, input.ActionQuit:
		mh.finishPrompt("", false)
	default:
		return false
	}
	return true
}

// CancelPrompt dismisses the open prompt as if Esc had been pressed.
func (mh *ModeHandler) CancelPrompt() {
	if mh.prompt != nil {
		mh.finishPrompt("", false)
	}
}
