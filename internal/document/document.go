// Package document holds the in-memory state of one open text document.
package document

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tidepad/internal/types"
	"github.com/bethropolis/tidepad/internal/utils"
)

var (
	// ErrInvalidEdit is returned when an edit does not match the current content.
	ErrInvalidEdit = errors.New("edit does not apply to document content")
	// ErrNoChange is returned for edits that would leave the content as it is.
	ErrNoChange = errors.New("no change")
)

// ChangeKind classifies a Change.
type ChangeKind int

const (
	ChangeContent   ChangeKind = iota // content was spliced
	ChangeLoaded                      // content replaced wholesale, dirty cleared
	ChangeSaved                       // dirty cleared after a write
	ChangeCaret                       // caret or selection moved
	ChangeBinding                     // bound file changed
)

// Change describes the effect of a document operation. Callers forward it to
// the event bus; the document itself never calls out.
type Change struct {
	Kind  ChangeKind
	Edit  types.Edit // set for ChangeContent
	Dirty bool       // dirty flag after the operation
	Caret int
}

// Document is a single in-memory text document with its file binding, dirty
// flag, caret and selection. Offsets are byte offsets into the UTF-8 content.
type Document struct {
	content string
	file    string
	dirty   bool
	caret   int
	anchor  int // selection anchor, -1 when nothing is selected
}

// New creates an empty, clean document bound to file (empty for untitled).
func New(file string) *Document {
	return &Document{file: file, anchor: -1}
}

// Content returns the full text.
func (d *Document) Content() string { return d.content }

// Len returns the content length in bytes.
func (d *Document) Len() int { return len(d.content) }

// File returns the bound file path, or "" when untitled.
func (d *Document) File() string { return d.file }

// IsDirty reports unsaved mutations since the last load or save.
func (d *Document) IsDirty() bool { return d.dirty }

// Caret returns the caret offset.
func (d *Document) Caret() int { return d.caret }

func (d *Document) change(kind ChangeKind) Change {
	return Change{Kind: kind, Dirty: d.dirty, Caret: d.caret}
}

// SetContent replaces the content wholesale and clears the dirty flag.
// This is the load path; interactive edits go through Splice.
func (d *Document) SetContent(text string) Change {
	d.content = text
	d.caret = 0
	d.anchor = -1
	d.dirty = false
	return d.change(ChangeLoaded)
}

// Splice applies edit to the content. The text at edit.Offset must equal
// edit.Removed; otherwise the document is left untouched and ErrInvalidEdit
// is returned. An edit whose inserted text equals the removed text returns
// ErrNoChange and keeps the dirty flag. The caret moves to the end of the
// inserted text.
func (d *Document) Splice(edit types.Edit) (Change, error) {
	end := edit.Offset + len(edit.Removed)
	if edit.Offset < 0 || end > len(d.content) {
		return Change{}, fmt.Errorf("%w: range [%d,%d) outside [0,%d]", ErrInvalidEdit, edit.Offset, end, len(d.content))
	}
	if d.content[edit.Offset:end] != edit.Removed {
		return Change{}, fmt.Errorf("%w: text at %d differs", ErrInvalidEdit, edit.Offset)
	}
	if edit.IsNoop() {
		return Change{}, ErrNoChange
	}
	d.content = d.content[:edit.Offset] + edit.Inserted + d.content[end:]
	d.dirty = true
	d.caret = edit.End()
	d.anchor = -1
	c := d.change(ChangeContent)
	c.Edit = edit
	return c, nil
}

// apply builds an edit replacing span with text and splices it.
func (d *Document) apply(span types.Span, text string) (types.Edit, Change, error) {
	span = span.Normalize()
	if span.IsEmpty() && text == "" {
		return types.Edit{}, Change{}, ErrNoChange
	}
	edit := types.Edit{Offset: span.Start, Removed: span.Text(d.content), Inserted: text}
	c, err := d.Splice(edit)
	if err != nil {
		return types.Edit{}, Change{}, err
	}
	return edit, c, nil
}

// Insert types text at the caret, replacing the selection if there is one.
func (d *Document) Insert(text string) (types.Edit, Change, error) {
	return d.ReplaceSelection(text)
}

// ReplaceSelection replaces the selected text (or inserts at the caret).
func (d *Document) ReplaceSelection(text string) (types.Edit, Change, error) {
	span, ok := d.Selection()
	if !ok {
		span = types.Span{Start: d.caret, End: d.caret}
	}
	return d.apply(span, text)
}

// DeleteBackward removes the selection, or the rune before the caret.
func (d *Document) DeleteBackward() (types.Edit, Change, error) {
	if span, ok := d.Selection(); ok {
		return d.apply(span, "")
	}
	start := utils.AdvanceRunes(d.content, d.caret, -1)
	return d.apply(types.Span{Start: start, End: d.caret}, "")
}

// DeleteForward removes the selection, or the rune after the caret.
func (d *Document) DeleteForward() (types.Edit, Change, error) {
	if span, ok := d.Selection(); ok {
		return d.apply(span, "")
	}
	end := utils.AdvanceRunes(d.content, d.caret, 1)
	return d.apply(types.Span{Start: d.caret, End: end}, "")
}

// ReplaceRange replaces an arbitrary span, used by find/replace.
func (d *Document) ReplaceRange(span types.Span, text string) (types.Edit, Change, error) {
	span = span.Normalize()
	if span.Start < 0 || span.End > len(d.content) {
		return types.Edit{}, Change{}, fmt.Errorf("%w: range [%d,%d) outside [0,%d]", ErrInvalidEdit, span.Start, span.End, len(d.content))
	}
	return d.apply(span, text)
}

// BindFile associates the document with path without touching content or dirty state.
func (d *Document) BindFile(path string) Change {
	d.file = path
	return d.change(ChangeBinding)
}

// UnbindFile makes the document untitled again.
func (d *Document) UnbindFile() Change {
	d.file = ""
	return d.change(ChangeBinding)
}

// MarkSaved clears the dirty flag. Call only after a confirmed write.
func (d *Document) MarkSaved() Change {
	d.dirty = false
	return d.change(ChangeSaved)
}

// SetCaret moves the caret, clearing any selection.
func (d *Document) SetCaret(offset int) {
	d.caret = utils.ClampOffset(d.content, offset)
	d.anchor = -1
}

// MoveCaret moves the caret by delta runes. With extend the selection is
// grown from the current anchor (or the caret when none exists).
func (d *Document) MoveCaret(delta int, extend bool) Change {
	return d.MoveCaretTo(utils.AdvanceRunes(d.content, d.caret, delta), extend)
}

// MoveCaretTo moves the caret to offset, extending the selection like MoveCaret.
func (d *Document) MoveCaretTo(offset int, extend bool) Change {
	if extend && d.anchor < 0 {
		d.anchor = d.caret
	}
	if !extend {
		d.anchor = -1
	}
	d.caret = utils.ClampOffset(d.content, offset)
	if d.anchor == d.caret {
		d.anchor = -1
	}
	return d.change(ChangeCaret)
}

// Select selects [start, end); the caret lands on end.
func (d *Document) Select(start, end int) Change {
	start = utils.ClampOffset(d.content, start)
	end = utils.ClampOffset(d.content, end)
	d.caret = end
	d.anchor = start
	if start == end {
		d.anchor = -1
	}
	return d.change(ChangeCaret)
}

// SelectAll selects the whole content.
func (d *Document) SelectAll() Change {
	return d.Select(0, len(d.content))
}

// ClearSelection drops the selection, keeping the caret.
func (d *Document) ClearSelection() {
	d.anchor = -1
}

// Selection returns the normalized selected span, if any.
func (d *Document) Selection() (types.Span, bool) {
	if d.anchor < 0 || d.anchor == d.caret {
		return types.Span{}, false
	}
	return types.Span{Start: d.anchor, End: d.caret}.Normalize(), true
}

// SelectedText returns the selected text or "".
func (d *Document) SelectedText() string {
	span, ok := d.Selection()
	if !ok {
		return ""
	}
	return span.Text(d.content)
}
