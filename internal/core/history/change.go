// Package history provides undo/redo functionality via a change history stack.
package history

import "github.com/bethropolis/tidepad/internal/types"

// Change represents a single, reversible text operation.
type Change struct {
	Edit        types.Edit
	CaretBefore int // caret offset before this change was applied
}

// NewChange records edit together with the caret position it was made from.
func NewChange(edit types.Edit, caretBefore int) Change {
	return Change{Edit: edit, CaretBefore: caretBefore}
}
