package tabs

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/document"
)

// ID identifies a tab for the lifetime of a registry. IDs are never reused.
type ID = int

// Tab is one open document with its undo history.
type Tab struct {
	ID      ID
	Doc     *document.Document
	History *history.Manager

	title string // explicit title, empty for the default
	opts  *Options
}

// Title returns the display title: the bound file's base name, the explicit
// title, or Untitled-<ID>, followed by the dirty marker while dirty.
func (t *Tab) Title() string {
	title := t.BaseTitle()
	if t.Doc.IsDirty() {
		title += t.opts.DirtyMarker
	}
	return title
}

// BaseTitle is Title without the dirty marker.
func (t *Tab) BaseTitle() string {
	if f := t.Doc.File(); f != "" {
		return filepath.Base(f)
	}
	if t.title != "" {
		return t.title
	}
	return fmt.Sprintf("%s-%d", t.opts.UntitledPrefix, t.ID)
}

// IsUntitled reports whether the tab has no bound file.
func (t *Tab) IsUntitled() bool {
	return t.Doc.File() == ""
}

// IsPristine reports whether the tab is untitled, clean and empty, so a
// file can be loaded into it instead of opening a new tab.
func (t *Tab) IsPristine() bool {
	return t.IsUntitled() && !t.Doc.IsDirty() && t.Doc.Len() == 0
}
