// Package session turns user commands into operations on the open tabs and
// reports the outcome through the UI notification sink. Errors stop here:
// every failure becomes a status message.
package session

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bethropolis/tidepad/internal/clipboard"
	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/document"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/fileio"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/textstats"
	"github.com/bethropolis/tidepad/internal/types"
)

var (
	// ErrInvalidSearchInput is returned for an empty search term.
	ErrInvalidSearchInput = errors.New("no search text provided")
	// ErrNoSelection is returned by cut and copy with nothing selected.
	ErrNoSelection = errors.New("no text selected")
)

// Prompter asks the user to decide about unsaved changes and file names.
type Prompter interface {
	tabs.Prompter
	// ConfirmExit is asked once when quitting with unsaved changes in any tab.
	ConfirmExit() tabs.Decision
	// AskSavePath asks for a file name; ok is false when the user cancelled.
	AskSavePath(suggested string) (path string, ok bool)
}

// Notifier receives status text, caret position and document statistics.
type Notifier interface {
	Status(msg string)
	Position(pos types.Position)
	Stats(stats textstats.Stats)
}

// UI is everything the controller needs from the presentation layer.
type UI interface {
	Prompter
	Notifier
}

// Options wires a Controller.
type Options struct {
	Registry         *tabs.Registry
	Files            fileio.TextIO
	Clipboard        clipboard.Clipboard
	UI               UI
	Events           *event.Manager
	DefaultExtension string
}

// Controller executes editor commands against the active tab.
type Controller struct {
	tabs      *tabs.Registry
	files     fileio.TextIO
	clipboard clipboard.Clipboard
	ui        UI
	events    *event.Manager
	ext       string
}

// New creates a controller. Files and Clipboard default to the OS
// filesystem and an internal register.
func New(opts Options) *Controller {
	if opts.Files == nil {
		opts.Files = fileio.OS{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewRegister()
	}
	if opts.Registry == nil {
		opts.Registry = tabs.NewRegistry(tabs.DefaultOptions(), opts.Events)
	}
	return &Controller{
		tabs:      opts.Registry,
		files:     opts.Files,
		clipboard: opts.Clipboard,
		ui:        opts.UI,
		events:    opts.Events,
		ext:       opts.DefaultExtension,
	}
}

// Registry returns the tab registry the controller drives.
func (c *Controller) Registry() *tabs.Registry { return c.tabs }

func (c *Controller) status(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.DebugTagf("session", "status: %s", msg)
	c.ui.Status(msg)
}

// Refresh pushes the active tab's caret position and statistics to the UI.
func (c *Controller) Refresh() {
	doc := c.tabs.CurrentDocument()
	c.ui.Position(textstats.PositionAt(doc.Content(), doc.Caret()))
	c.ui.Stats(textstats.Compute(doc.Content()))
}

// commit records an applied edit in the tab's history and announces it.
func (c *Controller) commit(tab *tabs.Tab, caretBefore int, edit types.Edit, change document.Change) {
	tab.History.RecordChange(history.NewChange(edit, caretBefore))
	c.events.Dispatch(event.TypeDocumentChanged, event.DocumentChangedData{
		TabID: tab.ID,
		Edit:  edit,
		Dirty: change.Dirty,
	})
	c.Refresh()
}

func (c *Controller) caretMoved(tab *tabs.Tab) {
	doc := tab.Doc
	pos := textstats.PositionAt(doc.Content(), doc.Caret())
	c.events.Dispatch(event.TypeCaretMoved, event.CaretMovedData{TabID: tab.ID, Offset: doc.Caret(), NewPosition: pos})
	c.ui.Position(pos)
}

// --- Tabs ---

// NewTab opens an empty untitled tab.
func (c *Controller) NewTab() tabs.ID {
	id := c.tabs.CreateTab("", "")
	c.Refresh()
	return id
}

// SwitchTab activates id.
func (c *Controller) SwitchTab(id tabs.ID) error {
	if err := c.tabs.Activate(id); err != nil {
		c.status("No such tab: %d", id)
		return err
	}
	c.Refresh()
	return nil
}

// NextTab activates the following tab.
func (c *Controller) NextTab() {
	c.tabs.Next()
	c.Refresh()
}

// PrevTab activates the preceding tab.
func (c *Controller) PrevTab() {
	c.tabs.Prev()
	c.Refresh()
}

// CloseTab closes id, prompting when it has unsaved changes. It reports
// whether the tab was closed.
func (c *Controller) CloseTab(id tabs.ID) (bool, error) {
	closed, err := c.tabs.CloseTab(id, c.ui, c)
	if err != nil {
		c.status("No such tab: %d", id)
		return false, err
	}
	c.Refresh()
	return closed, nil
}

// CloseActiveTab closes the active tab.
func (c *Controller) CloseActiveTab() (bool, error) {
	return c.CloseTab(c.tabs.Active())
}

// RequestExit asks about unsaved changes across all tabs and reports whether
// the application may quit.
func (c *Controller) RequestExit() bool {
	if !c.tabs.AnyUnsavedChanges() {
		return true
	}
	switch c.ui.ConfirmExit() {
	case tabs.Save:
		ok := c.tabs.SaveAllModified(c)
		c.Refresh()
		return ok
	case tabs.Discard:
		return true
	default:
		return false
	}
}

// --- Files ---

// OpenFile loads path. An already open file is activated; otherwise the
// file goes into the active tab when it is untitled, clean and empty, or
// into a new tab. On a read error nothing changes.
func (c *Controller) OpenFile(path string) error {
	return c.open(path, false)
}

// OpenOrCreate is OpenFile, except that a missing file opens an empty tab
// bound to path.
func (c *Controller) OpenOrCreate(path string) error {
	return c.open(path, true)
}

func (c *Controller) open(path string, create bool) error {
	if tab, ok := c.tabs.FindByFile(path); ok {
		_ = c.tabs.Activate(tab.ID)
		c.Refresh()
		return nil
	}

	text, err := c.files.ReadText(path)
	missing := create && errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		logger.Warnf("session: open %s: %v", path, err)
		c.status("Error loading file: %v", err)
		return err
	}

	tab := c.tabs.Current()
	if !tab.IsPristine() {
		id := c.tabs.CreateTab("", "")
		tab, _ = c.tabs.Get(id)
	}
	tab.Doc.SetContent(text)
	tab.Doc.BindFile(path)
	tab.History.Clear()
	c.events.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{TabID: tab.ID, FilePath: path})

	if missing {
		c.status("New file: %s", fileio.DisplayName(path))
	} else {
		c.status("File loaded successfully: %s", fileio.DisplayName(path))
	}
	c.Refresh()
	return nil
}

// Save writes the active tab, asking for a name when it is untitled.
func (c *Controller) Save() bool {
	return c.SaveTab(c.tabs.Current())
}

// SaveAs writes the active tab to path and binds it there. An empty path
// asks the user for one.
func (c *Controller) SaveAs(path string) bool {
	tab := c.tabs.Current()
	if path == "" {
		var ok bool
		if path, ok = c.ui.AskSavePath(tab.BaseTitle()); !ok {
			return false
		}
	}
	return c.saveTo(tab, path)
}

// SaveTab implements tabs.Saver.
func (c *Controller) SaveTab(tab *tabs.Tab) bool {
	if path := tab.Doc.File(); path != "" {
		return c.saveTo(tab, path)
	}
	path, ok := c.ui.AskSavePath(tab.BaseTitle())
	if !ok {
		return false
	}
	return c.saveTo(tab, path)
}

func (c *Controller) saveTo(tab *tabs.Tab, path string) bool {
	path = fileio.WithDefaultExtension(path, c.ext)
	if err := c.files.WriteText(path, tab.Doc.Content()); err != nil {
		logger.Warnf("session: save %s: %v", path, err)
		c.status("Error saving file: %v", err)
		return false
	}
	tab.Doc.BindFile(path)
	tab.Doc.MarkSaved()
	c.events.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{TabID: tab.ID, FilePath: path})
	c.status("File saved successfully: %s", fileio.DisplayName(path))
	return true
}

// --- Editing ---

type editFunc func(doc *document.Document) (types.Edit, document.Change, error)

func (c *Controller) edit(fn editFunc) error {
	tab := c.tabs.Current()
	before := tab.Doc.Caret()
	e, change, err := fn(tab.Doc)
	if errors.Is(err, document.ErrNoChange) {
		return nil
	}
	if err != nil {
		logger.Errorf("session: edit failed: %v", err)
		return err
	}
	c.commit(tab, before, e, change)
	return nil
}

// InsertText types text at the caret, replacing any selection.
func (c *Controller) InsertText(text string) error {
	return c.edit(func(d *document.Document) (types.Edit, document.Change, error) {
		return d.Insert(text)
	})
}

// DeleteBackward deletes the selection or the rune before the caret.
func (c *Controller) DeleteBackward() error {
	return c.edit((*document.Document).DeleteBackward)
}

// DeleteForward deletes the selection or the rune after the caret.
func (c *Controller) DeleteForward() error {
	return c.edit((*document.Document).DeleteForward)
}

// MoveCaret moves the caret by delta runes, extending the selection if asked.
func (c *Controller) MoveCaret(delta int, extend bool) {
	tab := c.tabs.Current()
	tab.Doc.MoveCaret(delta, extend)
	c.caretMoved(tab)
}

// MoveCaretLines moves the caret up or down by lines, keeping the column
// where the target line is long enough.
func (c *Controller) MoveCaretLines(delta int, extend bool) {
	tab := c.tabs.Current()
	content := tab.Doc.Content()
	pos := textstats.PositionAt(content, tab.Doc.Caret())
	pos.Line += delta
	if pos.Line < 0 {
		pos = types.Position{}
	}
	tab.Doc.MoveCaretTo(textstats.OffsetAt(content, pos), extend)
	c.caretMoved(tab)
}

// MoveCaretLineEdge moves the caret to the start or end of its line.
func (c *Controller) MoveCaretLineEdge(toEnd bool, extend bool) {
	tab := c.tabs.Current()
	content := tab.Doc.Content()
	pos := textstats.PositionAt(content, tab.Doc.Caret())
	pos.Col = 0
	if toEnd {
		pos.Col = len(content) // clamped to the line end
	}
	tab.Doc.MoveCaretTo(textstats.OffsetAt(content, pos), extend)
	c.caretMoved(tab)
}

// SetCaret places the caret at a byte offset and clears the selection.
func (c *Controller) SetCaret(offset int) {
	tab := c.tabs.Current()
	tab.Doc.SetCaret(offset)
	c.caretMoved(tab)
}

// Select selects [start, end).
func (c *Controller) Select(start, end int) {
	tab := c.tabs.Current()
	tab.Doc.Select(start, end)
	c.caretMoved(tab)
}

// Cut moves the selection to the clipboard.
func (c *Controller) Cut() error {
	doc := c.tabs.CurrentDocument()
	text := doc.SelectedText()
	if text == "" {
		c.status("No text selected to cut")
		return ErrNoSelection
	}
	if err := c.clipboard.Write(text); err != nil {
		c.status("Error copying to clipboard: %v", err)
		return err
	}
	if err := c.edit((*document.Document).DeleteBackward); err != nil {
		return err
	}
	c.status("Text cut to clipboard")
	return nil
}

// Copy puts the selection on the clipboard.
func (c *Controller) Copy() error {
	text := c.tabs.CurrentDocument().SelectedText()
	if text == "" {
		c.status("No text selected to copy")
		return ErrNoSelection
	}
	if err := c.clipboard.Write(text); err != nil {
		c.status("Error copying to clipboard: %v", err)
		return err
	}
	c.status("Text copied to clipboard")
	return nil
}

// Paste inserts the clipboard text, replacing any selection.
func (c *Controller) Paste() error {
	text, ok := c.clipboard.Read()
	if !ok {
		c.status("No text in clipboard to paste")
		return nil
	}
	if err := c.InsertText(text); err != nil {
		c.status("Error pasting from clipboard: %v", err)
		return err
	}
	c.status("Text pasted from clipboard")
	return nil
}

// SelectAll selects the whole document.
func (c *Controller) SelectAll() {
	tab := c.tabs.Current()
	tab.Doc.SelectAll()
	c.caretMoved(tab)
	c.status("All text selected")
}

// Undo reverts the last edit in the active tab.
func (c *Controller) Undo() bool {
	ok, err := c.tabs.CurrentUndoEngine().Undo()
	switch {
	case err != nil:
		c.status("Undo failed: %v", err)
	case !ok:
		c.status("Nothing to undo")
	default:
		c.status("Undid last action")
	}
	c.Refresh()
	return ok
}

// Redo reapplies the last undone edit in the active tab.
func (c *Controller) Redo() bool {
	ok, err := c.tabs.CurrentUndoEngine().Redo()
	switch {
	case err != nil:
		c.status("Redo failed: %v", err)
	case !ok:
		c.status("Nothing to redo")
	default:
		c.status("Redid last action")
	}
	c.Refresh()
	return ok
}
