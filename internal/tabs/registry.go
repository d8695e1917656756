// Package tabs keeps the set of open tabs and the active one.
//
// A Registry is owned by the application's main loop and is not safe for
// concurrent use. Prompter and Saver callbacks may call back into it.
package tabs

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/document"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
)

var (
	// ErrNoActiveTab means the registry is empty. This breaks the registry
	// invariant and is raised as a panic.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrUnknownTab is returned for IDs not in the registry.
	ErrUnknownTab = errors.New("unknown tab")
)

// Decision is the user's answer when closing a dirty tab or exiting.
type Decision int

const (
	Save Decision = iota
	Discard
	Cancel
)

func (d Decision) String() string {
	switch d {
	case Save:
		return "save"
	case Discard:
		return "discard"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Prompter asks what to do with unsaved changes.
type Prompter interface {
	ConfirmClose(tab *Tab) Decision
}

// Saver writes a tab to its file. It reports whether the tab was saved.
type Saver interface {
	SaveTab(tab *Tab) bool
}

// Options configures new tabs.
type Options struct {
	MaxHistory     int
	DirtyMarker    string
	UntitledPrefix string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxHistory:     history.DefaultMaxHistory,
		DirtyMarker:    "*",
		UntitledPrefix: "Untitled",
	}
}

// Registry is the arena of open tabs. It is never empty.
type Registry struct {
	opts   Options
	events *event.Manager
	tabs   map[ID]*Tab
	order  []ID
	active ID
	nextID ID
}

// NewRegistry creates a registry holding one untitled tab.
func NewRegistry(opts Options, events *event.Manager) *Registry {
	def := DefaultOptions()
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = def.MaxHistory
	}
	if opts.UntitledPrefix == "" {
		opts.UntitledPrefix = def.UntitledPrefix
	}
	r := &Registry{
		opts:   opts,
		events: events,
		tabs:   make(map[ID]*Tab),
		nextID: 1,
	}
	r.CreateTab("", "")
	return r
}

// CreateTab opens a new tab, makes it active and returns its ID. An empty
// title falls back to the file's base name or Untitled-<ID>.
func (r *Registry) CreateTab(title, file string) ID {
	id := r.nextID
	r.nextID++

	doc := document.New(file)
	hist := history.NewManager(doc, r.opts.MaxHistory)
	hist.SetEventManager(r.events, id)

	tab := &Tab{ID: id, Doc: doc, History: hist, title: title, opts: &r.opts}
	r.tabs[id] = tab
	r.order = append(r.order, id)
	logger.DebugTagf("tabs", "created tab %d (%s)", id, tab.BaseTitle())

	r.events.Dispatch(event.TypeTabCreated, event.TabData{TabID: id, Title: tab.Title()})
	r.switchTo(id)
	return id
}

// CloseTab closes id, asking prompter first when the tab is dirty. A dirty
// tab in the background is activated while the prompt is shown. It returns
// false when the user cancelled or the save failed; the previously active tab
// is restored and nothing else changes in that case. Unknown decisions count
// as Cancel.
func (r *Registry) CloseTab(id ID, prompter Prompter, saver Saver) (bool, error) {
	tab, ok := r.tabs[id]
	if !ok {
		return false, fmt.Errorf("close tab %d: %w", id, ErrUnknownTab)
	}

	prev := r.active
	if tab.Doc.IsDirty() {
		if prev != id {
			r.switchTo(id)
		}
		keep := false
		switch d := prompter.ConfirmClose(tab); d {
		case Save:
			if !saver.SaveTab(tab) {
				logger.DebugTagf("tabs", "close of tab %d aborted: save failed", id)
				keep = true
			}
		case Discard:
		case Cancel:
			logger.DebugTagf("tabs", "close of tab %d cancelled", id)
			keep = true
		default:
			logger.Warnf("tabs: close of tab %d: unknown decision %v, cancelling", id, d)
			keep = true
		}
		if keep {
			r.restore(prev, id)
			return false, nil
		}
	}

	delete(r.tabs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	logger.DebugTagf("tabs", "closed tab %d", id)
	r.events.Dispatch(event.TypeTabClosed, event.TabData{TabID: id, Title: tab.BaseTitle()})

	if len(r.order) == 0 {
		r.CreateTab("", "")
		return true, nil
	}
	if r.active == id {
		if _, ok := r.tabs[prev]; ok && prev != id {
			r.switchTo(prev)
		} else {
			r.switchTo(r.order[0])
		}
	}
	return true, nil
}

// restore reactivates prev after a prompt for id was shown, if prev is still
// open.
func (r *Registry) restore(prev, id ID) {
	if prev == id || r.active == prev {
		return
	}
	if _, ok := r.tabs[prev]; ok {
		r.switchTo(prev)
	}
}

// Activate makes id the active tab. Activating the active tab is a no-op.
func (r *Registry) Activate(id ID) error {
	if _, ok := r.tabs[id]; !ok {
		return fmt.Errorf("activate tab %d: %w", id, ErrUnknownTab)
	}
	if id == r.active {
		return nil
	}
	r.switchTo(id)
	return nil
}

func (r *Registry) switchTo(id ID) {
	prev := r.active
	r.active = id
	r.events.Dispatch(event.TypeTabActivated, event.TabActivatedData{PreviousID: prev, TabID: id})
}

// Next activates the tab after the active one, wrapping around.
func (r *Registry) Next() ID {
	return r.cycle(1)
}

// Prev activates the tab before the active one, wrapping around.
func (r *Registry) Prev() ID {
	return r.cycle(-1)
}

func (r *Registry) cycle(step int) ID {
	n := len(r.order)
	i := r.indexOf(r.active)
	id := r.order[((i+step)%n+n)%n]
	_ = r.Activate(id)
	return id
}

func (r *Registry) indexOf(id ID) int {
	for i, oid := range r.order {
		if oid == id {
			return i
		}
	}
	return -1
}

// Current returns the active tab. It panics with ErrNoActiveTab if the
// registry is empty.
func (r *Registry) Current() *Tab {
	tab, ok := r.tabs[r.active]
	if !ok {
		panic(ErrNoActiveTab)
	}
	return tab
}

// CurrentDocument returns the active tab's document.
func (r *Registry) CurrentDocument() *document.Document {
	return r.Current().Doc
}

// CurrentUndoEngine returns the active tab's history.
func (r *Registry) CurrentUndoEngine() *history.Manager {
	return r.Current().History
}

// Active returns the active tab's ID.
func (r *Registry) Active() ID { return r.active }

// Get looks up a tab by ID.
func (r *Registry) Get(id ID) (*Tab, bool) {
	tab, ok := r.tabs[id]
	return tab, ok
}

// Tabs returns the open tabs in display order.
func (r *Registry) Tabs() []*Tab {
	out := make([]*Tab, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tabs[id])
	}
	return out
}

// Len returns the number of open tabs.
func (r *Registry) Len() int { return len(r.order) }

// FindByFile returns the tab bound to path, if any.
func (r *Registry) FindByFile(path string) (*Tab, bool) {
	want := filepath.Clean(path)
	for _, id := range r.order {
		tab := r.tabs[id]
		if f := tab.Doc.File(); f != "" && filepath.Clean(f) == want {
			return tab, true
		}
	}
	return nil, false
}

// AnyUnsavedChanges reports whether any tab is dirty.
func (r *Registry) AnyUnsavedChanges() bool {
	for _, tab := range r.tabs {
		if tab.Doc.IsDirty() {
			return true
		}
	}
	return false
}

// SaveAllModified activates and saves every dirty tab in display order. It
// keeps going after a failure and reports whether every save succeeded.
func (r *Registry) SaveAllModified(saver Saver) bool {
	all := true
	for _, tab := range r.Tabs() {
		if !tab.Doc.IsDirty() {
			continue
		}
		_ = r.Activate(tab.ID)
		if !saver.SaveTab(tab) {
			logger.Warnf("tabs: saving %s failed", tab.BaseTitle())
			all = false
		}
	}
	return all
}
