// internal/event/event.go
package event

import (
	"time"

	"github.com/bethropolis/tidepad/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Document events
	TypeDocumentChanged // Content mutated (edit, undo, redo, replace)
	TypeDocumentLoaded  // Content replaced from a file
	TypeDocumentSaved   // Content written to a file
	TypeCaretMoved      // Caret or selection changed without a content change

	// Tab events
	TypeTabCreated
	TypeTabClosed
	TypeTabActivated

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
	TypeClockTick
)

var typeNames = map[Type]string{
	TypeUnknown:         "Unknown",
	TypeDocumentChanged: "DocumentChanged",
	TypeDocumentLoaded:  "DocumentLoaded",
	TypeDocumentSaved:   "DocumentSaved",
	TypeCaretMoved:      "CaretMoved",
	TypeTabCreated:      "TabCreated",
	TypeTabClosed:       "TabClosed",
	TypeTabActivated:    "TabActivated",
	TypeAppReady:        "AppReady",
	TypeAppQuit:         "AppQuit",
	TypeClockTick:       "ClockTick",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DocumentChangedData describes a content mutation of a tab's document.
type DocumentChangedData struct {
	TabID int
	Edit  types.Edit
	Dirty bool
}

// DocumentLoadedData contains info about the loaded document.
type DocumentLoadedData struct {
	TabID    int
	FilePath string
}

// DocumentSavedData contains info about the saved document.
type DocumentSavedData struct {
	TabID    int
	FilePath string
}

// CaretMovedData contains the new caret position.
type CaretMovedData struct {
	TabID       int
	Offset      int
	NewPosition types.Position
}

// TabData identifies the tab an event refers to.
type TabData struct {
	TabID int
	Title string
}

// TabActivatedData carries the previous and new active tab.
type TabActivatedData struct {
	PreviousID int
	TabID      int
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

// ClockTickData carries the wall-clock time of a status bar clock tick.
type ClockTickData struct {
	Time time.Time
}
