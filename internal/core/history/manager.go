package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/tidepad/internal/document"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

const DefaultMaxHistory = 100

// Target is the document the history manager replays edits against.
type Target interface {
	Splice(edit types.Edit) (document.Change, error)
	SetCaret(offset int)
}

// Manager handles the undo/redo stack for one document.
type Manager struct {
	target       Target
	events       *event.Manager
	tabID        int
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager(target Target, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		target:     target,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// SetEventManager makes Undo and Redo dispatch TypeDocumentChanged for tabID.
func (m *Manager) SetEventManager(events *event.Manager, tabID int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.events = events
	m.tabID = tabID
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if change.Edit.IsNoop() {
		return
	}

	// If current index isn't at the end, truncate the redo history
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	m.changes = append(m.changes, change)

	// Limit history size, oldest first
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}

	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "Recorded edit at %d. Index: %d, Count: %d", change.Edit.Offset, m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	m.mutex.Lock()
	if m.currentIndex <= 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to undo.")
		return false, nil
	}

	changeToUndo := m.changes[m.currentIndex-1]
	dc, err := m.target.Splice(changeToUndo.Edit.Inverse())
	if err != nil {
		m.mutex.Unlock()
		logger.Errorf("History: Error undoing change %d: %v", m.currentIndex-1, err)
		return false, fmt.Errorf("undo failed: %w", err)
	}
	m.currentIndex--
	m.target.SetCaret(changeToUndo.CaretBefore)
	events, tabID := m.events, m.tabID
	m.mutex.Unlock()

	logger.DebugTagf("history", "Undid change %d", m.currentIndex)
	events.Dispatch(event.TypeDocumentChanged, event.DocumentChangedData{TabID: tabID, Edit: dc.Edit, Dirty: dc.Dirty})
	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	m.mutex.Lock()
	if m.currentIndex >= len(m.changes) {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Nothing to redo. currentIndex=%d, len(changes)=%d", m.currentIndex, len(m.changes))
		return false, nil
	}

	changeToRedo := m.changes[m.currentIndex]
	dc, err := m.target.Splice(changeToRedo.Edit)
	if err != nil {
		m.mutex.Unlock()
		logger.Errorf("History: Error redoing change %d: %v", m.currentIndex, err)
		return false, fmt.Errorf("redo failed: %w", err)
	}
	m.currentIndex++
	events, tabID := m.events, m.tabID
	m.mutex.Unlock()

	logger.DebugTagf("history", "Redo completed. New currentIndex=%d", m.currentIndex)
	events.Dispatch(event.TypeDocumentChanged, event.DocumentChangedData{TabID: tabID, Edit: dc.Edit, Dirty: dc.Dirty})
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
	logger.DebugTagf("history", "Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}

// Len returns the number of recorded changes, undone ones included.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.changes)
}
