// Package clipboard provides the clipboard collaborator used by cut, copy
// and paste: the system clipboard when available, an in-process register
// otherwise.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/tidepad/internal/logger"
)

// Clipboard stores and returns plain text.
type Clipboard interface {
	// Read returns the clipboard text; ok is false when it is empty or unreadable.
	Read() (text string, ok bool)
	Write(text string) error
}

// Register is an in-process clipboard.
type Register struct {
	mu   sync.Mutex
	text string
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

func (r *Register) Read() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text, r.text != ""
}

func (r *Register) Write(text string) error {
	r.mu.Lock()
	r.text = text
	r.mu.Unlock()
	logger.DebugTagf("clipboard", "register holds %d bytes", len(text))
	return nil
}

// System is the OS clipboard. Writes are mirrored into a register so a
// failed system read still returns the last text written by this process.
type System struct {
	fallback *Register
}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{fallback: NewRegister()}
}

func (s *System) Read() (string, bool) {
	text, err := sysclip.ReadAll()
	if err != nil {
		logger.WarnTagf("clipboard", "system read failed, using register: %v", err)
		return s.fallback.Read()
	}
	return text, text != ""
}

func (s *System) Write(text string) error {
	_ = s.fallback.Write(text)
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// New picks the system clipboard when requested and supported on this
// platform, and the internal register otherwise.
func New(system bool) Clipboard {
	if system && !sysclip.Unsupported {
		logger.Debugf("clipboard: using system clipboard")
		return NewSystem()
	}
	if system {
		logger.Infof("clipboard: system clipboard unsupported, using internal register")
	}
	return NewRegister()
}
