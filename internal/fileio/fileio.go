// Package fileio reads and writes whole documents as UTF-8 text.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/logger"
)

// ErrNotUTF8 is wrapped by IOError when a file does not hold valid UTF-8 text.
var ErrNotUTF8 = errors.New("file is not valid UTF-8 text")

// TextIO is the file collaborator used by the session.
type TextIO interface {
	ReadText(path string) (string, error)
	WriteText(path, content string) error
}

// IOError describes a failed read or write.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// OS implements TextIO on the local filesystem. Writes truncate or create
// the file with mode 0644.
type OS struct{}

func (OS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: "read", Path: path, Err: ErrNotUTF8}
	}
	logger.DebugTagf("fileio", "read %d bytes from %s", len(data), path)
	return string(data), nil
}

func (OS) WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	logger.DebugTagf("fileio", "wrote %d bytes to %s", len(content), path)
	return nil
}

// DisplayName returns the base name shown for path in titles and messages.
func DisplayName(path string) string {
	return filepath.Base(path)
}

// WithDefaultExtension appends ext when the final path element has none.
func WithDefaultExtension(path, ext string) string {
	if ext == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ext
}
