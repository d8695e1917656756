package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	var io OS

	require.NoError(t, io.WriteText(path, "first version, longer"))
	require.NoError(t, io.WriteText(path, "short ü"))

	text, err := io.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "short ü", text)
}

func TestOSReadMissingFile(t *testing.T) {
	_, err := OS{}.ReadText(filepath.Join(t.TempDir(), "missing.txt"))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOSReadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.dat")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a'}, 0644))

	_, err := OS{}.ReadText(path)
	assert.ErrorIs(t, err, ErrNotUTF8)
}

func TestOSWriteIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "note.txt")
	err := OS{}.WriteText(path, "x")

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
}

func TestWithDefaultExtension(t *testing.T) {
	assert.Equal(t, "notes.txt", WithDefaultExtension("notes", ".txt"))
	assert.Equal(t, "notes.md", WithDefaultExtension("notes.md", ".txt"))
	assert.Equal(t, "dir.d/notes.txt", WithDefaultExtension("dir.d/notes", ".txt"))
	assert.Equal(t, "notes", WithDefaultExtension("notes", ""))
}
