package app

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/tidepad/internal/clipboard"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/fileio"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFiles map[string]string

func (m memFiles) ReadText(path string) (string, error) {
	text, ok := m[path]
	if !ok {
		return "", &fileio.IOError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return text, nil
}

func (m memFiles) WriteText(path, content string) error {
	m[path] = content
	return nil
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen, memFiles) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	files := memFiles{}
	a, err := New(Options{
		Config:    config.NewDefaultConfig(),
		Theme:     theme.DevComfortDark(),
		Clipboard: clipboard.NewRegister(),
		Files:     files,
		Screen:    screen,
	})
	require.NoError(t, err)
	screen.SetSize(100, 10)
	return a, screen, files
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func typeKeys(a *App, text string) {
	for _, r := range text {
		a.handleTermEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

// queue feeds events to the next nested prompt.
func queue(a *App, evs ...tcell.Event) {
	for _, ev := range evs {
		a.termEvents <- ev
	}
}

func TestDrawLayout(t *testing.T) {
	a, s, _ := newTestApp(t)
	defer a.tuiManager.Close()

	typeKeys(a, "hello")
	a.draw()

	assert.Equal(t, " Untitled-1* |", row(s, 0))
	assert.Equal(t, "hello", row(s, 1))
	assert.True(t, strings.HasPrefix(row(s, 8), "Untitled-1 [Modified] -- Ln 1, Col 6"), row(s, 8))
	assert.Equal(t, "", row(s, 9))
}

func TestSaveAsksForName(t *testing.T) {
	a, s, files := newTestApp(t)
	defer a.tuiManager.Close()

	typeKeys(a, "data")
	queue(a, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	a.handleTermEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))

	assert.Equal(t, "data", files["Untitled-1.txt"])
	tab := a.controller.Registry().Current()
	assert.False(t, tab.Doc.IsDirty())
	assert.Equal(t, "Untitled-1.txt", tab.Title())

	a.draw()
	assert.True(t, strings.HasPrefix(row(s, 8), "File saved successfully: Untitled-1.txt"), row(s, 8))
}

func TestCloseDirtyTabPrompts(t *testing.T) {
	a, _, files := newTestApp(t)
	defer a.tuiManager.Close()
	reg := a.controller.Registry()

	typeKeys(a, "draft")
	queue(a, tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	a.handleTermEvent(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	assert.Equal(t, "draft", reg.CurrentDocument().Content(), "cancel keeps the tab")

	queue(a, tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	a.handleTermEvent(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, "", reg.CurrentDocument().Content())
	assert.Empty(t, files)
}

func TestViewportsFollowTabs(t *testing.T) {
	a, _, _ := newTestApp(t)
	defer a.tuiManager.Close()

	a.handleTermEvent(tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl))
	a.draw()
	assert.Len(t, a.viewports, 1)
	id := a.controller.Registry().Active()
	require.Contains(t, a.viewports, id)

	a.handleTermEvent(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl))
	assert.NotContains(t, a.viewports, id)
}

func TestRunQuits(t *testing.T) {
	a, s, _ := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Ctrl+Q")
	}
}
