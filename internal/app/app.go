// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/tidepad/internal/clipboard"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/fileio"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/modehandler"
	"github.com/bethropolis/tidepad/internal/session"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Options carries the collaborators built by main.
type Options struct {
	Config    *config.Config
	Theme     *theme.Theme
	Clipboard clipboard.Clipboard // nil selects per Config.Editor.SystemClipboard
	Files     fileio.TextIO       // nil uses the OS filesystem
	Screen    tcell.Screen        // nil opens the terminal
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager   *tui.TUI
	controller   *session.Controller
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	activeTheme  *theme.Theme
	tabWidth     int
	clockEvery   time.Duration

	viewports map[tabs.ID]*tui.Viewport

	// Channels managed by the App
	quit       chan struct{}
	termEvents chan tcell.Event
}

// New creates and initializes a new application instance.
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	activeTheme := opts.Theme
	if activeTheme == nil {
		activeTheme = theme.DevComfortDark()
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme)
	} else {
		tuiManager, err = tui.New(activeTheme)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New(cfg.Editor.SystemClipboard)
	}

	clockEvery := cfg.Editor.ClockInterval
	if clockEvery <= 0 {
		clockEvery = config.DefaultClockInterval
	}

	sbConfig := statusbar.DefaultConfig()
	sbConfig.MessageTimeout = config.MessageTimeout

	a := &App{
		tuiManager:   tuiManager,
		statusBar:    statusbar.New(sbConfig),
		eventManager: event.NewManager(),
		activeTheme:  activeTheme,
		tabWidth:     cfg.Editor.TabWidth,
		clockEvery:   clockEvery,
		viewports:    make(map[tabs.ID]*tui.Viewport),
		quit:         make(chan struct{}),
		termEvents:   make(chan tcell.Event, 16),
	}

	// Subscribe before the registry creates its first tab.
	a.subscribe()

	registry := tabs.NewRegistry(tabs.Options{
		MaxHistory:     cfg.Editor.MaxHistory,
		DirtyMarker:    cfg.Editor.DirtyMarker,
		UntitledPrefix: cfg.Editor.UntitledPrefix,
	}, a.eventManager)

	a.controller = session.New(session.Options{
		Registry:         registry,
		Files:            opts.Files,
		Clipboard:        clip,
		UI:               a,
		Events:           a.eventManager,
		DefaultExtension: cfg.Editor.DefaultExtension,
	})

	a.modeHandler = modehandler.New(modehandler.Config{
		Controller:     a.controller,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      a.statusBar,
		QuitSignal:     a.quit,
		PageSize:       func() int { return a.textArea().Height },
		CaseSensitive:  cfg.Editor.CaseSensitive,
	})
	a.handleFileInfoChange(event.Event{Type: event.TypeTabActivated})

	return a, nil
}

// Controller exposes the session controller, e.g. to open files at startup.
func (a *App) Controller() *session.Controller {
	return a.controller
}

// Open opens each path in its own tab; missing files become new files.
func (a *App) Open(paths []string) {
	for _, p := range paths {
		if err := a.controller.OpenOrCreate(p); err != nil {
			logger.Warnf("App: could not open '%s': %v", p, err)
		}
	}
}

// Run starts the application's main loop. It returns after the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollEvents()

	clock := time.NewTicker(a.clockEvery)
	defer clock.Stop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("tidepad - Ctrl+S Save | Ctrl+F Find | Ctrl+Q Quit")
	a.controller.Refresh()
	a.draw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev, ok := <-a.termEvents:
			if !ok {
				logger.Warnf("App: terminal event source closed")
				return nil
			}
			if a.handleTermEvent(ev) {
				a.draw()
			}
		case t := <-clock.C:
			a.eventManager.Dispatch(event.TypeClockTick, event.ClockTickData{Time: t})
			a.draw()
		}
	}
}

// pollEvents feeds terminal events to the main loop until the screen is closed.
func (a *App) pollEvents() {
	defer close(a.termEvents)
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		a.termEvents <- ev
	}
}

// handleTermEvent delegates key events to the ModeHandler and reports
// whether a redraw is needed.
func (a *App) handleTermEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}
