// cmd/tidepad/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/tidepad/internal/app"
	"github.com/bethropolis/tidepad/internal/clipboard"
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/theme"
)

var version = "dev"

// editor is the part of *app.App that main drives.
type editor interface {
	Open(paths []string)
	Run() error
}

// Replaced in tests.
var (
	openLog   = logger.OpenOutput
	newEditor = func(opts app.Options) (editor, error) { return app.New(opts) }
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run starts the editor and returns the process exit code. The log output
// is closed on every return path.
func run(args []string, stdout, stderr io.Writer) int {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName)
	files, err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if *flags.Version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, version)
		return 0
	}

	// --- Configuration ---
	res, cfgErr := config.Load(*flags.ConfigFilePath, flags)
	cfg := res.Config

	// --- Logger Initialization ---
	logOut, err := openLog(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("Failed to open log output: %v", err)
		return 1
	}
	defer logOut.Close()
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s...", config.AppName, version)
	if cfgErr != nil {
		logger.Warnf("Using defaults: %v", cfgErr)
	}
	for _, w := range res.Warnings {
		logger.Warnf("%s", w)
	}
	cfg.LogSummary()

	// --- Create and Run App ---
	ed, err := newEditor(app.Options{
		Config:    cfg,
		Theme:     theme.Load(cfg.Editor.ThemeFile),
		Clipboard: clipboard.New(cfg.Editor.SystemClipboard),
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	ed.Open(files)

	if err := ed.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}
	logger.Infof("%s finished.", config.AppName)
	return 0
}
