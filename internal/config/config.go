// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"` // [editor] table
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth         int           `toml:"tab_width"`
	SystemClipboard  bool          `toml:"system_clipboard"`
	MaxHistory       int           `toml:"max_history"`
	DirtyMarker      string        `toml:"dirty_marker"`
	UntitledPrefix   string        `toml:"untitled_prefix"`
	DefaultExtension string        `toml:"default_extension"`
	CaseSensitive    bool          `toml:"case_sensitive"` // initial state of the find prompt toggle
	ClockInterval    time.Duration `toml:"clock_interval"`
	ThemeFile        string        `toml:"theme_file"` // empty selects the built-in theme
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:         DefaultTabWidth,
			SystemClipboard:  SystemClipboard,
			MaxHistory:       DefaultMaxHistory,
			DirtyMarker:      DefaultDirtyMarker,
			UntitledPrefix:   DefaultUntitledPrefix,
			DefaultExtension: DefaultExtension,
			ClockInterval:    DefaultClockInterval,
		},
	}
}

// DefaultPath returns ~/.config/tidepad/config.toml, or "" when the user
// config directory cannot be resolved.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// Unrecognized keys are returned so the caller can report them once logging is up.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Editor.UntitledPrefix == "" {
		c.Editor.UntitledPrefix = defaults.Editor.UntitledPrefix
	}
	if ext := c.Editor.DefaultExtension; ext != "" && !strings.HasPrefix(ext, ".") {
		c.Editor.DefaultExtension = "." + ext
	}
	if c.Editor.ClockInterval < time.Second {
		c.Editor.ClockInterval = defaults.Editor.ClockInterval
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result is the outcome of Load. Warnings are collected because the
// logger is not initialized while configuration loads.
type Result struct {
	Config   *Config
	Path     string
	Warnings []string
}

// Load resolves the configuration: defaults, then the TOML file, then flag
// overrides, then validation. configFilePath "" selects DefaultPath. A
// broken config file is reported as an error alongside the defaults.
func Load(configFilePath string, flags *Flags) (Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Config: cfg, Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	var loadErr error
	if res.Path != "" {
		fileCfg := NewDefaultConfig()
		undecoded, err := loadFromFile(res.Path, fileCfg)
		if err != nil {
			loadErr = err
		} else {
			*cfg = *fileCfg
			for _, key := range undecoded {
				res.Warnings = append(res.Warnings, fmt.Sprintf("config file '%s': unrecognized key %q", res.Path, key))
			}
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return res, loadErr
}

// LogSummary writes the effective settings to the log.
func (c *Config) LogSummary() {
	logger.DebugTagf("config", "editor: tab_width=%d max_history=%d system_clipboard=%v clock=%s theme=%q",
		c.Editor.TabWidth, c.Editor.MaxHistory, c.Editor.SystemClipboard, c.Editor.ClockInterval, c.Editor.ThemeFile)
}
