package config

import "time"

// Base application details
const AppName = "tidepad"
const DefaultConfigFileName = "config.toml"

// UI Layout
const StatusBarHeight = 1
const TabBarHeight = 1
const PromptHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second
const DefaultClockInterval = 60 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultMaxHistory = 100
const DefaultDirtyMarker = "*"
const DefaultUntitledPrefix = "Untitled"
const DefaultExtension = ".txt"
const SystemClipboard = true
