// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidepad/internal/textstats"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	ClockFormat    string
	Now            func() time.Time // clock source, time.Now when nil
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
		ClockFormat:    "15:04",
	}
}

// StatusBar is the status line. It is also the notification sink that
// receives status messages, caret positions and document statistics.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	title      string
	isModified bool
	cursorPos  types.Position
	stats      textstats.Stats
	clock      time.Time

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.ClockFormat == "" {
		config.ClockFormat = DefaultConfig().ClockFormat
	}
	return &StatusBar{config: config, clock: config.Now()}
}

// SetFileInfo updates the tab title shown in the status bar.
func (sb *StatusBar) SetFileInfo(title string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.title = title
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetClock updates the displayed time.
func (sb *StatusBar) SetClock(t time.Time) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.clock = t
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.config.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Status shows msg as a temporary message.
func (sb *StatusBar) Status(msg string) {
	sb.SetTemporaryMessage("%s", msg)
}

// Position records the caret's line and column.
func (sb *StatusBar) Position(pos types.Position) {
	sb.SetCursorInfo(pos)
}

// Stats records the document statistics.
func (sb *StatusBar) Stats(stats textstats.Stats) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.stats = stats
}

// Message returns the active temporary message, or "" once it has expired.
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.activeMessageLocked()
}

func (sb *StatusBar) activeMessageLocked() string {
	if sb.tempMessageTime.IsZero() {
		return ""
	}
	if sb.config.Now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return ""
	}
	return sb.tempMessage
}

// leftText is the title and caret position, or the active message.
func (sb *StatusBar) leftText() (string, bool) {
	if msg := sb.activeMessageLocked(); msg != "" {
		return msg, true
	}
	title := sb.title
	if title == "" {
		title = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Ln %d, Col %d", title, modifiedIndicator, sb.cursorPos.Line+1, sb.cursorPos.Col+1), false
}

func (sb *StatusBar) rightText() string {
	return fmt.Sprintf("%s | %s ", sb.stats, sb.clock.Format(sb.config.ClockFormat))
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int, th *theme.Theme) {
	if width <= 0 {
		return
	}
	sb.mu.Lock()
	left, isMessage := sb.leftText()
	right := sb.rightText()
	modified := sb.isModified
	sb.mu.Unlock()

	style := th.GetStyle(theme.StyleStatusBar)
	leftStyle := style
	switch {
	case isMessage:
		leftStyle = th.GetStyle(theme.StyleStatusBarMessage)
	case modified:
		leftStyle = th.GetStyle(theme.StyleStatusBarModified)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	rightWidth := uniseg.StringWidth(right)
	rightX := width - rightWidth
	leftMax := width
	if rightX > 0 {
		leftMax = rightX - 1
	}
	drawString(screen, 0, y, leftMax, left, leftStyle)
	if rightX > uniseg.StringWidth(left) {
		drawString(screen, rightX, y, width, right, style)
	}
}

// drawString draws text from x up to (not including) maxX, by grapheme cluster.
func drawString(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += clusterWidth
	}
	return x
}
