package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func emit(l *slog.Logger, msg, tag string) {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

func newTestLogger(cfg Config) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	return New(cfg, &buf, level), &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestDisabledTagIsDropped(t *testing.T) {
	l, buf := newTestLogger(Config{DisabledTags: []string{"Search"}})
	emit(l, "hidden", "search")
	emit(l, "shown", "tabs")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestEnabledTagsRequireTag(t *testing.T) {
	l, buf := newTestLogger(Config{EnabledTags: []string{"tabs"}})
	emit(l, "untagged", "")
	emit(l, "tagged", "tabs")
	assert.NotContains(t, buf.String(), "untagged")
	assert.Contains(t, buf.String(), "tagged")
}

func TestDisabledPackage(t *testing.T) {
	l, buf := newTestLogger(Config{DisabledPackages: []string{"logger"}})
	emit(l, "from logger package", "")
	assert.Empty(t, buf.String())
}

func TestDisabledFile(t *testing.T) {
	l, buf := newTestLogger(Config{DisabledFiles: []string{"other.go"}})
	emit(l, "kept", "")
	assert.Contains(t, buf.String(), "kept")
}
