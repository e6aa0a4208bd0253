package slogx

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMergeHandlers(t *testing.T) {
	var (
		bufA, bufB, bufC strings.Builder
	)
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufB, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufC, &slog.HandlerOptions{}),
	))
	log.Info("A message", "test", "test")
	a, b, c := bufA.String(), bufB.String(), bufC.String()
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestMergeHandlers_Levels(t *testing.T) {
	var quiet, verbose strings.Builder
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
	log.Debug("Only verbose")
	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "Only verbose")
}

func TestMergeHandlers_WithAttrs(t *testing.T) {
	var bufA, bufB strings.Builder
	base := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, nil),
		slog.NewTextHandler(&bufB, nil),
	))
	base.With("cmd", "add").Info("Derived")
	base.Info("Base")
	assert.Contains(t, bufA.String(), "cmd=add")
	assert.Equal(t, 1, strings.Count(bufB.String(), "cmd=add"), "Deriving a logger should not change the base logger")
}

func TestNew(t *testing.T) {
	var term, extra strings.Builder
	log := New(&term, slog.LevelInfo, slog.NewTextHandler(&extra, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log.Debug("Debug message")
	log.Info("Info message")
	assert.NotContains(t, term.String(), "Debug message")
	assert.Contains(t, term.String(), "Info message")
	assert.Contains(t, extra.String(), "Debug message")
}

func TestFileHandler(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "wsm.log")
	handler, closer := FileHandler(file, slog.LevelDebug)
	log := New(&strings.Builder{}, slog.LevelError, handler)
	log.Debug("Written to file", "path", "/a/b")
	assert.NoError(t, closer.Close())

	data, err := os.ReadFile(file)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Written to file"`)
	assert.Contains(t, string(data), `"path":"/a/b"`)
}
