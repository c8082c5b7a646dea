package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndjimba/internal/core/port"
)

type fakePoster struct {
	mu     sync.Mutex
	tags   []string
	posts  []map[string]interface{}
	closed bool
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags = append(f.tags, tag)
	f.posts = append(f.posts, message.(port.Fields))
	return nil
}

func (f *fakePoster) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"service_name": "ndjimba"}).Error("boom", errors.New("bad"), port.Fields{"b": 2, "a": 1})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "bad", entry["error"])
	assert.Equal(t, "ndjimba", entry["service_name"])
	assert.EqualValues(t, 1, entry["a"])
}

func TestSlogAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Debug("hidden", nil)
	logger.Warn("shown", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestSlogAdapter_Color(t *testing.T) {
	var buf bytes.Buffer
	NewSlogAdapter(SlogConfig{Writer: &buf, UseColor: true}).Info("colored", port.Fields{"k": "v"})
	assert.Contains(t, buf.String(), "colored")
}

func TestFluentLoggerAdapter(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"component": "test"})
	logger.Debug("dropped", nil)
	logger.Info("hello", port.Fields{"n": 1})
	logger.Error("failed", errors.New("bad"), nil)

	require.Equal(t, []string{"info", "error"}, poster.tags)
	assert.Equal(t, "hello", poster.posts[0]["message"])
	assert.Equal(t, "test", poster.posts[0]["component"])
	assert.Equal(t, "bad", poster.posts[1]["error"])

	require.NoError(t, adapter.Close())
	assert.True(t, poster.closed)

	_, err = NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	var a, b bytes.Buffer
	multi, err := NewMultiloggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: &a}),
		NewSlogAdapter(SlogConfig{Writer: &b}),
	)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t-1"}).Info("fan out", nil)
	for _, out := range []string{a.String(), b.String()} {
		assert.True(t, strings.Contains(out, "fan out") && strings.Contains(out, "trace_id=t-1"), out)
	}

	_, err = NewMultiloggerAdapter()
	assert.Error(t, err)
}
