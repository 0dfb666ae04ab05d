package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "n", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown n=3")
	assert.Contains(t, buf.String(), "timestamp=")
	require.NoError(t, l.Close())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Debug("solved", "value", 220)
	assert.Contains(t, buf.String(), `"msg":"solved"`)
	assert.Contains(t, buf.String(), `"value":220`)
	assert.Contains(t, buf.String(), `"timestamp":`)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvknap.log")
	var stream bytes.Buffer
	l, err := New(Config{File: path, Format: "json", MaxSize: 1}, &stream)
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to file")
	assert.Zero(t, stream.Len())
}

func TestNew_BadConfig(t *testing.T) {
	_, err := New(Config{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
	_, err = New(Config{Level: "trace"}, &bytes.Buffer{})
	require.Error(t, err)
}
