package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}

	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewHandler_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	h, err := newHandler(&stdout, &stderr, &Config{Encoding: "json", Level: "warn"})
	require.NoError(t, err)

	log := slog.New(h).With("app", "natal_bot")
	log.Info("hidden")
	log.Warn("place not resolved", "chat_id", int64(42))

	assert.Empty(t, stderr.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &entry))
	assert.Equal(t, "place not resolved", entry["msg"])
	assert.Equal(t, "natal_bot", entry["app"])
	assert.EqualValues(t, 42, entry["chat_id"])
}

func TestNewHandler_Console(t *testing.T) {
	var stdout, stderr bytes.Buffer
	h, err := newHandler(&stdout, &stderr, &Config{AddSource: true})
	require.NoError(t, err)

	slog.New(h).Info("starting telegram polling", "timeout", 30)

	out := stderr.String()
	assert.Empty(t, stdout.String())
	assert.Contains(t, out, `msg="starting telegram polling"`)
	assert.Contains(t, out, "timeout=30")
	assert.Contains(t, out, "source=logger_test.go:")
}

func TestNewHandler_UnknownEncoding(t *testing.T) {
	_, err := newHandler(nil, nil, &Config{Encoding: "xml"})
	assert.Error(t, err)

	assert.Panics(t, func() { New("natal_bot", &Config{Level: "loud"}) })
}
