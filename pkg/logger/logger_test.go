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
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewWithWriter_TagsService(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "caferesto", "INFO")

	log.Debug("hidden")
	log.Info("created order", "order_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created order", entry["msg"])
	assert.Equal(t, "caferesto", entry["service"])
	assert.Equal(t, float64(7), entry["order_id"])
	assert.Contains(t, entry, "hostname")
}
