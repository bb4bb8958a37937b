package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewLoggerWritesTaggedJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn", "residencias-optimizer", "1.2.3")
	logger.Info("filtered out")
	logger.Warn("image skipped", "source", "gallery1/1.jpg")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	record := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))

	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "image skipped", record["msg"])
	assert.Equal(t, "residencias-optimizer", record["app"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.Equal(t, "gallery1/1.jpg", record["source"])
}
