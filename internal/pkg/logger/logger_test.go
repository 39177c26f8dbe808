package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroute/internal/pkg/logger"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []logger.LogEntry {
	t.Helper()
	var entries []logger.LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e logger.LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("debug", &buf)

	log.Info("Produto colocado.", map[string]interface{}{"warehouse_id": 2})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "Produto colocado.", entries[0].Message)
	assert.EqualValues(t, 2, entries[0].Fields["warehouse_id"])
}

func TestLogger_FiltersBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("warn", &buf)

	log.Debug("ignorado", nil)
	log.Info("ignorado", nil)
	log.Warn("aviso", nil)
	log.Error("falha", errors.New("boom"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "boom", entries[1].Error)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithWriter("verbose", &buf)

	log.Debug("ignorado", nil)
	log.Info("visível", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "visível", entries[0].Message)
}
