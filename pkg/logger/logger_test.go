package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/pkg/logger"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Level: "info", Format: "json"})
	log.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "value", entry["key"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Level: "warn", Format: "text"})

	log.Info("dropped")
	require.Empty(t, buf.String())

	log.Warn("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(&buf, logger.Config{Level: "chatty", Format: "text"})

	log.Debug("dropped")
	require.Empty(t, buf.String())

	log.Info("kept")
	require.Contains(t, buf.String(), "kept")
}
