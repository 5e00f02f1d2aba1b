// =============================
// File: internal/logger/logger_test.go
// =============================
package logger

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{Logger: zap.New(core)}, logs
}

func TestWithComponent(t *testing.T) {
	l, logs := observedLogger()

	l.WithComponent("solbc").Info("probe")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "solbc", entries[0].ContextMap()["component"])
}

func TestWithOperation_TagsEntries(t *testing.T) {
	l, logs := observedLogger()

	l.WithOperation("quote").Info("first run")
	l.WithOperation("quote").Info("second run")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "quote", first["operation"])
	assert.Contains(t, first, "start_time")

	id1, err := uuid.Parse(first["correlation_id"].(string))
	require.NoError(t, err)
	id2, err := uuid.Parse(entries[1].ContextMap()["correlation_id"].(string))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2, "each operation carries its own correlation id")
}

func TestNewWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = t.TempDir() + "/launchkit.log"

	l, err := New(cfg)
	require.NoError(t, err)

	l.Info("startup")
	_ = l.Sync()

	_, err = os.Stat(cfg.LogFile)
	require.NoError(t, err, "log file created on first write")
}
