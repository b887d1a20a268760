package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Warn("TRASH", "Stale trash record removed", map[string]interface{}{"item_type": "note"})
	l.Info("TRASH", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, zapcore.WarnLevel, first.Level)
	assert.Equal(t, "Stale trash record removed", first.Message)
	fields := first.ContextMap()
	assert.Equal(t, "TRASH", fields["module"])
	assert.Equal(t, map[string]interface{}{"item_type": "note"}, fields["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLogger_ErrorCarriesRef(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("SCHEDULER", "purge failed", map[string]interface{}{"error": "boom"})

	entries := logs.FilterField(zap.Any("error_ref", "boom")).All()
	assert.Len(t, entries, 1)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Debug("X", "ignored", nil)
		_ = l.Sync()
	})
}
