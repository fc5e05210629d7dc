package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestZapAdapter_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).
		WithFields(map[string]interface{}{"taskType": "predict-career-path"}).
		WithError(errors.New("boom"))

	log.Info("job completed", map[string]interface{}{"jobKey": int64(42)})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "predict-career-path", ctx["taskType"])
		assert.Equal(t, int64(42), ctx["jobKey"])
		assert.Equal(t, "boom", ctx["error"])
	}
}

func TestNew_FallsBackToStdout(t *testing.T) {
	l := New("debug", "json")
	assert.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
