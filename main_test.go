package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// syncCore records whether Sync was called on it.
type syncCore struct {
	zapcore.Core
	synced bool
}

func (c *syncCore) Sync() error {
	c.synced = true
	return c.Core.Sync()
}

func TestExitCode_FailureLogsAndSyncs(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	core := &syncCore{Core: obs}

	code := exitCode(zap.New(core), errors.New("listen: address in use"))

	assert.Equal(t, 1, code)
	assert.True(t, core.synced)
	entries := logs.FilterMessage("server stopped").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	}
}

func TestExitCode_CleanShutdown(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	core := &syncCore{Core: obs}

	code := exitCode(zap.New(core), nil)

	assert.Equal(t, 0, code)
	assert.True(t, core.synced)
	assert.Equal(t, 1, logs.FilterMessage("bye").Len())
}
