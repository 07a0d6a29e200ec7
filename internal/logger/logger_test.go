package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"ridehail/internal/config"
)

func TestNew_Level(t *testing.T) {
	log := New(config.LogConfig{Level: "warn", Format: "json", Service: "test"}, nil)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	log := New(config.LogConfig{Level: "chatty", Format: "console"}, nil)

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
