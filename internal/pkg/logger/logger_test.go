package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"skill-exchange/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{App: config.AppConfig{AppName: "skill-exchange"}, Log: config.LogConfig{Level: "debug"}}

	l := NewWithWriter(cfg, &buf)
	l.Debug().Str("component", "test").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "skill-exchange", line["app"])
	assert.Equal(t, "test", line["component"])
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{Log: config.LogConfig{Level: "warn"}}

	l := NewWithWriter(cfg, &buf)
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(config.Config{Log: config.LogConfig{Level: "loud"}}, &buf)
	l.Debug().Msg("dropped")
	l.Info().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
