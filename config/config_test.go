package config_test

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/powertris/config"
	"github.com/plus3/powertris/tetris"
)

var envKeys = []string{
	"LOG_LEVEL",
	"POWERTRIS_SEED",
	"POWERTRIS_WIDTH",
	"POWERTRIS_HEIGHT",
	"POWERTRIS_POWER_CHANCE",
	"POWERTRIS_CELL_SIZE",
	"POWERTRIS_TARGET_FPS",
	"POWERTRIS_DEBUG_UI",
	"POWERTRIS_REPEAT_DELAY",
	"POWERTRIS_REPEAT_INTERVAL",
	"POWERTRIS_LOG_FILE",
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, tetris.DefaultConfig().Width, cfg.Game.Width)
	assert.Equal(t, 30, cfg.CellSize)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, 200*time.Millisecond, cfg.RepeatDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.RepeatInterval)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.DebugUI)
	assert.Zero(t, cfg.Seed)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POWERTRIS_SEED", "42")
	t.Setenv("POWERTRIS_WIDTH", "12")
	t.Setenv("POWERTRIS_HEIGHT", "24")
	t.Setenv("POWERTRIS_POWER_CHANCE", "0.5")
	t.Setenv("POWERTRIS_CELL_SIZE", "20")
	t.Setenv("POWERTRIS_TARGET_FPS", "30")
	t.Setenv("POWERTRIS_DEBUG_UI", "true")
	t.Setenv("POWERTRIS_REPEAT_DELAY", "150ms")
	t.Setenv("POWERTRIS_REPEAT_INTERVAL", "40ms")
	t.Setenv("POWERTRIS_LOG_FILE", "/tmp/powertris.log")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, uint64(42), cfg.SeedOrNow())
	assert.Equal(t, 12, cfg.Game.Width)
	assert.Equal(t, 24, cfg.Game.Height)
	assert.Equal(t, 0.5, cfg.Game.PowerChance)
	assert.Equal(t, 20, cfg.CellSize)
	assert.Equal(t, 30, cfg.TargetFPS)
	assert.True(t, cfg.DebugUI)
	assert.Equal(t, 150*time.Millisecond, cfg.RepeatDelay)
	assert.Equal(t, 40*time.Millisecond, cfg.RepeatInterval)
	assert.Equal(t, "/tmp/powertris.log", cfg.LogFile)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
		msg   string
	}{
		{"LOG_LEVEL", "loud", "LOG_LEVEL"},
		{"POWERTRIS_SEED", "-1", "POWERTRIS_SEED"},
		{"POWERTRIS_WIDTH", "wide", "POWERTRIS_WIDTH"},
		{"POWERTRIS_WIDTH", "3", "too small"},
		{"POWERTRIS_POWER_CHANCE", "1.5", "power chance"},
		{"POWERTRIS_DEBUG_UI", "maybe", "POWERTRIS_DEBUG_UI"},
		{"POWERTRIS_REPEAT_DELAY", "soon", "POWERTRIS_REPEAT_DELAY"},
		{"POWERTRIS_TARGET_FPS", "0", "target fps"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestFrameInterval(t *testing.T) {
	for _, fps := range []int{30, 60} {
		t.Run(strconv.Itoa(fps), func(t *testing.T) {
			cfg := config.Default()
			cfg.TargetFPS = fps
			assert.Equal(t, time.Second/time.Duration(fps), cfg.FrameInterval())
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = zerolog.WarnLevel

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info().Msg("hidden")
	logger.Warn().Str("k", "v").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
