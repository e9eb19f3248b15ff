package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BOARD_ROWS", "")
	t.Setenv("BOARD_COLUMNS", "")
	t.Setenv("LOG_ENABLED", "")

	cfg := LoadConfig()

	assert.Equal(t, domain.DefaultRows, cfg.BoardRows)
	assert.Equal(t, domain.DefaultColumns, cfg.BoardColumns)
	assert.False(t, cfg.LogEnabled)
	assert.Same(t, cfg, AppConfig)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BOARD_ROWS", "8")
	t.Setenv("BOARD_COLUMNS", "9")
	t.Setenv("LOG_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, 8, cfg.BoardRows)
	assert.Equal(t, 9, cfg.BoardColumns)
	assert.True(t, cfg.LogEnabled)
}

func TestLoadConfigFallsBackOnGarbage(t *testing.T) {
	t.Setenv("BOARD_ROWS", "six")
	t.Setenv("BOARD_COLUMNS", "7.5")
	t.Setenv("LOG_ENABLED", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, domain.DefaultRows, cfg.BoardRows)
	assert.Equal(t, domain.DefaultColumns, cfg.BoardColumns)
	assert.False(t, cfg.LogEnabled)
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := &Config{BoardRows: 0, BoardColumns: 7}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidDimensions)

	cfg = &Config{BoardRows: 6, BoardColumns: -1}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidDimensions)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONNECT4_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("CONNECT4_TEST_VALUE", "fallback"))

	t.Setenv("CONNECT4_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("CONNECT4_TEST_VALUE", "fallback"))
}
