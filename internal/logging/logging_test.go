package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/softwaremanager/internal/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, closeFn, err := New(config.LogConfig{})
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, logger.Core().Enabled(-1))
}

func TestNewWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closeFn, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("hello")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"logger":"softwaremanager"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	require.ErrorContains(t, err, "log level")
}
