package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildCmd_Use(t *testing.T) {
	assert.Equal(t, "rebuild", rebuildCmd.Use)
}

func TestRebuildCmd_ForwardsToEngine(t *testing.T) {
	mock, cleanup := setupTestEngine()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"rebuild"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.rebuilt)
	assert.Contains(t, buf.String(), "rebuild requested")
}

func TestRebuildCmd_ServiceNotConfigured(t *testing.T) {
	oldService := engineService
	engineService = nil
	defer func() {
		engineService = oldService
	}()

	err := runRebuild(rebuildCmd, nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "engine not configured")
}
