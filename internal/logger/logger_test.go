package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevelFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	require.NoError(t, SetLevel("warn"))
	defer SetLevel("info")

	Info("hidden")
	Warnf("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
}

func TestSetLevelRejectsUnknownName(t *testing.T) {
	before := logger.GetLevel()
	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, before, logger.GetLevel())
}

func TestSetOutputKeepsLevel(t *testing.T) {
	require.NoError(t, SetLevel("error"))
	defer SetLevel("info")

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
	Warnf("dropped %d", 1)
	Errorf("kept %d", 2)
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept 2")
}

func TestSetLevelRejectsEmptyName(t *testing.T) {
	before := logger.GetLevel()
	assert.Error(t, SetLevel(""))
	assert.Equal(t, before, logger.GetLevel())
}
