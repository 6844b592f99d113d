package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Warn("circular alias", "alias", "a")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "ngenctl")
	assert.Contains(t, out, "circular alias")
	assert.Contains(t, out, "alias=a")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
