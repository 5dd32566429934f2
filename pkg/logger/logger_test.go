package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "INFO")
	require.NoError(t, err)
	log.Info("CheckAlignment: %s..%s", "2025-01-01", "2025-01-14")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, logrus.WarnLevel)

	log.Info("hidden %d", 1)
	log.Warn("shown %d", 2)
	log.With("module", "calendar").Error("failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "failed: boom")
	assert.Contains(t, out, "module=calendar")
}
