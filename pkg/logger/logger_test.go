package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Level:      "debug",
		Filename:   filepath.Join(dir, "test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	err := InitLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	Log.Info("hello from test")
	Sync()

	data, err := os.ReadFile(cfg.Filename)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:    "not-a-level",
		Filename: filepath.Join(t.TempDir(), "test.log"),
	}

	err := InitLogger(cfg)
	assert.Error(t, err)
}
