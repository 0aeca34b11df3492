package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quiverlib/quiver/log"
)

func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewCustomLogger(&buf, log.LogLevelWarn)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
	assert.Contains(t, out, "[quiver]")
}

func TestDefaultLogger_NoneSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewCustomLogger(&buf, log.LogLevelNone)

	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")

	assert.Zero(t, buf.Len())
}

func TestNoOpLogger(t *testing.T) {
	var logger log.NoOpLogger
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", log.LogLevelDebug.String())
	assert.Equal(t, "INFO", log.LogLevelInfo.String())
	assert.Equal(t, "WARN", log.LogLevelWarn.String())
	assert.Equal(t, "ERROR", log.LogLevelError.String())
	assert.Equal(t, "NONE", log.LogLevelNone.String())
	assert.Equal(t, "LogLevel(42)", log.LogLevel(42).String())
}

func TestPackageLevelLogger(t *testing.T) {
	prev := log.GetDefaultLogger()
	defer log.SetDefaultLogger(prev)

	var buf bytes.Buffer
	log.SetDefaultLogger(log.NewCustomLogger(&buf, log.LogLevelDebug))

	log.Debug("hello %s", "debug")
	log.Info("hello info")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello debug")

	// A nil logger must not replace the current one.
	log.SetDefaultLogger(nil)
	assert.NotNil(t, log.GetDefaultLogger())
}
