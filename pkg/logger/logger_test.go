package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(&Config{
		Level:      zerolog.InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     buf,
	})
}

func TestLoggerWritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf)

	log.Info("salon manager started")

	assert.Contains(t, buf.String(), "salon manager started")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf)

	log.WithFields(map[string]interface{}{"port": 8080}).Info("listening")

	out := buf.String()
	assert.Contains(t, out, "listening")
	assert.Contains(t, out, "port=")
	assert.Contains(t, out, "8080")
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferedLogger(&buf)

	log.Error(errors.New("disk full"), "forced shutdown")

	out := buf.String()
	assert.Contains(t, out, "forced shutdown")
	assert.Contains(t, out, "disk full")
}
